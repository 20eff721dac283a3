package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nextbac/bacaddr/core/addr"
	"github.com/nextbac/bacaddr/core/table"
	"go.etcd.io/bbolt"
)

var (
	bindingBucketKey    = []byte("address-bindings")
	nameToAddrBucketKey = []byte("name-to-address")
)

type (
	// Storage is a table.BindingStorage implementation that persists
	// address bindings in a bbolt database
	Storage struct {
		db   *bbolt.DB
		path string
	}

	entry struct {
		Name    string `json:"name"`
		BoundAt int64  `json:"boundAt"`
	}
)

// addrKey returns the database key of an address. The canonical
// textual form is used so equal records map to the same key no matter
// how they were spelled.
func addrKey(a addr.Address) []byte {
	return []byte(a.String())
}

// Create implements table.BindingStorage
func (s *Storage) Create(ctx context.Context, a addr.Address, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bindingBucket, nameBucket, err := openOrCreateBuckets(tx)
		if err != nil {
			return err
		}
		if err := assertUniqueName(nameBucket, name, a); err != nil {
			return err
		}
		if err := assertUniqueAddress(bindingBucket, a, name); err != nil {
			return err
		}
		if bindingBucket.Get(addrKey(a)) != nil {
			// the same address/name pair is already stored
			return &table.ErrDuplicateAddress{Address: a, Name: name}
		}

		e := entry{
			Name:    name,
			BoundAt: time.Now().Unix(),
		}
		blob, err := json.Marshal(e)
		if err != nil {
			return err
		}

		if err := nameBucket.Put([]byte(name), addrKey(a)); err != nil {
			return err
		}
		return bindingBucket.Put(addrKey(a), blob)
	})
}

// Delete implements table.BindingStorage
func (s *Storage) Delete(ctx context.Context, a addr.Address, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bindingBucket, nameBucket, err := openOrCreateBuckets(tx)
		if err != nil {
			return err
		}

		blob := bindingBucket.Get(addrKey(a))
		if blob == nil {
			return &table.ErrAddressNotFound{Address: a}
		}

		var e entry
		if err := json.Unmarshal(blob, &e); err != nil {
			return err
		}

		if name != "" && e.Name != name {
			return table.ErrNameMismatch
		}

		if err := bindingBucket.Delete(addrKey(a)); err != nil {
			return err
		}

		return nameBucket.Delete([]byte(e.Name))
	})
}

// Update implements table.BindingStorage
func (s *Storage) Update(ctx context.Context, a addr.Address, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bindingBucket, nameBucket, err := openOrCreateBuckets(tx)
		if err != nil {
			return err
		}

		blob := bindingBucket.Get(addrKey(a))
		if blob == nil {
			return &table.ErrAddressNotFound{Address: a}
		}

		var old entry
		if err := json.Unmarshal(blob, &old); err != nil {
			return err
		}

		if err := assertUniqueName(nameBucket, name, a); err != nil {
			return err
		}

		e := entry{
			Name:    name,
			BoundAt: time.Now().Unix(),
		}
		newBlob, err := json.Marshal(e)
		if err != nil {
			return err
		}

		if err := nameBucket.Delete([]byte(old.Name)); err != nil {
			return err
		}
		if err := nameBucket.Put([]byte(name), addrKey(a)); err != nil {
			return err
		}

		return bindingBucket.Put(addrKey(a), newBlob)
	})
}

// FindByAddress implements table.BindingStorage
func (s *Storage) FindByAddress(ctx context.Context, a addr.Address) (string, error) {
	var e entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		bindingBucket := tx.Bucket(bindingBucketKey)
		if bindingBucket == nil {
			// not found because the bucket hasn't even been created yet
			return &table.ErrAddressNotFound{Address: a}
		}

		blob := bindingBucket.Get(addrKey(a))
		if blob == nil {
			return &table.ErrAddressNotFound{Address: a}
		}

		return json.Unmarshal(blob, &e)
	})

	return e.Name, err
}

// FindByName implements table.BindingStorage
func (s *Storage) FindByName(ctx context.Context, name string) (addr.Address, error) {
	var a addr.Address

	err := s.db.View(func(tx *bbolt.Tx) error {
		nameBucket := tx.Bucket(nameToAddrBucketKey)
		bindingBucket := tx.Bucket(bindingBucketKey)
		if nameBucket == nil || bindingBucket == nil {
			// not found because the bucket hasn't even been created yet
			return &table.ErrAddressNotFound{}
		}

		key := nameBucket.Get([]byte(name))
		if key == nil {
			return &table.ErrAddressNotFound{}
		}

		if bindingBucket.Get(key) == nil {
			return fmt.Errorf("database inconsistency detected. binding entry does not exist for address %s (name:%s)", key, name)
		}

		return a.UnmarshalText(key)
	})

	return a, err
}

// ListAddresses implements table.BindingStorage
func (s *Storage) ListAddresses(ctx context.Context) ([]addr.Address, error) {
	var addrs []addr.Address
	return addrs, s.db.View(func(tx *bbolt.Tx) error {
		bindingBucket := tx.Bucket(bindingBucketKey)
		if bindingBucket == nil {
			return nil
		}

		cursor := bindingBucket.Cursor()
		key, _ := cursor.First()
		for key != nil {
			var a addr.Address
			if err := a.UnmarshalText(key); err != nil {
				return err
			}

			addrs = append(addrs, a)
			key, _ = cursor.Next()
		}

		return nil
	})
}

// ListNames implements table.BindingStorage
func (s *Storage) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	return names, s.db.View(func(tx *bbolt.Tx) error {
		nameBucket := tx.Bucket(nameToAddrBucketKey)
		if nameBucket == nil {
			return nil
		}

		cursor := nameBucket.Cursor()
		key, _ := cursor.First()
		for key != nil {
			names = append(names, string(key))
			key, _ = cursor.Next()
		}
		return nil
	})
}

func openOrCreateBuckets(tx *bbolt.Tx) (bindingBucket *bbolt.Bucket, nameBucket *bbolt.Bucket, err error) {
	bindingBucket, err = tx.CreateBucketIfNotExists(bindingBucketKey)
	if err != nil {
		return
	}

	nameBucket, err = tx.CreateBucketIfNotExists(nameToAddrBucketKey)
	if err != nil {
		return
	}

	return bindingBucket, nameBucket, nil
}

func assertUniqueName(bucket *bbolt.Bucket, name string, a addr.Address) error {
	existing := bucket.Get([]byte(name))
	if existing != nil && string(existing) != string(addrKey(a)) {
		var bound addr.Address
		if err := bound.UnmarshalText(existing); err != nil {
			return err
		}

		return &table.ErrDuplicateName{
			Name:    name,
			Address: bound,
		}
	}
	return nil
}

func assertUniqueAddress(bucket *bbolt.Bucket, a addr.Address, name string) error {
	existing := bucket.Get(addrKey(a))
	if existing == nil {
		return nil
	}

	var e entry
	if err := json.Unmarshal(existing, &e); err != nil {
		return err
	}

	if e.Name != name {
		return &table.ErrDuplicateAddress{
			Address: a,
			Name:    e.Name,
		}
	}

	return nil
}

// compile time check
var _ table.BindingStorage = &Storage{}
