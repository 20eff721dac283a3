package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/nextbac/bacaddr/core/addr"
	"github.com/nextbac/bacaddr/core/table"
	"github.com/ppacher/webthings-mqtt-gateway/pkg/mutex"
)

type entry struct {
	addr addr.Address
	name string
}

func (e *entry) key() key {
	return key(fmt.Sprintf("%s:%s", e.name, e.addr))
}

type key string

// Storage implements the table.BindingStorage interface but does not
// provide any persistence at all as every binding is only kept in
// memory
type Storage struct {
	l       *mutex.Mutex // context.Context aware mutex to protect all fields below
	entries map[key]*entry
	addrs   map[string]key
	names   map[string]key
}

// New returns a new memory storage
func New() *Storage {
	return makeStorage()
}

func makeStorage() *Storage {
	return &Storage{
		l:       mutex.New(),
		entries: make(map[key]*entry),
		addrs:   make(map[string]key),
		names:   make(map[string]key),
	}
}

// Create implements table.BindingStorage
func (s *Storage) Create(ctx context.Context, a addr.Address, name string) error {
	if !s.l.TryLock(ctx) {
		return ctx.Err()
	}
	defer s.l.Unlock()

	e := &entry{
		addr: a,
		name: name,
	}

	if key, ok := s.addrs[a.String()]; ok {
		return &table.ErrDuplicateAddress{
			Address: a,
			Name:    s.entries[key].name,
		}
	}

	if key, ok := s.names[name]; ok {
		return &table.ErrDuplicateName{
			Name:    name,
			Address: s.entries[key].addr,
		}
	}

	newKey := e.key()
	if _, ok := s.entries[newKey]; ok {
		return table.ErrAlreadyCreated
	}

	s.entries[newKey] = e
	s.addrs[a.String()] = newKey
	s.names[name] = newKey

	return nil
}

// Delete implements table.BindingStorage
func (s *Storage) Delete(ctx context.Context, a addr.Address, name string) error {
	if !s.l.TryLock(ctx) {
		return ctx.Err()
	}
	defer s.l.Unlock()

	entryKey, ok := s.addrs[a.String()]
	if !ok {
		return &table.ErrAddressNotFound{Address: a}
	}

	entry, ok := s.entries[entryKey]
	if !ok {
		return errors.New("internal error: database inconsistency")
	}

	if name != "" && name != entry.name {
		return table.ErrNameMismatch
	}

	delete(s.entries, entryKey)
	delete(s.addrs, entry.addr.String())
	delete(s.names, entry.name)

	return nil
}

// Update implements table.BindingStorage
func (s *Storage) Update(ctx context.Context, a addr.Address, name string) error {
	if !s.l.TryLock(ctx) {
		return ctx.Err()
	}
	defer s.l.Unlock()

	oldKey, ok := s.addrs[a.String()]
	if !ok {
		return &table.ErrAddressNotFound{Address: a}
	}

	old, ok := s.entries[oldKey]
	if !ok {
		return errors.New("internal error: database inconsistency")
	}

	if boundKey, ok := s.names[name]; ok && boundKey != oldKey {
		return &table.ErrDuplicateName{
			Name:    name,
			Address: s.entries[boundKey].addr,
		}
	}

	e := &entry{
		addr: a,
		name: name,
	}
	newKey := e.key()

	delete(s.entries, oldKey)
	delete(s.names, old.name)

	s.entries[newKey] = e
	s.addrs[a.String()] = newKey
	s.names[name] = newKey

	return nil
}

// FindByAddress implements table.BindingStorage
func (s *Storage) FindByAddress(ctx context.Context, a addr.Address) (string, error) {
	if !s.l.TryLock(ctx) {
		return "", ctx.Err()
	}
	defer s.l.Unlock()

	entryKey, ok := s.addrs[a.String()]
	if !ok {
		return "", &table.ErrAddressNotFound{Address: a}
	}

	e, ok := s.entries[entryKey]
	if !ok {
		return "", errors.New("internal error: database inconsistency")
	}

	return e.name, nil
}

// FindByName implements table.BindingStorage
func (s *Storage) FindByName(ctx context.Context, name string) (addr.Address, error) {
	if !s.l.TryLock(ctx) {
		return addr.Address{}, ctx.Err()
	}
	defer s.l.Unlock()

	key, ok := s.names[name]
	if !ok {
		return addr.Address{}, &table.ErrAddressNotFound{}
	}

	e, ok := s.entries[key]
	if !ok {
		return addr.Address{}, errors.New("internal error: database inconsistency")
	}

	return e.addr, nil
}

// ListAddresses implements table.BindingStorage
func (s *Storage) ListAddresses(ctx context.Context) ([]addr.Address, error) {
	if !s.l.TryLock(ctx) {
		return nil, ctx.Err()
	}
	defer s.l.Unlock()

	addrs := make([]addr.Address, 0, len(s.addrs))
	for _, key := range s.addrs {
		addrs = append(addrs, s.entries[key].addr)
	}

	return addrs, nil
}

// ListNames implements table.BindingStorage
func (s *Storage) ListNames(ctx context.Context) ([]string, error) {
	if !s.l.TryLock(ctx) {
		return nil, ctx.Err()
	}
	defer s.l.Unlock()

	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}

	return names, nil
}

// compile time check
var _ table.BindingStorage = &Storage{}
