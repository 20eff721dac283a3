package bolt

import (
	"context"
	"os"
	"testing"

	"github.com/nextbac/bacaddr/core/table"
	"github.com/nextbac/bacaddr/core/table/tests"
	"go.etcd.io/bbolt"
)

func TestBoltStorage(t *testing.T) {
	factory := func(ctx context.Context) table.BindingStorage {
		file, err := os.CreateTemp("", "table-*.db")
		if err != nil {
			panic(err.Error())
		}

		db, err := bbolt.Open(file.Name(), 0o600, &bbolt.Options{
			OpenFile: func(_ string, _ int, _ os.FileMode) (*os.File, error) {
				return file, nil
			},
		})
		if err != nil {
			panic(err.Error())
		}

		return &Storage{
			db:   db,
			path: file.Name(),
		}
	}

	teardown := func(s table.BindingStorage) {
		db := s.(*Storage)
		db.db.Close()
		os.Remove(db.path)
	}

	tests.Run(t, factory, teardown)
}
