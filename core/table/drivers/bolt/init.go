package bolt

import (
	"fmt"

	"github.com/nextbac/bacaddr/core/table"
	"go.etcd.io/bbolt"
)

func init() {
	table.MustRegister("bolt", storageFactory)
}

func storageFactory(arguments map[string][]string) (table.BindingStorage, error) {
	file := ""

	if args, ok := arguments["__args__"]; ok {
		file = args[0]
	} else if f, ok := arguments["file"]; ok {
		if len(f) > 1 {
			return nil, fmt.Errorf("only one database file can be configured")
		}

		file = f[0]
	} else {
		return nil, fmt.Errorf("no database file configured")
	}

	db, err := bbolt.Open(file, 0o660, nil)
	if err != nil {
		return nil, err
	}

	d := &Storage{db: db, path: file}

	return d, nil
}
