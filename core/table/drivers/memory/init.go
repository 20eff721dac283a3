package memory

import "github.com/nextbac/bacaddr/core/table"

func init() {
	table.MustRegister("memory", func(_ map[string][]string) (table.BindingStorage, error) {
		memory := makeStorage()
		return memory, nil
	})
}
