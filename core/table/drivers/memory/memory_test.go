package memory

import (
	"context"
	"testing"

	"github.com/nextbac/bacaddr/core/table"
	"github.com/nextbac/bacaddr/core/table/tests"
)

func TestMemoryStorage(t *testing.T) {
	factory := func(ctx context.Context) table.BindingStorage {
		return New()
	}

	teardown := func(table.BindingStorage) {}

	tests.Run(t, factory, teardown)
}
