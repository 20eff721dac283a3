// Package tests contains a conformance suite that every binding
// storage driver must pass
package tests

import (
	"context"
	"testing"

	"github.com/nextbac/bacaddr/core/addr"
	"github.com/nextbac/bacaddr/core/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	// StorageFactory should create a new storage instance
	StorageFactory func(ctx context.Context) table.BindingStorage

	// TeardownFunc is invoked after each test case
	TeardownFunc func(table.BindingStorage)
)

// Run executes a test suite to ensure storage implementations match
// the requirements
func Run(t *testing.T, factory StorageFactory, teardown TeardownFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	instance := factory(ctx)
	require.NotNil(t, instance)
	defer teardown(instance)

	mustParse := func(s string) addr.Address {
		a, err := addr.Parse(s)
		require.NoError(t, err)
		return a
	}

	count := func() int {
		allAddrs, err := instance.ListAddresses(ctx)
		allNames, err2 := instance.ListNames(ctx)
		require.NoError(t, err)
		require.NoError(t, err2)
		assert.Equal(t, len(allAddrs), len(allNames))

		return len(allAddrs)
	}

	t.Run("Create", func(t *testing.T) {
		err := instance.Create(ctx, mustParse("1.2.3.4"), "boiler-1")
		assert.NoError(t, err, "binding a unique address/name pair must work")
		assert.Equal(t, 1, count())

		err = instance.Create(ctx, mustParse("1.2.3.4"), "boiler-1")
		assert.Error(t, err, "must not allow re-creating an existing binding")
		assert.Equal(t, 1, count())

		// reusing the address is not allowed, not even under a
		// different spelling
		err = instance.Create(ctx, mustParse("0x01020304bac0"), "boiler-2")
		assert.Error(t, err, "addresses must not be allowed to be re-bound")
		eda, ok := err.(*table.ErrDuplicateAddress)
		require.True(t, ok, "invalid error type returned")
		assert.True(t, eda.Address.Equal(mustParse("1.2.3.4")))
		assert.Equal(t, "boiler-1", eda.Name)
		assert.Equal(t, 1, count())

		// reusing the name is not allowed either
		err = instance.Create(ctx, mustParse("5:12"), "boiler-1")
		assert.Error(t, err, "names must not be allowed to be re-bound")
		edn, ok := err.(*table.ErrDuplicateName)
		require.True(t, ok, "invalid error type returned")
		assert.Equal(t, "boiler-1", edn.Name)
		assert.Equal(t, 1, count())

		err = instance.Create(ctx, mustParse("5:12"), "pump-1")
		assert.NoError(t, err)
		assert.Equal(t, 2, count())
	})

	t.Run("FindByAddress", func(t *testing.T) {
		name, err := instance.FindByAddress(ctx, mustParse("1.2.3.4"))
		require.NoError(t, err)
		assert.Equal(t, "boiler-1", name)

		// lookups go through the canonical form as well
		name, err = instance.FindByAddress(ctx, mustParse("0x01020304bac0"))
		require.NoError(t, err)
		assert.Equal(t, "boiler-1", name)

		_, err = instance.FindByAddress(ctx, mustParse("9.9.9.9"))
		require.Error(t, err)
		assert.True(t, table.IsNotFound(err))
	})

	t.Run("FindByName", func(t *testing.T) {
		a, err := instance.FindByName(ctx, "pump-1")
		require.NoError(t, err)
		assert.True(t, a.Equal(mustParse("5:12")))

		_, err = instance.FindByName(ctx, "unknown")
		assert.Error(t, err)
	})

	t.Run("Update", func(t *testing.T) {
		err := instance.Update(ctx, mustParse("5:12"), "pump-2")
		assert.NoError(t, err, "rebinding an existing address must work")

		name, err := instance.FindByAddress(ctx, mustParse("5:12"))
		require.NoError(t, err)
		assert.Equal(t, "pump-2", name)

		_, err = instance.FindByName(ctx, "pump-1")
		assert.Error(t, err, "the old name must be unbound")

		err = instance.Update(ctx, mustParse("9.9.9.9"), "pump-3")
		assert.Error(t, err, "updating an unknown address must fail")
		assert.True(t, table.IsNotFound(err))

		err = instance.Update(ctx, mustParse("5:12"), "boiler-1")
		assert.Error(t, err, "rebinding to a name bound to another address must fail")
	})

	t.Run("Delete", func(t *testing.T) {
		err := instance.Delete(ctx, mustParse("5:12"), "someone-else")
		assert.Error(t, err, "deleting with a mismatched name must fail")

		err = instance.Delete(ctx, mustParse("5:12"), "")
		assert.NoError(t, err, "deleting without a name check must work")
		assert.Equal(t, 1, count())

		err = instance.Delete(ctx, mustParse("1.2.3.4"), "boiler-1")
		assert.NoError(t, err)
		assert.Equal(t, 0, count())

		err = instance.Delete(ctx, mustParse("1.2.3.4"), "")
		assert.Error(t, err)
		assert.True(t, table.IsNotFound(err))
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, instance.Create(ctx, mustParse("7"), "sensor-7"))
		require.NoError(t, instance.Create(ctx, mustParse("2:*"), "segment-2"))

		addrs, err := instance.ListAddresses(ctx)
		require.NoError(t, err)
		require.Len(t, addrs, 2)

		found := 0
		for _, a := range addrs {
			if a.Equal(mustParse("7")) || a.Equal(mustParse("2:*")) {
				found++
			}
		}
		assert.Equal(t, 2, found, "listed addresses must round-trip as records")

		names, err := instance.ListNames(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"sensor-7", "segment-2"}, names)
	})
}
