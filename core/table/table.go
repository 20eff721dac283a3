// Package table provides persistence for bindings between device
// names and their frozen addresses. Drivers only store and return
// validated address records; they never resolve, route or otherwise
// interpret them.
package table

import (
	"context"

	"github.com/nextbac/bacaddr/core/addr"
)

// BindingStorage provides persistence for name to address bindings.
// Implementations are required to keep both the address and the name
// unique (a unique index on each side). Addresses are keyed by their
// canonical textual form, so two different spellings of the same
// station cannot be bound twice.
type BindingStorage interface {
	// Create stores a unique address binding. Implementations MUST
	// check that neither the address nor the name is already bound.
	Create(ctx context.Context, a addr.Address, name string) error

	// Delete removes an address binding. If name is not empty,
	// implementations should check that the binding belongs to the
	// same name before removing it.
	Delete(ctx context.Context, a addr.Address, name string) error

	// Update rebinds an existing address to a new name. The
	// operation fails if the address is unknown or the new name is
	// already bound to a different address.
	Update(ctx context.Context, a addr.Address, name string) error

	// FindByAddress returns the name bound to the given address
	FindByAddress(ctx context.Context, a addr.Address) (name string, err error)

	// FindByName returns the address bound to the given name
	FindByName(ctx context.Context, name string) (addr.Address, error)

	// ListAddresses returns all bound addresses
	ListAddresses(ctx context.Context) ([]addr.Address, error)

	// ListNames returns all bound names
	ListNames(ctx context.Context) ([]string, error)
}
