package table

import (
	"errors"
	"fmt"

	"github.com/nextbac/bacaddr/core/addr"
)

type (
	// ErrDuplicateAddress is returned by the storage if an address
	// is already bound
	ErrDuplicateAddress struct {
		// Address holds the address that is bound multiple times
		Address addr.Address

		// Name may hold the name the address is already bound to
		Name string
	}

	// ErrDuplicateName is returned if the name is already bound to
	// another address
	ErrDuplicateName struct {
		// Name is the name that is bound multiple times
		Name string

		// Address may hold the address the name is bound to
		Address addr.Address
	}

	// ErrAddressNotFound is returned when the address in question is
	// not present in the binding storage
	ErrAddressNotFound struct {
		Address addr.Address
	}
)

var (
	// ErrAlreadyCreated is returned when the address/name pair is
	// already stored
	ErrAlreadyCreated = errors.New("binding already available")

	// ErrNameMismatch is returned from Delete if the given name does
	// not match the stored one
	ErrNameMismatch = errors.New("expected binding name does not match")
)

func (ea *ErrDuplicateAddress) Error() string {
	return fmt.Sprintf("%s already bound to %q", ea.Address, ea.Name)
}

func (en *ErrDuplicateName) Error() string {
	return fmt.Sprintf("%q already has address %s bound", en.Name, en.Address)
}

func (enf *ErrAddressNotFound) Error() string {
	return fmt.Sprintf("%s not found", enf.Address)
}

// IsNotFound returns true if err is an address or name not found
// error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(*ErrAddressNotFound)
	return ok
}
