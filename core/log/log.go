package log

import (
	"context"

	"github.com/apex/log"
	"github.com/nextbac/bacaddr/core/addr"
)

type addressFieldsKey struct{}

// AddAddressFields returns a new context.Context that has the given
// address assigned
func AddAddressFields(parent context.Context, a addr.Address) context.Context {
	fields := log.Fields{
		"addr": a.String(),
		"kind": a.Kind().String(),
	}

	if network, ok := a.Network(); ok {
		fields["network"] = network
	}

	if length, ok := a.Len(); ok {
		fields["len"] = length
	}

	return context.WithValue(parent, addressFieldsKey{}, fields)
}

// With returns a log entry carrying the address fields stored in ctx,
// if any
func With(ctx context.Context) *log.Entry {
	val := ctx.Value(addressFieldsKey{})
	if val != nil {
		if fields, ok := val.(log.Fields); ok {
			return log.WithFields(fields)
		}
	}

	return log.WithFields(log.Fields{})
}
