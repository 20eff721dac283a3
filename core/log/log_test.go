package log

import (
	"context"
	"testing"

	"github.com/nextbac/bacaddr/core/addr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddAddressFields(t *testing.T) {
	a, err := addr.Parse("5:0x0203")
	require.NoError(t, err)

	ctx := AddAddressFields(context.Background(), a)

	entry := With(ctx)
	require.NotNil(t, entry)
	assert.Equal(t, "5:0x0203", entry.Fields["addr"])
	assert.Equal(t, "RemoteStation", entry.Fields["kind"])
	assert.Equal(t, uint16(5), entry.Fields["network"])
	assert.Equal(t, 2, entry.Fields["len"])
}

func Test_With_EmptyContext(t *testing.T) {
	entry := With(context.Background())
	require.NotNil(t, entry)
	assert.Empty(t, entry.Fields["addr"])
}
