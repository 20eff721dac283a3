package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Register(t *testing.T) {
	factory := func(_ map[string][]string) (BindingStorage, error) {
		return nil, nil
	}

	require.NoError(t, Register("test-driver", factory))
	assert.Error(t, Register("test-driver", factory), "registering the same driver twice must fail")

	_, err := Open("test-driver", nil)
	assert.NoError(t, err)

	_, err = Open("unknown-driver", nil)
	assert.Error(t, err)
}
