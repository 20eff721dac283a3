package matcher

import (
	"testing"

	"github.com/nextbac/bacaddr/core/addr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, v interface{}) addr.Address {
	t.Helper()

	a, err := addr.Parse(v)
	require.NoError(t, err)

	return a
}

func Test_Matcher_Match(t *testing.T) {
	cases := []struct {
		Expr string
		Addr string
		E    bool
	}{
		{"", "1", true},
		{"kind == 'LocalStation'", "1", true},
		{"kind == 'LocalStation'", "5:*", false},
		{"broadcast", "*", true},
		{"broadcast", "1", false},
		{"remote && network < 100", "5:*", true},
		{"remote && network < 100", "500:*", false},
		{"network == -1", "1", true},
		{"length == 6", "1.2.3.4", true},
		{"length == 6", "1:0x0203", false},
		{"mac == '010203040506'", "01:02:03:04:05:06", true},
		{"address == '1:0x0203'", "1:X'0203'", true},
	}

	for i, c := range cases {
		m, err := New(c.Expr)
		require.NoError(t, err, "Test case #%d failed", i)

		got, err := m.Match(mustParse(t, c.Addr))
		require.NoError(t, err, "Test case #%d failed", i)

		assert.Equal(t, c.E, got, "Test case #%d (%q on %q) failed", i, c.Expr, c.Addr)
	}
}

func Test_Matcher_ExprFunc(t *testing.T) {
	fns := map[string]ExprFunc{
		"isDefaultPort": func(args ...interface{}) (interface{}, error) {
			mac, _ := args[0].(string)
			return len(mac) == 12 && mac[8:] == "bac0", nil
		},
	}

	m, err := New("isDefaultPort(mac)", fns)
	require.NoError(t, err)

	got, err := m.Match(mustParse(t, "1.2.3.4"))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = m.Match(mustParse(t, "1.2.3.4:47809"))
	require.NoError(t, err)
	assert.False(t, got)
}

func Test_Matcher_Errors(t *testing.T) {
	_, err := New("kind ==")
	assert.Error(t, err)

	m, err := New("network + 1")
	require.NoError(t, err)

	_, err = m.Match(mustParse(t, "1"))
	assert.Error(t, err, "non-boolean results must be rejected")
}
