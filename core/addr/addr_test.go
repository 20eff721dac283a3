package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "Null", Null.String())
	assert.Equal(t, "LocalBroadcast", LocalBroadcast.String())
	assert.Equal(t, "LocalStation", LocalStation.String())
	assert.Equal(t, "RemoteBroadcast", RemoteBroadcast.String())
	assert.Equal(t, "RemoteStation", RemoteStation.String())
	assert.Equal(t, "GlobalBroadcast", GlobalBroadcast.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func Test_NewLocalStation(t *testing.T) {
	a, err := NewLocalStation(1)
	require.NoError(t, err)
	match(t, a, LocalStation, -1, []byte{0x01})
	assert.Equal(t, "1", a.String())

	a, err = NewLocalStation([]byte{0x01, 0x02})
	require.NoError(t, err)
	match(t, a, LocalStation, -1, []byte{0x01, 0x02})
	assert.Equal(t, "0x0102", a.String())

	a, err = NewLocalStation([]byte{0x01, 0x02, 0x03, 0x04, 0xba, 0xc0})
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.4", a.String())

	_, err = NewLocalStation(-1)
	assert.True(t, IsRangeError(err))

	_, err = NewLocalStation(256)
	assert.True(t, IsRangeError(err))

	_, err = NewLocalStation(nil)
	assert.True(t, IsArgumentError(err))

	_, err = NewLocalStation("1")
	assert.True(t, IsArgumentError(err))

	_, err = NewLocalStation([]byte{})
	assert.True(t, IsArgumentError(err))
}

func Test_NewRemoteStation(t *testing.T) {
	a, err := NewRemoteStation(1, 1)
	require.NoError(t, err)
	match(t, a, RemoteStation, 1, []byte{0x01})
	assert.Equal(t, "1:1", a.String())

	a, err = NewRemoteStation(1, []byte{0x01, 0x02})
	require.NoError(t, err)
	match(t, a, RemoteStation, 1, []byte{0x01, 0x02})
	assert.Equal(t, "1:0x0102", a.String())

	a, err = NewRemoteStation(1, []byte{0x01, 0x02, 0x03, 0x04, 0xba, 0xc0})
	require.NoError(t, err)
	assert.Equal(t, "1:1.2.3.4", a.String())

	_, err = NewRemoteStation(-1, 1)
	assert.True(t, IsRangeError(err))

	_, err = NewRemoteStation(65536, 1)
	assert.True(t, IsRangeError(err))

	_, err = NewRemoteStation(1, -1)
	assert.True(t, IsRangeError(err))

	_, err = NewRemoteStation(1, 256)
	assert.True(t, IsRangeError(err))

	_, err = NewRemoteStation(1, nil)
	assert.True(t, IsArgumentError(err))

	_, err = NewRemoteStation(1, "x")
	assert.True(t, IsArgumentError(err))
}

func Test_NewRemoteBroadcast(t *testing.T) {
	a, err := NewRemoteBroadcast(1)
	require.NoError(t, err)
	match(t, a, RemoteBroadcast, 1, nil)
	assert.Equal(t, "1:*", a.String())

	_, err = NewRemoteBroadcast(-1)
	assert.True(t, IsRangeError(err))

	_, err = NewRemoteBroadcast(65536)
	assert.True(t, IsRangeError(err))
}

func Test_Broadcasts(t *testing.T) {
	local := NewLocalBroadcast()
	match(t, local, LocalBroadcast, -1, nil)
	assert.Equal(t, "*", local.String())
	assert.True(t, local.IsBroadcast())
	assert.False(t, local.IsRemote())

	global := NewGlobalBroadcast()
	match(t, global, GlobalBroadcast, -1, nil)
	assert.Equal(t, "*:*", global.String())
	assert.True(t, global.IsBroadcast())

	remote, err := NewRemoteBroadcast(5)
	require.NoError(t, err)
	assert.True(t, remote.IsBroadcast())
	assert.True(t, remote.IsRemote())
}

func Test_Equal(t *testing.T) {
	mustParse := func(v interface{}) Address {
		a, err := Parse(v)
		require.NoError(t, err)
		return a
	}

	one, err := NewLocalStation(1)
	require.NoError(t, err)

	// equality is structural, not textual
	assert.True(t, mustParse("1").Equal(one))
	assert.True(t, mustParse(1).Equal(one))
	assert.True(t, mustParse([]byte{0x01}).Equal(one))

	remote, err := NewRemoteStation(3, 4)
	require.NoError(t, err)
	assert.True(t, mustParse("3:4").Equal(remote))

	remoteBroadcast, err := NewRemoteBroadcast(5)
	require.NoError(t, err)
	assert.True(t, mustParse("5:*").Equal(remoteBroadcast))

	assert.True(t, mustParse("*").Equal(NewLocalBroadcast()))
	assert.True(t, mustParse("*:*").Equal(NewGlobalBroadcast()))
	assert.True(t, mustParse(nil).Equal(NewNullAddress()))

	// different kinds, networks or bytes never compare equal
	assert.False(t, one.Equal(remote))
	assert.False(t, mustParse("1:2").Equal(mustParse("2:2")))
	assert.False(t, mustParse("1:2").Equal(mustParse("1:3")))
	assert.False(t, NewLocalBroadcast().Equal(NewGlobalBroadcast()))
}

func Test_Immutability(t *testing.T) {
	mac := []byte{0x01, 0x02}
	a, err := NewLocalStation(mac)
	require.NoError(t, err)

	// mutating the input slice must not affect the record
	mac[0] = 0xff
	got, ok := a.Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02}, got)

	// mutating the returned slice must not either
	got[1] = 0xff
	again, _ := a.Bytes()
	assert.Equal(t, []byte{0x01, 0x02}, again)
}

func Test_TextMarshaling(t *testing.T) {
	cases := []string{"Null", "*", "*:*", "5:*", "1", "0x0102", "1:0x0203", "1.2.3.4", "1.2.3.4:47809"}

	for i, c := range cases {
		var a Address
		require.NoError(t, a.UnmarshalText([]byte(c)), "Test case #%d (%q) failed", i, c)

		text, err := a.MarshalText()
		require.NoError(t, err, "Test case #%d (%q) failed", i, c)
		assert.Equal(t, c, string(text), "Test case #%d failed", i)
	}

	var a Address
	err := a.UnmarshalText([]byte("not-an-address"))
	assert.True(t, IsFormatError(err))
}
