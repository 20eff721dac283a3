// Package addr implements the polymorphic address value used by the
// BACnet-style network layer: a single record that can denote a null
// address, a local or global broadcast, a broadcast on a numbered remote
// network, or a unicast station that is either local or sits behind a
// router on a remote network. The record is immutable once constructed
// and all validation happens at construction time.
package addr

import (
	"bytes"
	"strconv"
)

// DefaultPort is the well-known UDP port used when a dotted-quad
// station address does not carry an explicit port.
const DefaultPort uint16 = 0xBAC0

// Kind identifies which variant an Address represents. The numeric
// values follow the network layer convention and must not be reordered.
type Kind uint8

const (
	// Null is the absence of an address
	Null Kind = iota

	// LocalBroadcast addresses all stations on the local network
	LocalBroadcast

	// LocalStation addresses a single station on the local network
	LocalStation

	// RemoteBroadcast addresses all stations on a numbered remote network
	RemoteBroadcast

	// RemoteStation addresses a single station on a numbered remote network
	RemoteStation

	// GlobalBroadcast addresses all stations on all networks
	GlobalBroadcast
)

var kindNames = map[Kind]string{
	Null:            "Null",
	LocalBroadcast:  "LocalBroadcast",
	LocalStation:    "LocalStation",
	RemoteBroadcast: "RemoteBroadcast",
	RemoteStation:   "RemoteStation",
	GlobalBroadcast: "GlobalBroadcast",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Address is the canonical address record. The zero value is the null
// address. Station bytes and the network number are only reachable
// through accessors so a constructed record cannot be mutated.
type Address struct {
	kind    Kind
	network uint16
	mac     []byte
}

// Kind returns the address variant
func (a Address) Kind() Kind {
	return a.kind
}

// Network returns the remote network number. The second return value
// reports whether a network number is present at all; it is true only
// for RemoteBroadcast and RemoteStation addresses.
func (a Address) Network() (uint16, bool) {
	if a.kind == RemoteBroadcast || a.kind == RemoteStation {
		return a.network, true
	}

	return 0, false
}

// Bytes returns a copy of the station address bytes. The second return
// value is false for broadcast kinds which carry no station bytes. A
// null address reports an empty (but present) byte sequence.
func (a Address) Bytes() ([]byte, bool) {
	switch a.kind {
	case Null, LocalStation, RemoteStation:
		return append([]byte{}, a.mac...), true
	}

	return nil, false
}

// Len returns the station address length in bytes and whether a
// station byte sequence is present for this kind
func (a Address) Len() (int, bool) {
	switch a.kind {
	case Null, LocalStation, RemoteStation:
		return len(a.mac), true
	}

	return 0, false
}

// IsBroadcast reports whether the address denotes "all stations" on
// some scope
func (a Address) IsBroadcast() bool {
	return a.kind == LocalBroadcast || a.kind == RemoteBroadcast || a.kind == GlobalBroadcast
}

// IsRemote reports whether the address carries a network number
func (a Address) IsRemote() bool {
	return a.kind == RemoteBroadcast || a.kind == RemoteStation
}

// Equal reports whether two addresses are structurally equal. Equality
// is byte-for-byte on the station address; the textual spelling the
// records were parsed from does not matter.
func (a Address) Equal(b Address) bool {
	if a.kind != b.kind {
		return false
	}

	if a.IsRemote() && a.network != b.network {
		return false
	}

	return bytes.Equal(a.mac, b.mac)
}

// MarshalText implements encoding.TextMarshaler and emits the
// canonical textual form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. In addition to
// the textual grammar it accepts the literal "Null" so that a
// marshaled null address round-trips.
func (a *Address) UnmarshalText(text []byte) error {
	if string(text) == "Null" {
		*a = NewNullAddress()
		return nil
	}

	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// NewNullAddress returns the null address
func NewNullAddress() Address {
	return Address{kind: Null}
}

// NewLocalBroadcast returns the local broadcast address
func NewLocalBroadcast() Address {
	return Address{kind: LocalBroadcast}
}

// NewGlobalBroadcast returns the global broadcast address
func NewGlobalBroadcast() Address {
	return Address{kind: GlobalBroadcast}
}

// NewLocalStation builds a unicast station address on the local
// network. The station argument may be an int in [0, 255], producing a
// single address byte, or a non-empty byte sequence that is used
// verbatim. Any other argument type fails with an ArgumentError.
func NewLocalStation(station interface{}) (Address, error) {
	mac, err := stationBytes("NewLocalStation", station)
	if err != nil {
		return Address{}, err
	}

	return Address{kind: LocalStation, mac: mac}, nil
}

// NewRemoteBroadcast builds a broadcast address for the given remote
// network number
func NewRemoteBroadcast(network int) (Address, error) {
	if network < 0 || network > 0xFFFF {
		return Address{}, &RangeError{Field: "network", Value: network, Min: 0, Max: 0xFFFF}
	}

	return Address{kind: RemoteBroadcast, network: uint16(network)}, nil
}

// NewRemoteStation builds a unicast station address behind the given
// remote network number. The station argument follows the same rules
// as NewLocalStation.
func NewRemoteStation(network int, station interface{}) (Address, error) {
	if network < 0 || network > 0xFFFF {
		return Address{}, &RangeError{Field: "network", Value: network, Min: 0, Max: 0xFFFF}
	}

	mac, err := stationBytes("NewRemoteStation", station)
	if err != nil {
		return Address{}, err
	}

	return Address{kind: RemoteStation, network: uint16(network), mac: mac}, nil
}

// stationBytes converts a constructor station argument into the
// canonical byte sequence
func stationBytes(constructor string, station interface{}) ([]byte, error) {
	switch s := station.(type) {
	case int:
		if s < 0 || s > 0xFF {
			return nil, &RangeError{Field: "station", Value: s, Min: 0, Max: 0xFF}
		}
		return []byte{byte(s)}, nil

	case []byte:
		if len(s) == 0 {
			return nil, &ArgumentError{Constructor: constructor, Reason: "station byte sequence must not be empty"}
		}
		return append([]byte{}, s...), nil

	case nil:
		return nil, &ArgumentError{Constructor: constructor, Reason: "station argument is required"}
	}

	return nil, &ArgumentError{Constructor: constructor, Reason: "station must be an int or a byte sequence"}
}
