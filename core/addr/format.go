package addr

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
)

// portBandMask and portBand describe the reserved UDP port band
// 0xBA00-0xBAFF. Only a 6-byte station whose trailing two bytes fall
// into this band is rendered as an IPv4 address plus port; everything
// else is indistinguishable from an arbitrary 6-byte hardware address
// and falls back to hex.
const (
	portBandMask = 0xFF00
	portBand     = 0xBA00
)

// String renders the canonical textual form of the address. Formatting
// works on the validated record only; two equal records always render
// identically, no matter which spelling they were parsed from.
func (a Address) String() string {
	switch a.kind {
	case Null:
		return "Null"

	case LocalBroadcast:
		return "*"

	case GlobalBroadcast:
		return "*:*"

	case RemoteBroadcast:
		return strconv.Itoa(int(a.network)) + ":*"

	case RemoteStation:
		return strconv.Itoa(int(a.network)) + ":" + stationString(a.mac)

	case LocalStation:
		return stationString(a.mac)
	}

	return "Kind(" + strconv.Itoa(int(a.kind)) + ")"
}

// stationString computes the nicest textual form of a station byte
// sequence
func stationString(mac []byte) string {
	switch len(mac) {
	case 1:
		return strconv.Itoa(int(mac[0]))

	case 2:
		return "0x" + hex.EncodeToString(mac)

	case 6:
		port := binary.BigEndian.Uint16(mac[4:])
		if port&portBandMask == portBand {
			host := fmt.Sprintf("%d.%d.%d.%d", mac[0], mac[1], mac[2], mac[3])
			if port == DefaultPort {
				return host
			}

			return host + ":" + strconv.Itoa(int(port))
		}
	}

	return "0x" + hex.EncodeToString(mac)
}
