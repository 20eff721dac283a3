package addr

import (
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalRe    = regexp.MustCompile(`^\d+$`)
	dottedQuadRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.(\d+)(?::(\d+))?$`)
	hexOctetsRe  = regexp.MustCompile(`^[0-9A-Fa-f]{2}(?::[0-9A-Fa-f]{2})+$`)
	modernHexRe  = regexp.MustCompile(`^0[xX]((?:[0-9A-Fa-f][0-9A-Fa-f])+)$`)
	legacyHexRe  = regexp.MustCompile(`^[xX]'((?:[0-9A-Fa-f][0-9A-Fa-f])+)'$`)
)

// Parse is the single entry point for building an address from an
// untyped value. It accepts nil (producing the null address), an int
// in [0, 255] (a one-byte local station), a non-empty byte sequence
// (a local station used verbatim) or a string parsed by the textual
// grammar. Any other value fails with an ArgumentError.
func Parse(value interface{}) (Address, error) {
	switch v := value.(type) {
	case nil:
		return NewNullAddress(), nil

	case int:
		if v < 0 || v > 0xFF {
			return Address{}, &RangeError{Field: "station", Value: v, Min: 0, Max: 0xFF}
		}
		return Address{kind: LocalStation, mac: []byte{byte(v)}}, nil

	case []byte:
		if len(v) == 0 {
			return Address{}, &ArgumentError{Constructor: "Parse", Reason: "station byte sequence must not be empty"}
		}
		return Address{kind: LocalStation, mac: append([]byte{}, v...)}, nil

	case string:
		return parseString(v)
	}

	return Address{}, &ArgumentError{Constructor: "Parse", Reason: "value must be nil, an int, a byte sequence or a string"}
}

// parseString evaluates the textual grammar as an ordered rule list,
// first match wins. The order matters: a dotted quad with a port
// contains a colon and must be recognized before the text is split
// into network and station parts.
func parseString(s string) (Address, error) {
	if s == "*" {
		return NewLocalBroadcast(), nil
	}

	if s == "*:*" {
		return NewGlobalBroadcast(), nil
	}

	if dottedQuadRe.MatchString(s) {
		mac, err := parseDottedQuad(s)
		if err != nil {
			return Address{}, err
		}
		return Address{kind: LocalStation, mac: mac}, nil
	}

	switch strings.Count(s, ":") {
	case 0:
		mac, err := parseStationToken(s)
		if err != nil {
			return Address{}, err
		}
		return Address{kind: LocalStation, mac: mac}, nil

	case 1:
		return parseNetworkAndStation(s)
	}

	// more than one colon: only the hardware address notation of
	// 2-hex-digit octets is left
	if !hexOctetsRe.MatchString(s) {
		return Address{}, &FormatError{Text: s}
	}

	mac, err := hex.DecodeString(strings.ReplaceAll(s, ":", ""))
	if err != nil {
		return Address{}, &FormatError{Text: s}
	}

	return Address{kind: LocalStation, mac: mac}, nil
}

// parseNetworkAndStation handles the "network:station" and
// "network:*" forms
func parseNetworkAndStation(s string) (Address, error) {
	idx := strings.Index(s, ":")
	left, right := s[:idx], s[idx+1:]

	if !decimalRe.MatchString(left) {
		return Address{}, &FormatError{Text: s}
	}

	// Atoi clamps on overflow, the range check below still fires
	network, err := strconv.Atoi(left)
	if err != nil || network > 0xFFFF {
		return Address{}, &RangeError{Field: "network", Value: network, Min: 0, Max: 0xFFFF}
	}

	if right == "*" {
		return Address{kind: RemoteBroadcast, network: uint16(network)}, nil
	}

	mac, err := parseStationToken(right)
	if err != nil {
		return Address{}, err
	}

	return Address{kind: RemoteStation, network: uint16(network), mac: mac}, nil
}

// parseStationToken parses a station address token, either standalone
// or as the right-hand side of a "network:station" form
func parseStationToken(s string) ([]byte, error) {
	if decimalRe.MatchString(s) {
		station, err := strconv.Atoi(s)
		if err != nil || station > 0xFF {
			return nil, &RangeError{Field: "station", Value: station, Min: 0, Max: 0xFF}
		}

		return []byte{byte(station)}, nil
	}

	if dottedQuadRe.MatchString(s) {
		return parseDottedQuad(s)
	}

	if m := modernHexRe.FindStringSubmatch(s); m != nil {
		return decodeHexToken(s, m[1])
	}

	if m := legacyHexRe.FindStringSubmatch(s); m != nil {
		return decodeHexToken(s, m[1])
	}

	return nil, &FormatError{Text: s}
}

// parseDottedQuad converts "a.b.c.d" with an optional ":port" suffix
// into the 6-byte address-plus-port sequence. A missing port defaults
// to DefaultPort.
func parseDottedQuad(s string) ([]byte, error) {
	m := dottedQuadRe.FindStringSubmatch(s)
	if m == nil {
		return nil, &FormatError{Text: s}
	}

	mac := make([]byte, 6)
	for i := 0; i < 4; i++ {
		octet, err := strconv.Atoi(m[i+1])
		if err != nil || octet > 0xFF {
			return nil, &RangeError{Field: "octet", Value: octet, Min: 0, Max: 0xFF}
		}

		mac[i] = byte(octet)
	}

	port := int(DefaultPort)
	if m[5] != "" {
		var err error
		port, err = strconv.Atoi(m[5])
		if err != nil || port > 0xFFFF {
			return nil, &RangeError{Field: "port", Value: port, Min: 0, Max: 0xFFFF}
		}
	}

	binary.BigEndian.PutUint16(mac[4:], uint16(port))
	return mac, nil
}

func decodeHexToken(token, digits string) ([]byte, error) {
	mac, err := hex.DecodeString(digits)
	if err != nil {
		return nil, &FormatError{Text: token}
	}

	return mac, nil
}
