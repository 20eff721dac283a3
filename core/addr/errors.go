package addr

import (
	"fmt"
)

type (
	// FormatError is returned when input text does not match any
	// grammar rule
	FormatError struct {
		// Text holds the input that could not be parsed
		Text string
	}

	// RangeError is returned when a numeric component of an address
	// is outside its legal interval
	RangeError struct {
		// Field names the offending component (station, network,
		// octet, port)
		Field string

		// Value is the out-of-range value
		Value int

		// Min and Max describe the legal interval
		Min, Max int
	}

	// ArgumentError is returned by the kind-specific constructors
	// when they receive an argument of the wrong shape or type
	ArgumentError struct {
		// Constructor names the constructor that was called
		Constructor string

		// Reason describes what was wrong with the arguments
		Reason string
	}
)

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid address %q", e.Text)
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Constructor, e.Reason)
}

// IsFormatError returns true if err is a FormatError
func IsFormatError(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(*FormatError)
	return ok
}

// IsRangeError returns true if err is a RangeError
func IsRangeError(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(*RangeError)
	return ok
}

// IsArgumentError returns true if err is an ArgumentError
func IsArgumentError(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(*ArgumentError)
	return ok
}
