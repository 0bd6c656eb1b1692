package price

import (
	"errors"
	"fmt"
)

var (
	errEmptyWhole  = errors.New("missing whole points")
	errWholeDigits = errors.New("whole points must be decimal digits")
	errWholeRange  = errors.New("whole points out of range")
)

// FormatError reports price text that cannot be decoded.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("price: malformed %q: %s", e.Input, e.Reason)
}

// RangeError reports a price the text form cannot represent.
type RangeError struct {
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("price: %v outside encodable range [0, %d]", e.Value, MaxWhole)
}
