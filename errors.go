package blob

import (
	"errors"
	"fmt"
)

// expecting names the input shapes deserialization accepts. It is embedded
// in every wrong-shape error so the report reads the same across formats.
const expecting = "a base64-encoded string or a sequence of byte values"

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDecode indicates input that is not valid base64 under the
	// Blob's encoding.
	ErrDecode = errors.New("invalid base64")

	// ErrByteRange indicates a sequence element outside the 0-255 range
	// encountered during deserialization.
	ErrByteRange = errors.New("byte value out of range")
)

// DecodeError represents a base64 decoding failure.
// It wraps ErrDecode with the underlying codec error, which reports the
// offending input position.
type DecodeError struct {
	Err   error // Sentinel error (ErrDecode)
	Cause error // Original error from the base64 codec
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RangeError represents a sequence element that does not fit in a byte.
// It wraps ErrByteRange with the element's position and value.
type RangeError struct {
	Err   error // Sentinel error (ErrByteRange)
	Index int   // Position of the offending element in the sequence
	Value int64 // The out-of-range value
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: element %d is %d", e.Err.Error(), e.Index, e.Value)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a DecodeError for base64 decoding failures.
func newDecodeError(cause error) error {
	return &DecodeError{
		Err:   ErrDecode,
		Cause: cause,
	}
}

// newRangeError creates a RangeError for out-of-range sequence elements.
func newRangeError(index int, value int64) error {
	return &RangeError{
		Err:   ErrByteRange,
		Index: index,
		Value: value,
	}
}
