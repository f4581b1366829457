package utf8codec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScalarValue  = errors.New("utf8codec: invalid scalar value")
	ErrInvalidByteSequence = errors.New("utf8codec: invalid byte sequence")
	ErrPayloadTooLarge     = errors.New("utf8codec: payload too large")
)

// InvalidScalarError is returned by the encoders for surrogate halves and
// values above U+10FFFF. Index is the position in the input sequence, or -1
// for single-scalar calls.
type InvalidScalarError struct {
	Value Scalar
	Index int
}

func (e *InvalidScalarError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("utf8codec: invalid scalar value %s", e.Value)
	}
	return fmt.Sprintf("utf8codec: invalid scalar value %s at index %d", e.Value, e.Index)
}

func (e *InvalidScalarError) Unwrap() error { return ErrInvalidScalarValue }

// SequenceError describes the first invalid span found by a strict decode.
type SequenceError struct {
	Offset int64
	Size   int
	Reason Reason
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("utf8codec: invalid byte sequence at offset %d (%d bytes): %s",
		e.Offset, e.Size, e.Reason)
}

func (e *SequenceError) Unwrap() error { return ErrInvalidByteSequence }

// PayloadTooLargeError is returned when a buffer exceeds the configured
// decode limit. Nothing was decoded.
type PayloadTooLargeError struct {
	Size  int
	Limit int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("utf8codec: payload too large: %d > %d", e.Size, e.Limit)
}

func (e *PayloadTooLargeError) Unwrap() error { return ErrPayloadTooLarge }
