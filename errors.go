package configparseradv

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrValueTooShort is returned when a converted list has fewer
	// elements than the converter's minimum length.
	ErrValueTooShort = errors.New("configparseradv: value length smaller than accepted")

	// ErrFallbackMismatch is returned by the batch accessors when the
	// number of fallbacks matches neither one nor the number of keys.
	ErrFallbackMismatch = errors.New("configparseradv: fallbacks and keys lengths do not match")
)

// ConversionError reports that an option's text could not be converted to
// the requested type. It wraps the underlying parse failure when there is
// one.
type ConversionError struct {
	Value  string // Raw option text
	Target string // Requested type (e.g. "int", "bool", "quantity")
	Err    error  // Underlying cause, may be nil
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configparseradv: cannot convert %q to %s: %v", e.Value, e.Target, e.Err)
	}
	return fmt.Sprintf("configparseradv: cannot convert %q to %s", e.Value, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError reports an unrecognized dtype tag.
type UnsupportedTypeError struct {
	DType DType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("configparseradv: converter to %q not available", string(e.DType))
}

func convErr(value, target string, err error) *ConversionError {
	return &ConversionError{Value: value, Target: target, Err: err}
}
