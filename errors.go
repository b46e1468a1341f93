package balancecurve

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidInput matches every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// ErrDegenerateRange matches every *DegenerateRangeError.
var ErrDegenerateRange = errors.New("degenerate range")

// InvalidInputError reports an input which cannot be normalized or drawn:
// an empty series, a non-finite value or bad dimensions.
type InvalidInputError struct {
	Field string // the offending input, e.g. "series" or "dimensions"
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// DegenerateRangeError reports a series whose samples are all equal to Value.
// Such a series has no vertical scale.
type DegenerateRangeError struct {
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate range: all samples equal %g", e.Value)
}

// Is makes errors.Is(err, ErrDegenerateRange) hold.
func (e *DegenerateRangeError) Is(target error) bool { return target == ErrDegenerateRange }
