package builder

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNegativeExtent  = errors.New("negative extent")
	ErrUnsupportedRank = errors.New("unsupported rank: must be 1, 2, 3 or 4")
	ErrRagged          = errors.New("ragged container: sibling slices differ in length")
	ErrNotContainer    = errors.New("not a nested slice container")
	ErrZeroStep        = errors.New("step must not be zero")
	ErrNonFinite       = errors.New("bound or step is NaN or infinite")
	ErrRangeTooLarge   = errors.New("range has too many elements")
)

// ExtentError reports an invalid extent along one axis.
type ExtentError struct {
	Axis   int // Axis index, 0 is outermost.
	Extent int // Offending extent.
}

// Error implements the error interface.
func (e *ExtentError) Error() string {
	return fmt.Sprintf("%s at axis %d: %d (must be >= 0)", ErrNegativeExtent, e.Axis, e.Extent)
}

// Unwrap returns ErrNegativeExtent so callers can match with errors.Is.
func (e *ExtentError) Unwrap() error {
	return ErrNegativeExtent
}
