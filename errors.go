package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfRange is matched by every error returned from a checked accessor
// given an index outside [0, Size()).
var ErrOutOfRange = errors.New("vector: index out of range")

// OutOfRangeError describes a rejected checked access.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range for size %d", e.Index, e.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any OutOfRangeError.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(i, size int) error {
	return errors.WithStack(&OutOfRangeError{Index: i, Size: size})
}
