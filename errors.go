package radixheap

import (
	"errors"
	"fmt"
)

var (
	// ErrNilKeyFunc is returned when the key extraction function is nil.
	ErrNilKeyFunc = errors.New("radixheap: key extraction function must not be nil")
)

// ErrInvalidRadix indicates an unsupported radix configuration. The radix
// controls the branching factor of the bucket hierarchy and has to be a
// power of two between 2 and 64.
type ErrInvalidRadix struct {
	Radix uint
}

func (e *ErrInvalidRadix) Error() string {
	return fmt.Sprintf("radixheap: invalid radix %d: must be a power of two between 2 and 64", e.Radix)
}
