package ie

import (
	"errors"
	"fmt"
)

// ErrOverflow indicates a tag declared more value bytes than remain in the region.
var ErrOverflow = errors.New("tagged parameter overflow")

// OverflowError is returned by the tag iterator when a declared tag length
// cannot be satisfied by the remaining buffer.
type OverflowError struct {
	Required  int // Declared value length
	Remaining int // Bytes actually left after the tag header
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow: expected %d bytes but only %d are remaining", e.Required, e.Remaining)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
