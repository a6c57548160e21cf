package player

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("invalid attempt state")

// InvalidStateError is returned when an operation is not allowed in the current phase.
type InvalidStateError struct {
	Op     string
	Phase  Phase
	Reason string
}

func (e *InvalidStateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: not allowed in %s phase: %s", e.Op, e.Phase, e.Reason)
	}
	return fmt.Sprintf("%s: not allowed in %s phase", e.Op, e.Phase)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// OutOfRangeError describes one entry dropped or clamped while reconciling a
// resume snapshot. It is recorded, never returned.
type OutOfRangeError struct {
	Field string
	Index int
	Limit int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("snapshot %s: index %d out of range [0,%d)", e.Field, e.Index, e.Limit)
}
