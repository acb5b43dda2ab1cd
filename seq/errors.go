package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted reports that a sequence ran out of items before an
	// operation could complete.
	ErrExhausted = errors.New("seq: sequence exhausted")
	// ErrZeroStep is the panic value of StepBy when given a non-positive step.
	ErrZeroStep = errors.New("seq: step must be greater than zero")
)

// AdvanceError is returned by AdvanceBy and AdvanceBackBy when the sequence is
// exhausted early. Remaining is the number of steps that were not taken.
type AdvanceError struct {
	Requested int
	Remaining int
}

func (e *AdvanceError) Error() string {
	return fmt.Sprintf("seq: advanced %d of %d steps", e.Requested-e.Remaining, e.Requested)
}

// Is makes AdvanceError match ErrExhausted.
func (e *AdvanceError) Is(target error) bool {
	return target == ErrExhausted
}
