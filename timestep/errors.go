package timestep

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the driver.
var (
	// ErrInvalidConfiguration indicates a bad step size, reversed time
	// bounds, aliased state arguments or a missing solver, detected
	// before any stepping.
	ErrInvalidConfiguration = errors.New("timestep: invalid configuration")

	// ErrSolveDidNotConverge indicates the nonlinear solve for a step
	// failed; the driver performs no internal retry.
	ErrSolveDidNotConverge = errors.New("timestep: solve did not converge")

	// ErrNumericalDivergence indicates a NaN or Inf was detected in the
	// state returned by an otherwise successful solve.
	ErrNumericalDivergence = errors.New("timestep: numerical divergence (NaN or Inf in state)")

	// ErrDriverFinished indicates Step was called on a driver that has
	// already completed or failed; a fresh constructor call is required.
	ErrDriverFinished = errors.New("timestep: driver already finished")
)

// StepError wraps a step failure with the step index and simulation time
// at which it occurred.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t = %g): %s", e.Step, e.Time, e.Err.Error())
}

func (e *StepError) Unwrap() error {
	return e.Err
}
