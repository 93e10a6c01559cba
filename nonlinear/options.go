package nonlinear

import (
	"fmt"
)

// Strategy selects how the Newton linear update is solved.
type Strategy uint8

const (
	// DirectFactorization expands the Jacobian to dense storage and
	// solves by LU factorization. Works for any non-singular Jacobian.
	DirectFactorization Strategy = iota
	// Tridiagonal solves by the Thomas algorithm. Valid only when the
	// Jacobian is tridiagonal; off-band entries are rejected during
	// extraction.
	Tridiagonal
)

var strategyNames = []string{
	"direct_factorization",
	"tridiagonal",
}

func (s Strategy) String() string {
	if int(s) >= len(strategyNames) {
		return fmt.Sprintf("unknown(%d)", s)
	}
	return strategyNames[s]
}

// ParseStrategy maps the case-file spelling onto the enum.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown linear solve strategy %q", ErrInvalidOptions, name)
}

// Options configures the Newton iteration. Convergence is declared when
// the largest-magnitude residual component falls below ResidualTol, or
// below RelativeTol times the first iterate's residual, or when the RMS
// of the Newton increment falls below IncrementTol.
type Options struct {
	MaxIterations int
	ResidualTol   float64
	RelativeTol   float64
	IncrementTol  float64
	LinearSolve   Strategy
}

func DefaultOptions() Options {
	return Options{
		MaxIterations: 25,
		ResidualTol:   1.e-10,
		RelativeTol:   1.e-9,
		IncrementTol:  1.e-12,
		LinearSolve:   DirectFactorization,
	}
}

func (o Options) Validate() error {
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations = %d, must be >= 1", ErrInvalidOptions, o.MaxIterations)
	}
	if o.ResidualTol <= 0 {
		return fmt.Errorf("%w: ResidualTol = %g, must be > 0", ErrInvalidOptions, o.ResidualTol)
	}
	if o.RelativeTol <= 0 {
		return fmt.Errorf("%w: RelativeTol = %g, must be > 0", ErrInvalidOptions, o.RelativeTol)
	}
	if o.IncrementTol <= 0 {
		return fmt.Errorf("%w: IncrementTol = %g, must be > 0", ErrInvalidOptions, o.IncrementTol)
	}
	if int(o.LinearSolve) >= len(strategyNames) {
		return fmt.Errorf("%w: LinearSolve = %d out of range", ErrInvalidOptions, o.LinearSolve)
	}
	return nil
}
