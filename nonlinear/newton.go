package nonlinear

import (
	"errors"
	"fmt"

	"github.com/notargets/goburgers/utils"
)

// Sentinel errors returned by the Newton iteration.
var (
	ErrInvalidOptions = errors.New("nonlinear: invalid options")
	ErrMaxIterations  = errors.New("nonlinear: maximum iterations reached without convergence")
	ErrDiverged       = errors.New("nonlinear: iteration diverged (non-finite residual or increment)")
)

// System is a residual relation R(u) = 0 together with its analytic
// linearization. Residual writes R(u) into r; Jacobian assembles
// dR/du at u into J, overwriting previous contents.
type System interface {
	Size() int
	Residual(u, r utils.Vector)
	Jacobian(u utils.Vector, J utils.DOK)
}

// Newton is a persistent root-finding handle bound to one System and
// one unknown vector. Scratch storage is allocated once at
// construction and reused every Solve call, which is what makes
// stateful reuse across time steps cheap.
type Newton struct {
	sys System
	u   utils.Vector
	opt Options

	r, du utils.Vector
	jac   utils.DOK
	dense utils.Matrix // DirectFactorization workspace
	lower utils.Vector // Tridiagonal workspace
	diag  utils.Vector
	upper utils.Vector
	cw    utils.Vector // Thomas sweep scratch
	dw    utils.Vector
}

// New validates opt and allocates the handle. u is the unknown the
// handle solves for in place; it must have the System's size.
func New(sys System, u utils.Vector, opt Options) (*Newton, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	n := sys.Size()
	if u.Len() != n {
		return nil, fmt.Errorf("%w: unknown has length %d, system size is %d",
			ErrInvalidOptions, u.Len(), n)
	}
	nt := &Newton{
		sys: sys,
		u:   u,
		opt: opt,
		r:   utils.NewVector(n),
		du:  utils.NewVector(n),
		jac: utils.NewDOK(n, n),
	}
	switch opt.LinearSolve {
	case DirectFactorization:
		nt.dense = utils.NewMatrix(n, n)
	case Tridiagonal:
		nt.lower = utils.NewVector(n)
		nt.diag = utils.NewVector(n)
		nt.upper = utils.NewVector(n)
		nt.cw = utils.NewVector(n)
		nt.dw = utils.NewVector(n)
	}
	return nt, nil
}

// Solve drives the Newton iteration on the bound unknown until a
// convergence criterion is met or the iteration budget runs out. On
// success the unknown holds the root; on failure it holds the last
// iterate.
func (nt *Newton) Solve() error {
	var (
		firstResid float64
	)
	for it := 0; it < nt.opt.MaxIterations; it++ {
		nt.sys.Residual(nt.u, nt.r)
		largFb := nt.r.MaxAbs()
		if !utils.IsFinite(largFb) {
			return fmt.Errorf("%w: residual at iteration %d", ErrDiverged, it)
		}
		if it == 0 {
			firstResid = largFb
		}
		if largFb < nt.opt.ResidualTol {
			return nil
		}
		if it > 0 && largFb < nt.opt.RelativeTol*firstResid {
			return nil
		}

		nt.sys.Jacobian(nt.u, nt.jac)
		if err := nt.linearSolve(); err != nil {
			return err
		}
		if !nt.du.Finite() {
			return fmt.Errorf("%w: increment at iteration %d", ErrDiverged, it)
		}
		// u <- u - J^{-1} R
		nt.u.Subtract(nt.du)
		if nt.du.RMS() < nt.opt.IncrementTol {
			return nil
		}
	}
	return fmt.Errorf("%w after %d iterations", ErrMaxIterations, nt.opt.MaxIterations)
}

// linearSolve computes du from jac*du = r.
func (nt *Newton) linearSolve() error {
	switch nt.opt.LinearSolve {
	case Tridiagonal:
		return nt.thomasSolve()
	case DirectFactorization:
		fallthrough
	default:
		nt.jac.ToDense(nt.dense)
		return nt.dense.LUSolve(nt.r, nt.du)
	}
}

// thomasSolve runs the Thomas elimination for a tridiagonal Jacobian.
// Any entry outside the three bands fails the extraction.
func (nt *Newton) thomasSolve() (err error) {
	var (
		n  = nt.u.Len()
		a  = nt.lower.Zero().DataP()
		b  = nt.diag.Zero().DataP()
		c  = nt.upper.Zero().DataP()
		r  = nt.r.DataP()
		du = nt.du.DataP()
	)
	nt.jac.DoNonZero(func(i, j int, val float64) {
		switch {
		case i == j:
			b[i] = val
		case j == i-1:
			a[i] = val
		case j == i+1:
			c[i] = val
		case val != 0:
			err = fmt.Errorf("%w: Jacobian entry (%d,%d) outside tridiagonal bands",
				ErrInvalidOptions, i, j)
		}
	})
	if err != nil {
		return
	}
	// Forward sweep works on separate scratch so r and the bands are
	// preserved for the caller's convergence bookkeeping.
	cp := nt.cw.DataP()
	dp := nt.dw.DataP()
	cp[0] = c[0] / b[0]
	dp[0] = r[0] / b[0]
	for i := 1; i < n; i++ {
		den := b[i] - a[i]*cp[i-1]
		cp[i] = c[i] / den
		dp[i] = (r[i] - a[i]*dp[i-1]) / den
	}
	du[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		du[i] = dp[i] - cp[i]*du[i+1]
	}
	return nil
}

// Solve is the one-shot convenience: it builds a Newton handle, runs
// it once and discards it. Numerically identical to the persistent
// handle for identical inputs; use New directly when solving the same
// system repeatedly.
func Solve(sys System, u utils.Vector, opt Options) error {
	nt, err := New(sys, u, opt)
	if err != nil {
		return err
	}
	return nt.Solve()
}
