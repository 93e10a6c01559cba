package Burgers1D

import (
	"fmt"

	"github.com/notargets/goburgers/CG1D"
	"github.com/notargets/goburgers/nonlinear"
	"github.com/notargets/goburgers/timestep"
)

// Parameters is the full, typed configuration of a Burgers run.
type Parameters struct {
	K            int     // Number of elements
	XMin, XMax   float64 // Interval
	Nu           float64 // Diffusion coefficient
	Dt           float64
	TStart       float64
	FinalTime    float64
	Case         CaseType
	BC           CG1D.BoundaryConditions
	ReuseSolver  bool // persistent Newton handle vs per-step one-shot
	Solver       nonlinear.Options
	LogFrequency int
}

func DefaultParameters() Parameters {
	return Parameters{
		K:            100,
		XMin:         0,
		XMax:         1,
		Nu:           0.01,
		Dt:           0.01,
		TStart:       0,
		FinalTime:    0.5,
		Case:         SineWave,
		BC:           CG1D.BoundaryConditions{Type: CG1D.Dirichlet},
		ReuseSolver:  true,
		Solver:       nonlinear.DefaultOptions(),
		LogFrequency: 10,
	}
}

// Burgers1D solves du/dt + u du/dx = nu d2u/dx2 with backward-Euler
// time stepping on P1 continuous-Galerkin elements.
type Burgers1D struct {
	Params       Parameters
	Mesh         CG1D.Mesh
	UPrev, UNext *Field
	System       *BackwardEuler
	Driver       *timestep.Driver
	cfg          timestep.Config
}

// NewBurgers1D builds the mesh, fields, residual relation, solver and
// driver for the configured operating mode. Configuration problems
// surface as timestep.ErrInvalidConfiguration or
// nonlinear.ErrInvalidOptions before any stepping.
func NewBurgers1D(p Parameters) (c *Burgers1D, err error) {
	c = &Burgers1D{
		Params: p,
		Mesh:   CG1D.SimpleMesh1D(p.XMin, p.XMax, p.K),
		cfg: timestep.Config{
			Dt:     p.Dt,
			TStart: p.TStart,
			TEnd:   p.FinalTime,
		},
	}
	n := c.Mesh.NumNodes()
	c.UPrev = NewField(n)
	InitialCondition(p.Case, c.Mesh, c.UPrev)
	if p.BC.Type == CG1D.Dirichlet && p.BC.Left == 0 && p.BC.Right == 0 {
		// Pin the ends at the initial profile when no explicit values
		// were configured.
		c.Params.BC.Left = c.UPrev.U.AtVec(0)
		c.Params.BC.Right = c.UPrev.U.AtVec(n - 1)
	}
	// The next state starts at the initial profile: the previous step's
	// solution is the natural Newton initial guess.
	c.UNext = c.UPrev.Copy().(*Field)

	c.System = NewBackwardEuler(c.Mesh, p.Nu, p.Dt, c.UPrev, c.Params.BC)

	if p.ReuseSolver {
		var handle *nonlinear.Newton
		if handle, err = nonlinear.New(c.System, c.UNext.U, p.Solver); err != nil {
			return nil, err
		}
		c.Driver, err = timestep.New(c.UPrev, c.UNext, handle, c.cfg)
	} else {
		factory := func() (timestep.Solver, error) {
			// One-shot mode: fresh solver machinery per step through
			// the package-level convenience, discarded after use.
			return timestep.SolverFunc(func() error {
				return nonlinear.Solve(c.System, c.UNext.U, c.Params.Solver)
			}), nil
		}
		c.Driver, err = timestep.NewOneShot(c.UPrev, c.UNext, factory, c.cfg)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Run advances the problem to completion and returns the trajectory.
// With verbose set, progress is reported every LogFrequency steps.
func (c *Burgers1D) Run(verbose bool) (timestep.Trajectory, error) {
	var (
		numSteps = c.cfg.NumSteps()
		logFreq  = c.Params.LogFrequency
	)
	if verbose {
		fmt.Printf("Viscous Burgers' Equation in 1 Dimension\n")
		fmt.Printf("Backward Euler, Newton solve per step, %s linear solve\n",
			c.Params.Solver.LinearSolve)
		fmt.Printf("Nu = %8.4f, Dt = %8.4f, FinalTime = %8.4f, Num Elements K = %d\n\n",
			c.Params.Nu, c.Params.Dt, c.Params.FinalTime, c.Params.K)
		c.Driver.AddObserver(timestep.ObserverFunc(func(step int, t float64, s timestep.State) {
			if logFreq > 0 && (step%logFreq == 0 || step == numSteps) {
				f := s.(*Field)
				fmt.Printf("Time = %8.4f, step %d of %d, umin = %8.6f, umax = %8.6f\n",
					t, step, numSteps, f.U.Min(), f.U.Max())
			}
		}))
	}
	return c.Driver.Run()
}
