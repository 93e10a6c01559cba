package timestep

import (
	"fmt"
	"math"
)

// State is the opaque simulation field advanced by the driver. The
// driver never inspects values beyond the Finite check; concrete
// representations live with the model problems.
type State interface {
	// Copy returns a fresh, independent snapshot of the state.
	Copy() State
	// Assign copies src's values into the receiver. Implementations
	// panic on shape mismatch.
	Assign(src State)
	// Finite reports whether every stored value is neither NaN nor Inf.
	Finite() bool
}

// Solver is the opaque "solve this residual for this unknown"
// capability consumed once per step. The bound unknown is the driver's
// next state; the residual reads the previous state as a fixed input.
type Solver interface {
	Solve() error
}

// SolverFunc adapts a plain function to the Solver interface, used for
// one-shot solve-and-discard wiring.
type SolverFunc func() error

func (f SolverFunc) Solve() error { return f() }

// SolverFactory builds fresh solver machinery for a single step. Used
// by the one-shot driver mode; the returned solver is discarded after
// one Solve call.
type SolverFactory func() (Solver, error)

// Observer is notified after each successful step.
type Observer interface {
	OnStep(step int, t float64, s State)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(step int, t float64, s State)

func (f ObserverFunc) OnStep(step int, t float64, s State) { f(step, t, s) }

// Config holds the clock parameters of a run.
type Config struct {
	Dt     float64
	TStart float64
	TEnd   float64
}

// NumSteps returns the number of solves a run performs: one per step
// time in the closed interval [TStart, TEnd], so the final step may
// overshoot TEnd by up to one Dt. The count is computed once, with a
// small guard against floating-point division fuzz, so the loop bound
// does not depend on accumulated time.
func (cfg Config) NumSteps() int {
	return int(math.Floor((cfg.TEnd-cfg.TStart)/cfg.Dt+1.e-9)) + 1
}

func (cfg Config) validate() error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: Dt = %g, must be > 0", ErrInvalidConfiguration, cfg.Dt)
	}
	if cfg.TStart > cfg.TEnd {
		return fmt.Errorf("%w: TStart = %g exceeds TEnd = %g", ErrInvalidConfiguration,
			cfg.TStart, cfg.TEnd)
	}
	return nil
}

// Trajectory is the append-only history of snapshots produced by a run.
// Entry 0 is the initial state at TStart; entries are snapshot copies
// and are never mutated after append.
type Trajectory struct {
	Times  []float64
	States []State
}

func (tr Trajectory) Len() int { return len(tr.States) }

func (tr *Trajectory) append(t float64, s State) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, s)
}

// Driver advances a state through discrete time steps, solving one
// implicit root-finding problem per step. Strictly sequential and not
// safe for concurrent use; it owns its solver exclusively.
type Driver struct {
	prev, next State
	solver     Solver        // persistent handle, reused every step
	factory    SolverFactory // one-shot mode: fresh machinery per step
	cfg        Config
	t          float64
	stepsDone  int
	numSteps   int
	failed     bool
	observers  []Observer
}

// New constructs a driver that reuses a single persistent solver across
// every step (stateful reuse mode). prev holds the initial condition;
// next is the solver's bound unknown. The two must be distinct objects:
// the residual reads prev as a fixed input while the solver mutates
// next.
func New(prev, next State, solver Solver, cfg Config) (*Driver, error) {
	if solver == nil {
		return nil, fmt.Errorf("%w: nil solver", ErrInvalidConfiguration)
	}
	return newDriver(prev, next, solver, nil, cfg)
}

// NewOneShot constructs a driver that builds fresh solver machinery for
// every step and discards it after the single Solve call (stateless
// mode). Simpler and slower than New; for a deterministic solver the
// two modes produce identical trajectories.
func NewOneShot(prev, next State, build SolverFactory, cfg Config) (*Driver, error) {
	if build == nil {
		return nil, fmt.Errorf("%w: nil solver factory", ErrInvalidConfiguration)
	}
	return newDriver(prev, next, nil, build, cfg)
}

func newDriver(prev, next State, solver Solver, factory SolverFactory, cfg Config) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if prev == nil || next == nil {
		return nil, fmt.Errorf("%w: nil state", ErrInvalidConfiguration)
	}
	if prev == next {
		return nil, fmt.Errorf("%w: prev and next must not alias", ErrInvalidConfiguration)
	}
	return &Driver{
		prev:     prev,
		next:     next,
		solver:   solver,
		factory:  factory,
		cfg:      cfg,
		t:        cfg.TStart,
		numSteps: cfg.NumSteps(),
	}, nil
}

// AddObserver registers a per-step hook, invoked by Run after each
// successful step.
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Time returns the current simulation time.
func (d *Driver) Time() float64 { return d.t }

// Done reports whether the driver has completed or failed.
func (d *Driver) Done() bool { return d.failed || d.stepsDone >= d.numSteps }

// Step performs exactly one solve: the residual relation is solved for
// the next state given the previous state, the previous state is then
// reassigned to a value copy of the result, and the clock advances by
// Dt. Returns a snapshot copy of the new state and the new time. A
// solver failure or a non-finite result marks the driver failed; no
// further steps are possible without a fresh constructor call.
func (d *Driver) Step() (State, float64, error) {
	if d.Done() {
		return nil, d.t, ErrDriverFinished
	}
	if err := d.solve(); err != nil {
		d.failed = true
		return nil, d.t, &StepError{
			Step: d.stepsDone + 1,
			Time: d.t,
			Err:  fmt.Errorf("%w: %s", ErrSolveDidNotConverge, err.Error()),
		}
	}
	if !d.next.Finite() {
		d.failed = true
		return nil, d.t, &StepError{
			Step: d.stepsDone + 1,
			Time: d.t,
			Err:  ErrNumericalDivergence,
		}
	}
	// The next step's residual reads prev as a fixed input, so the
	// handoff must be a value copy, never an alias swap.
	d.prev.Assign(d.next)
	d.stepsDone++
	d.t = d.cfg.TStart + float64(d.stepsDone)*d.cfg.Dt
	return d.next.Copy(), d.t, nil
}

func (d *Driver) solve() error {
	if d.factory != nil {
		s, err := d.factory()
		if err != nil {
			return err
		}
		return s.Solve()
	}
	return d.solver.Solve()
}

// Run executes the remaining steps to completion, collecting one
// snapshot per step after seeding the trajectory with the initial
// state. On failure the trajectory is returned truncated at the last
// successful step, alongside the error.
func (d *Driver) Run() (Trajectory, error) {
	if d.failed {
		return Trajectory{}, ErrDriverFinished
	}
	traj := Trajectory{
		Times:  make([]float64, 0, d.numSteps+1),
		States: make([]State, 0, d.numSteps+1),
	}
	traj.append(d.t, d.prev.Copy())
	for !d.Done() {
		s, t, err := d.Step()
		if err != nil {
			return traj, err
		}
		traj.append(t, s)
		for _, o := range d.observers {
			o.OnStep(d.stepsDone, t, s)
		}
	}
	return traj, nil
}
