package Burgers1D

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goburgers/CG1D"
	"github.com/notargets/goburgers/nonlinear"
	"github.com/notargets/goburgers/timestep"
)

func testParameters() Parameters {
	p := DefaultParameters()
	p.K = 32
	p.Nu = 0.05
	p.Dt = 0.01
	p.FinalTime = 0.2
	p.LogFrequency = 0
	return p
}

func TestBurgersSineDecay(t *testing.T) {
	c, err := NewBurgers1D(testParameters())
	require.NoError(t, err)
	traj, err := c.Run(false)
	require.NoError(t, err)

	// floor(0.2/0.01) + 2 snapshots
	require.Equal(t, 22, traj.Len())

	prevMax := traj.States[0].(*Field).U.MaxAbs()
	for s := 1; s < traj.Len(); s++ {
		f := traj.States[s].(*Field)
		require.True(t, f.U.Finite(), "snapshot %d", s)
		curMax := f.U.MaxAbs()
		assert.LessOrEqual(t, curMax, prevMax+1.e-6,
			"max-norm grew at snapshot %d", s)
		prevMax = curMax
	}
	// Viscosity must actually dissipate the sine profile.
	assert.Less(t, prevMax, traj.States[0].(*Field).U.MaxAbs())
}

func TestBurgersDirichletEndsHeld(t *testing.T) {
	p := testParameters()
	p.Case = TanhShock
	p.BC = CG1D.BoundaryConditions{Type: CG1D.Dirichlet, Left: 1, Right: 0}
	c, err := NewBurgers1D(p)
	require.NoError(t, err)
	traj, err := c.Run(false)
	require.NoError(t, err)

	n := c.Mesh.NumNodes()
	for s := 0; s < traj.Len(); s++ {
		f := traj.States[s].(*Field)
		assert.InDelta(t, 1.0, f.U.AtVec(0), 1.e-8, "left end at snapshot %d", s)
		assert.InDelta(t, 0.0, f.U.AtVec(n-1), 1.e-8, "right end at snapshot %d", s)
	}
}

func TestBurgersModesProduceIdenticalTrajectories(t *testing.T) {
	p := testParameters()
	p.K = 16
	p.FinalTime = 0.05

	p.ReuseSolver = true
	cA, err := NewBurgers1D(p)
	require.NoError(t, err)
	trajA, err := cA.Run(false)
	require.NoError(t, err)

	p.ReuseSolver = false
	cB, err := NewBurgers1D(p)
	require.NoError(t, err)
	trajB, err := cB.Run(false)
	require.NoError(t, err)

	require.Equal(t, trajA.Len(), trajB.Len())
	for s := 0; s < trajA.Len(); s++ {
		assert.Equal(t, trajA.Times[s], trajB.Times[s])
		uA := trajA.States[s].(*Field).U
		uB := trajB.States[s].(*Field).U
		// Tolerance-bounded equality: the two problems assemble their
		// operators independently, so sparse storage order (and with it
		// the last bits of rounding) can differ between the two runs.
		for i := 0; i < uA.Len(); i++ {
			assert.InDelta(t, uA.AtVec(i), uB.AtVec(i), 1.e-12,
				"snapshot %d node %d differs between modes", s, i)
		}
	}
}

func TestBurgersTridiagonalStrategy(t *testing.T) {
	p := testParameters()
	p.K = 16
	p.FinalTime = 0.05
	p.Solver.LinearSolve = nonlinear.Tridiagonal
	c, err := NewBurgers1D(p)
	require.NoError(t, err)
	trajT, err := c.Run(false)
	require.NoError(t, err)

	p.Solver.LinearSolve = nonlinear.DirectFactorization
	c, err = NewBurgers1D(p)
	require.NoError(t, err)
	trajD, err := c.Run(false)
	require.NoError(t, err)

	require.Equal(t, trajD.Len(), trajT.Len())
	final := trajD.Len() - 1
	uD := trajD.States[final].(*Field).U
	uT := trajT.States[final].(*Field).U
	for i := 0; i < uD.Len(); i++ {
		assert.InDelta(t, uD.AtVec(i), uT.AtVec(i), 1.e-8, "node %d", i)
	}
}

func TestBurgersInvalidConfiguration(t *testing.T) {
	p := testParameters()
	p.Dt = 0
	_, err := NewBurgers1D(p)
	assert.True(t, errors.Is(err, timestep.ErrInvalidConfiguration))

	p = testParameters()
	p.FinalTime = -1
	_, err = NewBurgers1D(p)
	assert.True(t, errors.Is(err, timestep.ErrInvalidConfiguration))

	p = testParameters()
	p.Solver.MaxIterations = 0
	_, err = NewBurgers1D(p)
	assert.True(t, errors.Is(err, nonlinear.ErrInvalidOptions))
}

func TestWriteCSV(t *testing.T) {
	p := testParameters()
	p.K = 8
	p.FinalTime = 0.03
	c, err := NewBurgers1D(p)
	require.NoError(t, err)
	traj, err := c.Run(false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, c.Mesh, traj))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, traj.Len()+1, len(lines))
	for i, line := range lines {
		assert.Equal(t, c.Mesh.NumNodes()+1, len(strings.Split(line, ",")), "line %d", i)
	}
	assert.True(t, strings.HasPrefix(lines[0], "t,"))
}

func TestParseCaseType(t *testing.T) {
	ct, err := ParseCaseType("sine_wave")
	require.NoError(t, err)
	assert.Equal(t, SineWave, ct)
	ct, err = ParseCaseType("gaussian_pulse")
	require.NoError(t, err)
	assert.Equal(t, GaussianPulse, ct)
	ct, err = ParseCaseType("tanh_shock")
	require.NoError(t, err)
	assert.Equal(t, TanhShock, ct)
	_, err = ParseCaseType("square_wave")
	assert.Error(t, err)
}
