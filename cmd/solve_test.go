package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/goburgers/InputParameters"
)

func TestSolveFlagOverrides(t *testing.T) {
	var (
		err error
	)
	bp := InputParameters.NewBurgersParameters()
	fileInput := []byte(`
Title: Test Case
K: 48
Nu: 0.03
Dt: 0.002
FinalTime: 0.1
InitType: gaussian_pulse
BCType: natural
`)
	if err = bp.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, bp.K, 48)
	assert.Equal(t, bp.Nu, 0.03)
	assert.Equal(t, bp.InitType, "gaussian_pulse")
	bp.Print()

	// Explicit flags override the case file field by field.
	if err = solveCmd.Flags().Set("nu", "0.5"); err != nil {
		panic(err)
	}
	if err = solveCmd.Flags().Set("strategy", "tridiagonal"); err != nil {
		panic(err)
	}
	applyFlagOverrides(solveCmd, bp)
	assert.Equal(t, bp.Nu, 0.5)
	assert.Equal(t, bp.Solver.LinearSolveStrategy, "tridiagonal")
	// Untouched flags leave the case file values alone.
	assert.Equal(t, bp.K, 48)
	assert.Equal(t, bp.Dt, 0.002)
}
