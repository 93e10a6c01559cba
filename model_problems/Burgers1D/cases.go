package Burgers1D

import (
	"fmt"
	"math"

	"github.com/notargets/goburgers/CG1D"
)

// CaseType enumerates the initial conditions.
type CaseType uint8

const (
	SineWave CaseType = iota
	GaussianPulse
	TanhShock
)

var caseNames = []string{
	"sine_wave",
	"gaussian_pulse",
	"tanh_shock",
}

func (c CaseType) String() string {
	if int(c) >= len(caseNames) {
		return fmt.Sprintf("unknown(%d)", c)
	}
	return caseNames[c]
}

func ParseCaseType(name string) (CaseType, error) {
	for i, n := range caseNames {
		if n == name {
			return CaseType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown initial condition %q", name)
}

// InitialCondition fills f with the case's profile evaluated at the
// mesh nodes, mapped onto the mesh's interval.
func InitialCondition(c CaseType, mesh CG1D.Mesh, f *Field) {
	var (
		xmin = mesh.VX.AtVec(0)
		span = mesh.VX.AtVec(mesh.K) - xmin
	)
	for i := 0; i < mesh.NumNodes(); i++ {
		// Normalized coordinate in [0,1]
		s := (mesh.VX.AtVec(i) - xmin) / span
		var val float64
		switch c {
		case GaussianPulse:
			val = math.Exp(-100 * (s - 0.5) * (s - 0.5))
		case TanhShock:
			val = 0.5 * (1 - math.Tanh(20*(s-0.5)))
		case SineWave:
			fallthrough
		default:
			val = math.Sin(2 * math.Pi * s)
		}
		f.U.Set(i, val)
	}
}
