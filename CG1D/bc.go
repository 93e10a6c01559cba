package CG1D

import (
	"fmt"

	"github.com/notargets/goburgers/utils"
)

// BCType enumerates the boundary condition kinds of the 1D problem.
type BCType uint8

const (
	// Natural leaves the weak-form boundary terms alone (do-nothing).
	Natural BCType = iota
	// Dirichlet pins the end values, enforced by row replacement.
	Dirichlet
)

var bcNames = []string{
	"natural",
	"dirichlet",
}

func (t BCType) String() string {
	if int(t) >= len(bcNames) {
		return fmt.Sprintf("unknown(%d)", t)
	}
	return bcNames[t]
}

func ParseBCType(name string) (BCType, error) {
	for i, n := range bcNames {
		if n == name {
			return BCType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown boundary condition type %q", name)
}

// BoundaryConditions holds the per-end constraint of a 1D problem.
// Left and Right are only read for Dirichlet.
type BoundaryConditions struct {
	Type        BCType
	Left, Right float64
}

// ApplyToResidual replaces the constrained residual rows with
// u_i - g_i, so the Newton update drives the end values onto the
// prescribed data.
func (bc BoundaryConditions) ApplyToResidual(u, r utils.Vector) {
	if bc.Type != Dirichlet {
		return
	}
	var (
		n = r.Len()
	)
	r.Set(0, u.AtVec(0)-bc.Left)
	r.Set(n-1, u.AtVec(n-1)-bc.Right)
}

// ApplyToJacobian replaces the constrained Jacobian rows with identity
// rows, matching ApplyToResidual.
func (bc BoundaryConditions) ApplyToJacobian(J utils.DOK) {
	if bc.Type != Dirichlet {
		return
	}
	var (
		n, _ = J.Dims()
	)
	J.ZeroRow(0).Set(0, 0, 1)
	J.ZeroRow(n - 1).Set(n-1, n-1, 1)
}
