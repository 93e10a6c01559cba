package Burgers1D

import (
	"github.com/notargets/goburgers/CG1D"
	"github.com/notargets/goburgers/utils"
)

// BackwardEuler is the implicit residual relation of the viscous
// Burgers' equation,
//
//	R(u) = M (u - u_prev)/dt + C(u) + nu K u
//
// with the analytic Jacobian M/dt + dC/du + nu K. The unknown next
// state appears inside C(u) and the diffusion term, which is what
// forces a nonlinear solve per step. The relation reads the previous
// state through the live prev field, so the driver's prev assignment
// is what advances the dynamics; nu, dt and the operators are fixed at
// construction.
type BackwardEuler struct {
	mesh CG1D.Mesh
	nu   float64
	dt   float64
	prev *Field
	bc   CG1D.BoundaryConditions

	M, K utils.CSR
	w    utils.Vector // operator application scratch
	du   utils.Vector
}

func NewBackwardEuler(mesh CG1D.Mesh, nu, dt float64, prev *Field, bc CG1D.BoundaryConditions) *BackwardEuler {
	n := mesh.NumNodes()
	return &BackwardEuler{
		mesh: mesh,
		nu:   nu,
		dt:   dt,
		prev: prev,
		bc:   bc,
		M:    CG1D.AssembleMass(mesh),
		K:    CG1D.AssembleStiffness(mesh),
		w:    utils.NewVector(n),
		du:   utils.NewVector(n),
	}
}

func (s *BackwardEuler) Size() int { return s.mesh.NumNodes() }

func (s *BackwardEuler) Residual(u, r utils.Vector) {
	// M (u - u_prev)/dt
	s.du.Assign(u).Subtract(s.prev.U)
	s.M.MulVec(s.du, r)
	r.Scale(1 / s.dt)
	// + C(u)
	CG1D.AddConvection(s.mesh, u, r)
	// + nu K u
	s.K.MulVec(u, s.w)
	r.AddScaled(s.nu, s.w)
	s.bc.ApplyToResidual(u, r)
}

func (s *BackwardEuler) Jacobian(u utils.Vector, J utils.DOK) {
	J.Zero()
	J.AddScaled(1/s.dt, s.M)
	CG1D.AddConvectionJacobian(s.mesh, u, J)
	J.AddScaled(s.nu, s.K)
	s.bc.ApplyToJacobian(J)
}
