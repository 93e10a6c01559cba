package CG1D

import (
	"math"

	"github.com/notargets/goburgers/utils"
)

// Two point Gauss-Legendre rule on [-1,1], exact through cubic
// integrands, which covers every term of the P1 Burgers weak form.
var (
	gaussXi = [2]float64{-1. / math.Sqrt(3.), 1. / math.Sqrt(3.)}
	gaussW  = [2]float64{1, 1}
)

// shape evaluates the two P1 shape functions at reference coordinate
// xi in [-1,1].
func shape(xi float64) (n1, n2 float64) {
	n1 = 0.5 * (1 - xi)
	n2 = 0.5 * (1 + xi)
	return
}

// AssembleMass builds the global consistent mass matrix
// M_ij = integral(N_i N_j).
func AssembleMass(m Mesh) utils.CSR {
	var (
		M = utils.NewDOK(m.NumNodes(), m.NumNodes())
	)
	for k := 0; k < m.K; k++ {
		var (
			nodes = m.EToV[k]
			jac   = 0.5 * m.H(k) // dx/dxi
			me    [2][2]float64
		)
		for g := 0; g < 2; g++ {
			n1, n2 := shape(gaussXi[g])
			N := [2]float64{n1, n2}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					me[i][j] += gaussW[g] * jac * N[i] * N[j]
				}
			}
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				M.AddAt(nodes[i], nodes[j], me[i][j])
			}
		}
	}
	return M.ToCSR()
}

// AssembleStiffness builds the global diffusion stiffness matrix
// K_ij = integral(dN_i/dx dN_j/dx).
func AssembleStiffness(m Mesh) utils.CSR {
	var (
		K = utils.NewDOK(m.NumNodes(), m.NumNodes())
	)
	for k := 0; k < m.K; k++ {
		var (
			nodes = m.EToV[k]
			h     = m.H(k)
			jac   = 0.5 * h
			dN    = [2]float64{-1. / h, 1. / h}
			ke    [2][2]float64
		)
		for g := 0; g < 2; g++ {
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					ke[i][j] += gaussW[g] * jac * dN[i] * dN[j]
				}
			}
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				K.AddAt(nodes[i], nodes[j], ke[i][j])
			}
		}
	}
	return K.ToCSR()
}

// AddConvection accumulates the nonlinear convection vector
// C_i(u) = integral(u du/dx N_i) into r.
func AddConvection(m Mesh, u, r utils.Vector) {
	var (
		uD = u.DataP()
		rD = r.DataP()
	)
	for k := 0; k < m.K; k++ {
		var (
			nodes  = m.EToV[k]
			h      = m.H(k)
			jac    = 0.5 * h
			u1, u2 = uD[nodes[0]], uD[nodes[1]]
			ux     = (u2 - u1) / h // constant on a P1 element
		)
		for g := 0; g < 2; g++ {
			n1, n2 := shape(gaussXi[g])
			ug := n1*u1 + n2*u2
			N := [2]float64{n1, n2}
			for i := 0; i < 2; i++ {
				rD[nodes[i]] += gaussW[g] * jac * ug * ux * N[i]
			}
		}
	}
}

// AddConvectionJacobian accumulates the convection linearization
// dC_i/du_j = integral((N_j du/dx + u dN_j/dx) N_i) into J.
func AddConvectionJacobian(m Mesh, u utils.Vector, J utils.DOK) {
	var (
		uD = u.DataP()
	)
	for k := 0; k < m.K; k++ {
		var (
			nodes  = m.EToV[k]
			h      = m.H(k)
			jac    = 0.5 * h
			dN     = [2]float64{-1. / h, 1. / h}
			u1, u2 = uD[nodes[0]], uD[nodes[1]]
			ux     = (u2 - u1) / h
		)
		for g := 0; g < 2; g++ {
			n1, n2 := shape(gaussXi[g])
			ug := n1*u1 + n2*u2
			N := [2]float64{n1, n2}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					J.AddAt(nodes[i], nodes[j],
						gaussW[g]*jac*(N[j]*ux+ug*dN[j])*N[i])
				}
			}
		}
	}
}
