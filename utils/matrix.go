package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	}
	R = Matrix{
		mat.NewDense(nr, nc, data),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = make([]float64, nr*nc)
	)
	copy(data, m.Data())
	R = Matrix{
		mat.NewDense(nr, nc, data),
	}
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.M.Scale(a, m.M)
	return m
}

func (m Matrix) Add(a Matrix) Matrix { // Changes receiver
	m.M.Add(m.M, a.M)
	return m
}

func (m Matrix) Mul(a Matrix) (R Matrix) { // Does not change receiver
	var (
		nr, _ = m.Dims()
		_, nc = a.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.Mul(m.M, a.M)
	return
}

func (m Matrix) MulVec(x Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, x.V)
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	err = R.M.Inverse(m.M)
	return
}

// LUSolve solves m*x = b for x by dense LU factorization, writing the
// solution into x. The receiver must be square and non-singular.
func (m Matrix) LUSolve(b, x Vector) (err error) {
	var (
		nr, nc = m.Dims()
		lu     mat.LU
	)
	if nr != nc {
		return fmt.Errorf("matrix must be square for LU solve, have %dx%d", nr, nc)
	}
	if nr != b.Len() || nr != x.Len() {
		return fmt.Errorf("dimension mismatch: matrix is %dx%d, len(b) = %d, len(x) = %d",
			nr, nc, b.Len(), x.Len())
	}
	lu.Factorize(m.M)
	if err = lu.SolveVecTo(x.V, false, b.V); err != nil {
		return fmt.Errorf("LU solve failed: %w", err)
	}
	return
}
