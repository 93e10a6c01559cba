package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix, the mutable form used
// during global assembly.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

// AddAt accumulates val into entry (i,j), the scatter operation of
// element assembly.
func (m DOK) AddAt(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

// AddScaled accumulates alpha*a into m; the sparsity patterns need not
// match.
func (m DOK) AddScaled(alpha float64, a CSR) DOK { // Changes receiver
	a.DoNonZero(func(i, j int, val float64) {
		m.AddAt(i, j, alpha*val)
	})
	return m
}

// ZeroRow clears every stored entry of row i, used when replacing a row
// with a boundary constraint.
func (m DOK) ZeroRow(i int) DOK { // Changes receiver
	m.M.DoNonZero(func(r, c int, _ float64) {
		if r == i {
			m.M.Set(r, c, 0)
		}
	})
	return m
}

func (m DOK) Zero() DOK { // Changes receiver
	m.M.DoNonZero(func(i, j int, _ float64) {
		m.M.Set(i, j, 0)
	})
	return m
}

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) DoNonZero(f func(i, j int, val float64)) {
	m.M.DoNonZero(f)
}

// MulVec computes y = m*x. x and y must not alias.
func (m DOK) MulVec(x, y Vector) {
	var (
		nr, nc = m.Dims()
		yD     = y.DataP()
		xD     = x.DataP()
	)
	if nc != x.Len() || nr != y.Len() {
		err := fmt.Errorf("dimension mismatch: matrix is %dx%d, len(x) = %d, len(y) = %d",
			nr, nc, x.Len(), y.Len())
		panic(err)
	}
	y.Zero()
	m.M.DoNonZero(func(i, j int, val float64) {
		yD[i] += val * xD[j]
	})
}

// ToDense expands into a dense Matrix, used to hand the assembled
// operator to a dense factorization.
func (m DOK) ToDense(R Matrix) Matrix {
	var (
		nr, nc = m.Dims()
		rr, rc = R.Dims()
	)
	if nr != rr || nc != rc {
		err := fmt.Errorf("dimension mismatch: DOK is %dx%d, dense target is %dx%d",
			nr, nc, rr, rc)
		panic(err)
	}
	R.M.Zero()
	m.M.DoNonZero(func(i, j int, val float64) {
		R.M.Set(i, j, val)
	})
	return R
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M: m.M.ToCSR(),
	}
}

// CSR wraps a compressed-sparse-row matrix, the immutable form used for
// repeated operator application.
type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

func (m CSR) NNZ() int { return m.M.NNZ() }

func (m CSR) DoNonZero(f func(i, j int, val float64)) {
	m.M.DoNonZero(f)
}

// MulVec computes y = m*x. x and y must not alias.
func (m CSR) MulVec(x, y Vector) {
	var (
		nr, nc = m.Dims()
		yD     = y.DataP()
		xD     = x.DataP()
	)
	if nc != x.Len() || nr != y.Len() {
		err := fmt.Errorf("dimension mismatch: matrix is %dx%d, len(x) = %d, len(y) = %d",
			nr, nc, x.Len(), y.Len())
		panic(err)
	}
	y.Zero()
	m.M.DoNonZero(func(i, j int, val float64) {
		yD[i] += val * xD[j]
	})
}
