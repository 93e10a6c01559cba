package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	}
	R = Vector{
		mat.NewVecDense(n, data),
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	var (
		data = make([]float64, n)
	)
	for i := range data {
		data[i] = val
	}
	R = Vector{
		mat.NewVecDense(n, data),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) DataP() []float64         { return v.V.RawVector().Data }

func (v Vector) Copy() (R Vector) { // Does not change receiver
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.DataP())
	R = Vector{
		mat.NewVecDense(v.Len(), data),
	}
	return
}

// Chainable (extended) methods
func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	v.V.SetVec(i, val)
	return v
}

func (v Vector) SetScalar(val float64) Vector { // Changes receiver
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Zero() Vector { // Changes receiver
	return v.SetScalar(0)
}

func (v Vector) Assign(a Vector) Vector { // Changes receiver
	if v.Len() != a.Len() {
		err := fmt.Errorf("dimension mismatch: len(v) = %v, len(a) = %v", v.Len(), a.Len())
		panic(err)
	}
	copy(v.DataP(), a.DataP())
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	v.V.ScaleVec(a, v.V)
	return v
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	v.V.AddVec(v.V, a.V)
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) AddScaled(alpha float64, a Vector) Vector { // Changes receiver
	v.V.AddScaledVec(v.V, alpha, a.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	min = v.AtVec(0)
	for _, val := range v.DataP() {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.AtVec(0)
	for _, val := range v.DataP() {
		if val > max {
			max = val
		}
	}
	return
}

// MaxAbs returns the largest magnitude component, the convergence measure
// used by the nonlinear solver.
func (v Vector) MaxAbs() (max float64) {
	for _, val := range v.DataP() {
		if a := math.Abs(val); a > max {
			max = a
		}
	}
	return
}

// RMS returns sqrt(sum(v_i^2)/N).
func (v Vector) RMS() (rms float64) {
	var (
		data = v.DataP()
	)
	for _, val := range data {
		rms += val * val
	}
	rms = math.Sqrt(rms / float64(len(data)))
	return
}

// Finite reports whether every component is neither NaN nor Inf.
func (v Vector) Finite() bool {
	for _, val := range v.DataP() {
		if !IsFinite(val) {
			return false
		}
	}
	return true
}
