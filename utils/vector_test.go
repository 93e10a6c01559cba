package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorCopyIndependence(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	c := v.Copy()
	v.Set(0, 99)
	assert.Equal(t, 1., c.AtVec(0))
	assert.Equal(t, 99., v.AtVec(0))
}

func TestVectorAssign(t *testing.T) {
	v := NewVector(3)
	a := NewVector(3, []float64{4, 5, 6})
	v.Assign(a)
	assert.Equal(t, []float64{4, 5, 6}, v.DataP())
	// Value copy, not aliasing
	a.Set(0, -1)
	assert.Equal(t, 4., v.AtVec(0))

	assert.Panics(t, func() { v.Assign(NewVector(2)) })
}

func TestVectorChainedArithmetic(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	v.Scale(2).AddScaled(1, NewVectorConstant(3, 1))
	assert.Equal(t, []float64{3, 5, 7}, v.DataP())
	v.Subtract(NewVector(3, []float64{3, 5, 7}))
	assert.Equal(t, []float64{0, 0, 0}, v.DataP())
}

func TestVectorNorms(t *testing.T) {
	v := NewVector(4, []float64{-3, 1, 2, -1})
	assert.Equal(t, 3., v.MaxAbs())
	assert.InDelta(t, math.Sqrt(15./4.), v.RMS(), NODETOL)
	assert.Equal(t, -3., v.Min())
	assert.Equal(t, 2., v.Max())
}

func TestVectorFinite(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	assert.True(t, v.Finite())
	v.Set(1, math.NaN())
	assert.False(t, v.Finite())
	v.Set(1, math.Inf(-1))
	assert.False(t, v.Finite())
}

func TestMatrixLUSolve(t *testing.T) {
	// 2x2 system with known solution (1, -2)
	A := NewMatrix(2, 2, []float64{2, 1, 1, 3})
	b := NewVector(2, []float64{0, -5})
	x := NewVector(2)
	assert.NoError(t, A.LUSolve(b, x))
	assert.InDelta(t, 1., x.AtVec(0), NODETOL)
	assert.InDelta(t, -2., x.AtVec(1), NODETOL)

	// Non-square rejection
	assert.Error(t, NewMatrix(2, 3).LUSolve(b, x))
}

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	Ainv, err := A.Inverse()
	assert.NoError(t, err)
	I := A.Mul(Ainv)
	assert.InDelta(t, 1., I.At(0, 0), NODETOL)
	assert.InDelta(t, 0., I.At(0, 1), NODETOL)
	assert.InDelta(t, 0., I.At(1, 0), NODETOL)
	assert.InDelta(t, 1., I.At(1, 1), NODETOL)
}
