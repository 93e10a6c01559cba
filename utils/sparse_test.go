package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOKAccumulation(t *testing.T) {
	m := NewDOK(3, 3)
	m.AddAt(0, 0, 1).AddAt(0, 0, 2).Set(1, 2, 5)
	assert.Equal(t, 3., m.At(0, 0))
	assert.Equal(t, 5., m.At(1, 2))
	assert.Equal(t, 0., m.At(2, 2))
}

func TestDOKMulVec(t *testing.T) {
	m := NewDOK(2, 3)
	m.Set(0, 0, 1).Set(0, 2, 2).Set(1, 1, -1)
	x := NewVector(3, []float64{1, 2, 3})
	y := NewVector(2)
	m.MulVec(x, y)
	assert.Equal(t, 7., y.AtVec(0))
	assert.Equal(t, -2., y.AtVec(1))

	assert.Panics(t, func() { m.MulVec(NewVector(2), y) })
}

func TestDOKToCSRAndBack(t *testing.T) {
	m := NewDOK(3, 3)
	m.Set(0, 0, 2).Set(1, 1, 3).Set(2, 0, -1)
	csr := m.ToCSR()
	assert.Equal(t, 2., csr.At(0, 0))
	assert.Equal(t, 3., csr.At(1, 1))
	assert.Equal(t, -1., csr.At(2, 0))

	x := NewVector(3, []float64{1, 1, 1})
	y := NewVector(3)
	csr.MulVec(x, y)
	assert.Equal(t, 2., y.AtVec(0))
	assert.Equal(t, 3., y.AtVec(1))
	assert.Equal(t, -1., y.AtVec(2))
}

func TestDOKAddScaled(t *testing.T) {
	a := NewDOK(2, 2)
	a.Set(0, 0, 1).Set(1, 1, 2)
	m := NewDOK(2, 2)
	m.Set(0, 1, 1)
	m.AddScaled(10, a.ToCSR())
	assert.Equal(t, 10., m.At(0, 0))
	assert.Equal(t, 20., m.At(1, 1))
	assert.Equal(t, 1., m.At(0, 1))
}

func TestDOKZeroRow(t *testing.T) {
	m := NewDOK(3, 3)
	m.Set(0, 0, 1).Set(0, 2, 2).Set(1, 1, 3)
	m.ZeroRow(0).Set(0, 0, 1)
	assert.Equal(t, 1., m.At(0, 0))
	assert.Equal(t, 0., m.At(0, 2))
	assert.Equal(t, 3., m.At(1, 1), "other rows untouched")
}

func TestDOKToDense(t *testing.T) {
	m := NewDOK(2, 2)
	m.Set(0, 1, 4).Set(1, 0, -3)
	d := NewMatrix(2, 2)
	m.ToDense(d)
	assert.Equal(t, 4., d.At(0, 1))
	assert.Equal(t, -3., d.At(1, 0))
	assert.Equal(t, 0., d.At(0, 0))

	// Reuse overwrites stale contents.
	m.Zero()
	m.Set(0, 0, 7)
	m.ToDense(d)
	assert.Equal(t, 7., d.At(0, 0))
	assert.Equal(t, 0., d.At(0, 1))
}
