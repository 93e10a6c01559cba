package CG1D

import (
	"fmt"

	"github.com/notargets/goburgers/utils"
)

// Mesh is a 1D interval subdivided into K line elements with K+1
// nodes. Element k spans nodes [k, k+1].
type Mesh struct {
	K    int          // Number of elements
	VX   utils.Vector // Node coordinates, ascending
	EToV [][2]int     // Element to vertex connectivity
}

// SimpleMesh1D builds a uniform subdivision of [xmin, xmax] into K
// elements.
func SimpleMesh1D(xmin, xmax float64, K int) Mesh {
	if K < 1 {
		err := fmt.Errorf("mesh needs at least one element, have K = %d", K)
		panic(err)
	}
	if xmax <= xmin {
		err := fmt.Errorf("degenerate interval [%g, %g]", xmin, xmax)
		panic(err)
	}
	var (
		VX   = utils.NewVector(K + 1)
		EToV = make([][2]int, K)
		h    = (xmax - xmin) / float64(K)
	)
	for i := 0; i <= K; i++ {
		VX.Set(i, xmin+float64(i)*h)
	}
	for k := 0; k < K; k++ {
		EToV[k] = [2]int{k, k + 1}
	}
	return Mesh{
		K:    K,
		VX:   VX,
		EToV: EToV,
	}
}

// NumNodes returns the global degree-of-freedom count for P1 elements.
func (m Mesh) NumNodes() int { return m.K + 1 }

// H returns the length of element k.
func (m Mesh) H(k int) float64 {
	return m.VX.AtVec(m.EToV[k][1]) - m.VX.AtVec(m.EToV[k][0])
}
