package Burgers1D

import (
	"fmt"

	"github.com/notargets/goburgers/timestep"
	"github.com/notargets/goburgers/utils"
)

// Field is the nodal solution of the 1D problem, the concrete
// timestep.State used by the driver.
type Field struct {
	U utils.Vector
}

func NewField(n int) *Field {
	return &Field{
		U: utils.NewVector(n),
	}
}

func (f *Field) Copy() timestep.State {
	return &Field{
		U: f.U.Copy(),
	}
}

func (f *Field) Assign(src timestep.State) {
	o, ok := src.(*Field)
	if !ok {
		err := fmt.Errorf("cannot assign %T into a Field", src)
		panic(err)
	}
	f.U.Assign(o.U)
}

func (f *Field) Finite() bool {
	return f.U.Finite()
}
