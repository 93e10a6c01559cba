package Burgers1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/notargets/goburgers/CG1D"
	"github.com/notargets/goburgers/timestep"
)

// WriteCSV exports a trajectory for offline inspection: a header row
// of node coordinates, then one row per snapshot with the time in the
// first column.
func WriteCSV(w io.Writer, mesh CG1D.Mesh, traj timestep.Trajectory) error {
	var (
		cw = csv.NewWriter(w)
		n  = mesh.NumNodes()
	)
	header := make([]string, n+1)
	header[0] = "t"
	for i := 0; i < n; i++ {
		header[i+1] = strconv.FormatFloat(mesh.VX.AtVec(i), 'g', -1, 64)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, n+1)
	for s := 0; s < traj.Len(); s++ {
		f, ok := traj.States[s].(*Field)
		if !ok {
			return fmt.Errorf("trajectory snapshot %d is %T, not a Field", s, traj.States[s])
		}
		if f.U.Len() != n {
			return fmt.Errorf("snapshot %d has %d nodes, mesh has %d", s, f.U.Len(), n)
		}
		row[0] = strconv.FormatFloat(traj.Times[s], 'g', -1, 64)
		for i := 0; i < n; i++ {
			row[i+1] = strconv.FormatFloat(f.U.AtVec(i), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
