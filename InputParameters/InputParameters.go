package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/goburgers/CG1D"
	"github.com/notargets/goburgers/model_problems/Burgers1D"
	"github.com/notargets/goburgers/nonlinear"
)

// SolverParameters is the nested solver block of the case file.
type SolverParameters struct {
	MaxIterations       int     `yaml:"MaxIterations"`
	ResidualTol         float64 `yaml:"ResidualTol"`
	RelativeTol         float64 `yaml:"RelativeTol"`
	IncrementTol        float64 `yaml:"IncrementTol"`
	LinearSolveStrategy string  `yaml:"LinearSolveStrategy"`
}

// Parameters obtained from the YAML input file
type BurgersParameters struct {
	Title        string           `yaml:"Title"`
	K            int              `yaml:"K"`
	XMin         float64          `yaml:"XMin"`
	XMax         float64          `yaml:"XMax"`
	Nu           float64          `yaml:"Nu"`
	Dt           float64          `yaml:"Dt"`
	FinalTime    float64          `yaml:"FinalTime"`
	InitType     string           `yaml:"InitType"`
	BCType       string           `yaml:"BCType"`
	BCLeft       float64          `yaml:"BCLeft"`
	BCRight      float64          `yaml:"BCRight"`
	ReuseSolver  bool             `yaml:"ReuseSolver"`
	LogFrequency int              `yaml:"LogFrequency"`
	Solver       SolverParameters `yaml:"Solver"`
}

// NewBurgersParameters returns the defaults of the standard sine-wave
// case; a parsed case file overrides field by field.
func NewBurgersParameters() *BurgersParameters {
	d := Burgers1D.DefaultParameters()
	return &BurgersParameters{
		Title:        "Viscous Burgers 1D",
		K:            d.K,
		XMin:         d.XMin,
		XMax:         d.XMax,
		Nu:           d.Nu,
		Dt:           d.Dt,
		FinalTime:    d.FinalTime,
		InitType:     d.Case.String(),
		BCType:       d.BC.Type.String(),
		ReuseSolver:  d.ReuseSolver,
		LogFrequency: d.LogFrequency,
		Solver: SolverParameters{
			MaxIterations:       d.Solver.MaxIterations,
			ResidualTol:         d.Solver.ResidualTol,
			RelativeTol:         d.Solver.RelativeTol,
			IncrementTol:        d.Solver.IncrementTol,
			LinearSolveStrategy: d.Solver.LinearSolve.String(),
		},
	}
}

func (bp *BurgersParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BurgersParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%d]\t\t\t= K (num elements)\n", bp.K)
	fmt.Printf("%8.5f\t\t= XMin\n", bp.XMin)
	fmt.Printf("%8.5f\t\t= XMax\n", bp.XMax)
	fmt.Printf("%8.5f\t\t= Nu\n", bp.Nu)
	fmt.Printf("%8.5f\t\t= Dt\n", bp.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", bp.FinalTime)
	fmt.Printf("[%s]\t\t= InitType\n", bp.InitType)
	fmt.Printf("[%s]\t\t= BCType (left = %g, right = %g)\n", bp.BCType, bp.BCLeft, bp.BCRight)
	fmt.Printf("[%v]\t\t\t= ReuseSolver\n", bp.ReuseSolver)
	fmt.Printf("[%s]\t= LinearSolveStrategy\n", bp.Solver.LinearSolveStrategy)
}

// Validate checks the plain numeric fields and the enumerated
// spellings before any stepping machinery is built.
func (bp *BurgersParameters) Validate() error {
	if bp.K < 1 {
		return fmt.Errorf("K = %d, need at least one element", bp.K)
	}
	if bp.XMax <= bp.XMin {
		return fmt.Errorf("degenerate interval [%g, %g]", bp.XMin, bp.XMax)
	}
	if bp.Dt <= 0 {
		return fmt.Errorf("Dt = %g, must be > 0", bp.Dt)
	}
	if bp.FinalTime < 0 {
		return fmt.Errorf("FinalTime = %g, must be >= 0", bp.FinalTime)
	}
	if bp.Nu < 0 {
		return fmt.Errorf("Nu = %g, must be >= 0", bp.Nu)
	}
	if _, err := Burgers1D.ParseCaseType(bp.InitType); err != nil {
		return err
	}
	if _, err := CG1D.ParseBCType(bp.BCType); err != nil {
		return err
	}
	if _, err := nonlinear.ParseStrategy(bp.Solver.LinearSolveStrategy); err != nil {
		return err
	}
	return nil
}

// ModelParameters validates and maps the case file onto the typed
// model configuration.
func (bp *BurgersParameters) ModelParameters() (p Burgers1D.Parameters, err error) {
	if err = bp.Validate(); err != nil {
		return
	}
	caseType, _ := Burgers1D.ParseCaseType(bp.InitType)
	bcType, _ := CG1D.ParseBCType(bp.BCType)
	strategy, _ := nonlinear.ParseStrategy(bp.Solver.LinearSolveStrategy)
	p = Burgers1D.Parameters{
		K:         bp.K,
		XMin:      bp.XMin,
		XMax:      bp.XMax,
		Nu:        bp.Nu,
		Dt:        bp.Dt,
		FinalTime: bp.FinalTime,
		Case:      caseType,
		BC: CG1D.BoundaryConditions{
			Type:  bcType,
			Left:  bp.BCLeft,
			Right: bp.BCRight,
		},
		ReuseSolver:  bp.ReuseSolver,
		LogFrequency: bp.LogFrequency,
		Solver: nonlinear.Options{
			MaxIterations: bp.Solver.MaxIterations,
			ResidualTol:   bp.Solver.ResidualTol,
			RelativeTol:   bp.Solver.RelativeTol,
			IncrementTol:  bp.Solver.IncrementTol,
			LinearSolve:   strategy,
		},
	}
	return
}
