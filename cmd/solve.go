/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/goburgers/InputParameters"
	"github.com/notargets/goburgers/model_problems/Burgers1D"
	"github.com/notargets/goburgers/timestep"
	"github.com/notargets/goburgers/utils"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the viscous Burgers' equation and optionally export the trajectory",
	Long: `Solve the viscous Burgers' equation with backward Euler time stepping.
Case parameters come from a YAML case file (-I); explicit flags override
the case file field by field.`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := processCaseFile(cmd)
		applyFlagOverrides(cmd, bp)
		bp.Print()

		p, err := bp.ModelParameters()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		c, err := Burgers1D.NewBurgers1D(p)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}

		var traj timestep.Trajectory
		run := func() { traj, err = c.Run(true) }
		if count, _ := cmd.Flags().GetBool("countInstructions"); count {
			instructions, perfErr := utils.CountInstructions(run)
			if perfErr != nil {
				fmt.Printf("instruction counting unavailable: %s\n", perfErr.Error())
			} else {
				fmt.Printf("%d instructions retired\n", instructions)
			}
		} else {
			run()
		}
		if err != nil {
			// The trajectory is preserved up to the last successful
			// step; export it before reporting the failure.
			fmt.Printf("solve failed: %s\n", err.Error())
			fmt.Printf("completed %d snapshots, stopped at t = %8.4f\n", traj.Len(), c.Driver.Time())
		}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			writeTrajectory(out, c, traj)
		}
		if err != nil {
			os.Exit(1)
		}
	},
}

func processCaseFile(cmd *cobra.Command) (bp *InputParameters.BurgersParameters) {
	bp = InputParameters.NewBurgersParameters()
	caseFile, _ := cmd.Flags().GetString("caseFile")
	if len(caseFile) == 0 {
		return
	}
	data, err := ioutil.ReadFile(caseFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Decaying sine"
K: 64
Nu: 0.02
Dt: 0.005
FinalTime: 0.25
InitType: sine_wave # or gaussian_pulse, tanh_shock
BCType: dirichlet # or natural
Solver:
  MaxIterations: 30
  LinearSolveStrategy: tridiagonal # or direct_factorization
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if err = bp.Parse(data); err != nil {
		fmt.Printf("error parsing case file %s: %s\n", caseFile, err.Error())
		os.Exit(1)
	}
	return
}

func applyFlagOverrides(cmd *cobra.Command, bp *InputParameters.BurgersParameters) {
	if cmd.Flags().Changed("k") {
		bp.K, _ = cmd.Flags().GetInt("k")
	}
	if cmd.Flags().Changed("nu") {
		bp.Nu, _ = cmd.Flags().GetFloat64("nu")
	}
	if cmd.Flags().Changed("dt") {
		bp.Dt, _ = cmd.Flags().GetFloat64("dt")
	}
	if cmd.Flags().Changed("finalTime") {
		bp.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	}
	if cmd.Flags().Changed("initType") {
		bp.InitType, _ = cmd.Flags().GetString("initType")
	}
	if cmd.Flags().Changed("bcType") {
		bp.BCType, _ = cmd.Flags().GetString("bcType")
	}
	if cmd.Flags().Changed("reuseSolver") {
		bp.ReuseSolver, _ = cmd.Flags().GetBool("reuseSolver")
	}
	if cmd.Flags().Changed("strategy") {
		bp.Solver.LinearSolveStrategy, _ = cmd.Flags().GetString("strategy")
	}
}

func writeTrajectory(path string, c *Burgers1D.Burgers1D, traj timestep.Trajectory) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	defer f.Close()
	if err = Burgers1D.WriteCSV(f, c.Mesh, traj); err != nil {
		fmt.Printf("error writing %s: %s\n", path, err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %d snapshots to %s\n", traj.Len(), path)
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("caseFile", "I", "", "YAML case file with run parameters")
	solveCmd.Flags().StringP("output", "o", "", "write the trajectory as CSV to this path")
	solveCmd.Flags().IntP("k", "k", 100, "Number of elements in model")
	solveCmd.Flags().Float64("nu", 0.01, "diffusion coefficient")
	solveCmd.Flags().Float64("dt", 0.01, "time step size")
	solveCmd.Flags().Float64("finalTime", 0.5, "FinalTime - the target end time for the sim")
	solveCmd.Flags().String("initType", "sine_wave", "initial condition: sine_wave, gaussian_pulse, tanh_shock")
	solveCmd.Flags().String("bcType", "dirichlet", "boundary conditions: dirichlet, natural")
	solveCmd.Flags().Bool("reuseSolver", true, "reuse one Newton handle across steps instead of rebuilding per step")
	solveCmd.Flags().String("strategy", "direct_factorization", "linear solve strategy: direct_factorization, tridiagonal")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
	solveCmd.Flags().Bool("countInstructions", false, "report retired instructions for the run (linux perf)")
}
