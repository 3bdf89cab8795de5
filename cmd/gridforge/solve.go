package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/solver"
)

var (
	solveInput string
	solveSteps bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a grid from a JSON file or stdin",
		Long: `Solve reads a grid (JSON array of arrays, 0 = empty) and solves it with
the technique ladder, printing the steps that were used.

Examples:
  gridforge solve --input grid.json
  cat grid.json | gridforge solve --steps`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "Grid file (default: stdin)")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "Print each deduction step")
	rootCmd.AddCommand(solveCmd)
}

func readGrid(path string) (domain.Grid, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var g domain.Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse grid: %w", err)
	}
	if err := g.CheckSize(); err != nil {
		return nil, err
	}
	return g, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGrid(solveInput)
	if err != nil {
		return err
	}

	res, err := solver.NewLogical().SolveSteps(cmd.Context(), g)
	if err != nil {
		return err
	}
	if !res.Solved {
		return fmt.Errorf("grid not solved after %v (%d steps)", res.Elapsed.Round(time.Millisecond), len(res.Steps))
	}

	if solveSteps {
		for i, st := range res.Steps {
			fmt.Printf("%3d. %s r%dc%d=%d (%s)\n", i+1, st.Technique, st.Row+1, st.Col+1, st.Value, st.Rationale)
		}
	}
	names := make([]string, len(res.Techniques))
	for i, t := range res.Techniques {
		names[i] = t.String()
	}
	fmt.Printf("solved in %v using %s\n", res.Elapsed.Round(time.Millisecond), strings.Join(names, ", "))
	return printGrid(res.Solution)
}

func printGrid(g domain.Grid) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(g)
}
