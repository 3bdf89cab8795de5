package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/gridforge/internal/difficulty"
	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/solver"
)

var rateInput string

func init() {
	rateCmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate the difficulty of a puzzle or raw grid",
		Long: `Rate reads either a full puzzle (as written by gen) or a bare grid and
prints the difficulty analysis: score, tier, required techniques, estimated
solve time, and confidence.`,
		RunE: runRate,
	}

	rateCmd.Flags().StringVarP(&rateInput, "input", "i", "", "Puzzle or grid file (default: stdin)")
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	p, err := readPuzzle(rateInput)
	if err != nil {
		return err
	}

	cal := difficulty.New(solver.NewLogical())
	res, err := cal.Calibrate(cmd.Context(), p, false)
	if err != nil {
		return err
	}

	names := make([]string, len(res.RequiredTechniques))
	for i, t := range res.RequiredTechniques {
		names[i] = t.String()
	}
	fmt.Printf("score      %.2f / 10\n", res.DifficultyScore)
	fmt.Printf("tier       %s\n", res.CalculatedDifficulty)
	fmt.Printf("techniques %s\n", strings.Join(names, ", "))
	fmt.Printf("est. time  %ds\n", res.EstimatedSolveTime)
	fmt.Printf("confidence %.2f\n", res.Confidence)
	return nil
}

// readPuzzle accepts a full puzzle JSON object or falls back to a bare grid.
func readPuzzle(path string) (*domain.Puzzle, error) {
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

	var p domain.Puzzle
	if err := json.Unmarshal(data, &p); err == nil && p.InitialState != nil {
		if err := p.InitialState.CheckSize(); err != nil {
			return nil, err
		}
		if p.Size == 0 {
			p.Size = p.InitialState.Size()
		}
		return &p, nil
	}

	var g domain.Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse puzzle: %w", err)
	}
	if err := g.CheckSize(); err != nil {
		return nil, err
	}
	return &domain.Puzzle{
		Variant:      domain.VariantClassic,
		Size:         g.Size(),
		InitialState: g,
	}, nil
}
