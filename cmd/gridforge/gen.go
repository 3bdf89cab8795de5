package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/gridforge/internal/difficulty"
	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/generator"
	"svw.info/gridforge/internal/solver"
)

var (
	genCount      int
	genDifficulty string
	genVariant    string
	genSize       int
	genSeed       int64
	genOutput     string
	genTimeout    time.Duration
	genProfile    bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles",
		Long: `Generate one or more puzzles at a target difficulty tier.

Examples:
  gridforge gen --difficulty expert
  gridforge gen -n 5 --difficulty beginner --size 16
  gridforge gen --seed 12345 -o puzzles.json`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "beginner|easy|medium|hard|expert")
	genCmd.Flags().StringVar(&genVariant, "variant", "classic", "classic|killer|x|hyper|mini|mega")
	genCmd.Flags().IntVar(&genSize, "size", 9, "Board side length (square root must be an integer)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (0 = time-based)")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (JSON, one puzzle array)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 30*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().BoolVar(&genProfile, "profile", false, "Write a CPU profile for this run")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genProfile {
		defer profile.Start().Stop()
	}

	oracle := solver.NewBacktracking()
	cal := difficulty.New(solver.NewLogical())
	eng := generator.NewEngine(oracle, cal)

	puzzles := make([]*domain.Puzzle, 0, genCount)
	for i := 0; i < genCount; i++ {
		ctx, cancel := context.WithTimeout(cmd.Context(), genTimeout)
		seed := genSeed
		if seed != 0 {
			seed += int64(i)
		}
		p, st, err := eng.Generate(ctx, domain.GenerateRequest{
			Variant:    domain.ParseVariant(genVariant),
			Difficulty: domain.ParseDifficulty(genDifficulty),
			Size:       genSize,
			Seed:       seed,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("generate puzzle %d: %w", i+1, err)
		}
		fmt.Printf("puzzle %d: %s %s %dx%d, %d clues, score %.2f, est %ds (%v)\n",
			i+1, p.Variant, p.Difficulty, p.Size, p.Size,
			p.InitialState.CountFilled(), p.DifficultyScore,
			p.Metadata.EstimatedSolveTime, st.Duration.Round(time.Millisecond))
		puzzles = append(puzzles, p)
	}

	out := os.Stdout
	if genOutput != "" {
		f, err := os.Create(genOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(puzzles)
}
