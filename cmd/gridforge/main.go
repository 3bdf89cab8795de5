package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridforge",
	Short: "Generate, solve, and rate Sudoku-family puzzles",
	Long: `gridforge generates puzzles with a certified unique solution, solves
arbitrary grids with an ordered ladder of deduction techniques, and rates
puzzle difficulty from the techniques a solve requires.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
