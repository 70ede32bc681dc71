package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pep-go/pep/wc"
)

var (
	cgL       float64
	cgN       int
	cgVerbose int
)

var cgCmd = &cobra.Command{
	Use:   "cg",
	Short: "Worst case of conjugate gradient with exact span searches",
	Long: `Computes the tight worst-case value of f(x_n)-f_* for the conjugate
gradient method on L-QG+ convex functions, normalized by the initial
distance to the optimum, and compares it to the theoretical bound
L/(2(n+1)).`,
	RunE: runCG,
}

func init() {
	cgCmd.Flags().Float64Var(&cgL, "L", 1, "Quadratic growth parameter")
	cgCmd.Flags().IntVar(&cgN, "n", 12, "Number of iterations")
	cgCmd.Flags().IntVar(&cgVerbose, "verbose", 1, "Verbosity (-1 silent, 0 script, 1 harness, 2 solver)")
	rootCmd.AddCommand(cgCmd)
}

func runCG(cmd *cobra.Command, args []string) error {
	slog.Info("Starting analysis", "method", "cg", "L", cgL, "n", cgN)

	r, err := wc.ConjugateGradient(cgL, cgN, cgVerbose)
	if err != nil {
		return fmt.Errorf("conjugate gradient analysis failed: %w", err)
	}

	slog.Info("Analysis finished", "worstCase", r.WorstCase, "theory", r.Theory)
	return nil
}
