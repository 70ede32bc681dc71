package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pep-go/pep/wc"
)

var (
	gdL       float64
	gdN       int
	gdVerbose int
)

var gdCmd = &cobra.Command{
	Use:   "gd",
	Short: "Worst case of gradient descent with decreasing step sizes",
	Long: `Computes the tight worst-case value of f(x_n)-f_* for gradient descent
with decreasing step sizes gamma_t = 1/(L*u_{t+1}) on L-QG+ convex
functions and compares it to the conjectured bound L/(2*u_n).`,
	RunE: runGD,
}

func init() {
	gdCmd.Flags().Float64Var(&gdL, "L", 1, "Quadratic growth parameter")
	gdCmd.Flags().IntVar(&gdN, "n", 6, "Number of iterations")
	gdCmd.Flags().IntVar(&gdVerbose, "verbose", 1, "Verbosity (-1 silent, 0 script, 1 harness, 2 solver)")
	rootCmd.AddCommand(gdCmd)
}

func runGD(cmd *cobra.Command, args []string) error {
	slog.Info("Starting analysis", "method", "gd", "L", gdL, "n", gdN)

	r, err := wc.GradientDescentDecreasing(gdL, gdN, gdVerbose)
	if err != nil {
		return fmt.Errorf("gradient descent analysis failed: %w", err)
	}

	slog.Info("Analysis finished", "worstCase", r.WorstCase, "theory", r.Theory)
	return nil
}
