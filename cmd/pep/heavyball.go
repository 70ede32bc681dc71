package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pep-go/pep/wc"
)

var (
	hbL       float64
	hbN       int
	hbVerbose int
)

var heavyBallCmd = &cobra.Command{
	Use:   "heavyball",
	Short: "Worst case of the heavy-ball momentum method",
	Long: `Computes the tight worst-case value of f(x_n)-f_* for the heavy-ball
(Polyak momentum) method on L-QG+ convex functions and compares it to
the theoretical bound L/(2(n+1)).`,
	RunE: runHeavyBall,
}

func init() {
	heavyBallCmd.Flags().Float64Var(&hbL, "L", 1, "Quadratic growth parameter")
	heavyBallCmd.Flags().IntVar(&hbN, "n", 5, "Number of iterations")
	heavyBallCmd.Flags().IntVar(&hbVerbose, "verbose", 1, "Verbosity (-1 silent, 0 script, 1 harness, 2 solver)")
	rootCmd.AddCommand(heavyBallCmd)
}

func runHeavyBall(cmd *cobra.Command, args []string) error {
	slog.Info("Starting analysis", "method", "heavyball", "L", hbL, "n", hbN)

	r, err := wc.HeavyBall(hbL, hbN, hbVerbose)
	if err != nil {
		return fmt.Errorf("heavy-ball analysis failed: %w", err)
	}

	slog.Info("Analysis finished", "worstCase", r.WorstCase, "theory", r.Theory)
	return nil
}
