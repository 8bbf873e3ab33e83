package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levtools/levcalc/sweep"
)

var (
	sweepFlags tradeFlags
	sweepFrom  float64
	sweepTo    float64
	sweepStep  float64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a leverage range and summarize strength scores",
	Long: `Recompute the full pipeline across a leverage range and report how
the strength score responds, with mean/min/max/stddev statistics.

Examples:
  levcalc sweep --price 100 --quantity 10 --from 1 --to 25 --step 1`,
	RunE: runSweep,
}

func init() {
	sweepFlags.register(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1, "leverage range start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 25, "leverage range end")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 1, "leverage step")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	_, in, ratio, err := sweepFlags.load(cmd)
	if err != nil {
		return err
	}

	report, err := sweep.Leverage(in, ratio, sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}

	fmt.Println("=== Leverage Sweep ===")
	fmt.Println()
	fmt.Printf("%-10s %-10s %-14s %-8s %s\n", "Leverage", "Margin", "Liquidation", "Score", "Rating")
	for _, p := range report.Points {
		fmt.Printf("%-10.1f %-10.2f %-14.2f %-8d %s\n",
			p.Leverage, p.Metrics.Margin, p.Metrics.LiquidationPrice,
			p.Metrics.Strength.Score, p.Metrics.Strength.Rating)
	}

	fmt.Println()
	fmt.Printf("Score: mean=%.2f min=%.0f max=%.0f stddev=%.2f\n",
		report.MeanScore, report.MinScore, report.MaxScore, report.ScoreStdDev)

	return nil
}
