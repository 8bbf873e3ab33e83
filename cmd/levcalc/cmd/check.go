package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levtools/levcalc/pipeline"
	"github.com/levtools/levcalc/risk"
)

var (
	checkFlags   tradeFlags
	checkBalance float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a trade setup against business rules",
	Long: `Run the pre-flight validation gate: positive price and quantity,
leverage within 1-100x, margin within the available balance, and
side-correct TP/SL/liquidation ordering.

Examples:
  levcalc check --price 100 --quantity 10 --leverage 5 --tp 120 --sl 90 --balance 5000`,
	RunE: runCheck,
}

func init() {
	checkFlags.register(checkCmd)
	checkCmd.Flags().Float64Var(&checkBalance, "balance", 0, "available account balance")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, in, ratio, err := checkFlags.load(cmd)
	if err != nil {
		return err
	}

	// Resolve derived fields first so the gate sees a complete snapshot.
	m := pipeline.Compute(in, ratio)
	in.Margin = m.Margin
	in.MaintenanceMargin = m.MaintenanceMargin
	in.LiquidationPrice = m.LiquidationPrice
	if in.TP == 0 {
		in.TP = m.TP
	}
	if in.SL == 0 {
		in.SL = m.SL
	}

	result := risk.Validate(in, checkBalance)
	if !result.Valid {
		return fmt.Errorf("invalid trade: %s", result.Message)
	}

	fmt.Println("✓ Trade setup is valid.")
	return nil
}
