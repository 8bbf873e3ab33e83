package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/levtools/levcalc/journal"
	"github.com/levtools/levcalc/pipeline"
	"github.com/levtools/levcalc/pkg/id"
)

var evalFlags tradeFlags

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a trade setup",
	Long: `Evaluate a proposed trade: position size, margin, liquidation price,
resolved TP/SL levels, risk metrics and the trade-strength score.

Examples:
  levcalc eval --price 100 --quantity 10 --leverage 5
  levcalc eval --price 100 --quantity 10 --leverage 5 --side short --rr 3
  levcalc eval --price 100 --quantity 10 --tp 120 --sl 90 --config levcalc.yaml`,
	RunE: runEval,
}

func init() {
	evalFlags.register(evalCmd)
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, in, ratio, err := evalFlags.load(cmd)
	if err != nil {
		return err
	}

	m := pipeline.Compute(in, ratio)

	fmt.Println("=== Trade Evaluation ===")
	fmt.Println()
	fmt.Printf("Inputs:\n")
	fmt.Printf("  Side: %s  Price: %.2f  Quantity: %.4f  Leverage: %.1fx\n",
		in.PositionSide, in.Price, in.Quantity, in.Leverage)
	fmt.Printf("  Target R/R: %.2f\n\n", ratio)

	fmt.Printf("Position:\n")
	fmt.Printf("  Position Size: %.2f\n", m.PositionSize)
	fmt.Printf("  Margin: %.2f\n", m.Margin)
	fmt.Printf("  Maintenance Margin: %.2f\n", m.MaintenanceMargin)
	fmt.Printf("  Liquidation Price: %.2f\n\n", m.LiquidationPrice)

	fmt.Printf("Risk:\n")
	fmt.Printf("  Take Profit: %.2f (%.2f%% away)\n", m.TP, m.TakeProfitDistance)
	fmt.Printf("  Stop Loss: %.2f (%.2f%% away)\n", m.SL, m.StopLossDistance)
	fmt.Printf("  Potential Profit: %.2f\n", m.PotentialProfit)
	fmt.Printf("  Potential Loss: %.2f\n", m.PotentialLoss)
	fmt.Printf("  Risk/Reward: %.2f\n", m.RiskRewardRatio)
	fmt.Printf("  Fee Impact: %.2f\n\n", m.FeeImpact)

	if cfg.Scoring.Preset == "detailed" {
		d := pipeline.Detailed(in, m)
		fmt.Printf("Strength (detailed): %d — %s\n", d.Score, d.Label)
		for _, fac := range d.Details {
			fmt.Printf("  %-22s %+d  %s\n", fac.Factor, fac.Score, fac.Reason)
		}
	} else {
		fmt.Printf("Strength: %d — %s (%s)\n", m.Strength.Score, m.Strength.Rating, m.Strength.Color)
	}

	if evalFlags.journalOn {
		j, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer j.Close()

		err = j.RecordSetup(journal.SetupRecord{
			ID:               id.New(),
			Time:             time.Now().UTC(),
			Side:             string(in.PositionSide),
			Price:            in.Price,
			Quantity:         in.Quantity,
			Leverage:         in.Leverage,
			Margin:           m.Margin,
			LiquidationPrice: m.LiquidationPrice,
			TP:               m.TP,
			SL:               m.SL,
			RiskReward:       m.RiskRewardRatio,
			Score:            m.Strength.Score,
			Rating:           m.Strength.Rating,
		})
		if err != nil {
			return fmt.Errorf("record setup: %w", err)
		}
		fmt.Println("\n✓ Setup recorded to journal.")
	}

	return nil
}
