package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/levtools/levcalc/journal"
	"github.com/levtools/levcalc/pkg/id"
	"github.com/levtools/levcalc/risk"
	"github.com/levtools/levcalc/sim"
)

var (
	simFlags  tradeFlags
	simMargin float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate fees and PnL for a trade",
	Long: `Simulate a trade at its resolved TP/SL levels: fee line items by
order type and net PnL at take-profit and stop-loss.

The position size here is the fully-margined notional (margin x leverage).
If --margin is omitted it is derived from price, quantity and leverage.

Examples:
  levcalc simulate --price 100 --quantity 10 --leverage 5
  levcalc simulate --price 100 --quantity 10 --leverage 1 --margin 1000 --tp 120 --sl 90`,
	RunE: runSimulate,
}

func init() {
	simFlags.register(simulateCmd)
	simulateCmd.Flags().Float64Var(&simMargin, "margin", 0, "margin committed (0 = derive from leverage)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, in, ratio, err := simFlags.load(cmd)
	if err != nil {
		return err
	}
	if in.Price <= 0 || in.Quantity <= 0 {
		return fmt.Errorf("price and quantity must be positive")
	}

	margin := simMargin
	if margin <= 0 {
		margin = sim.RequiredMargin(in.Price, in.Quantity, in.Leverage)
	}

	lv := risk.ResolveTpSl(in.Price, in.PositionSide.IsLong(), ratio, in.TP, in.SL)
	s := sim.New(in.Price, in.Quantity, in.Leverage, margin,
		in.MakerFee, in.TakerFee, lv.TP, lv.SL, in.OrderType)
	r := s.Simulate()

	fmt.Println("=== Trade Simulation ===")
	fmt.Println()
	fmt.Printf("  Entry Price: %.2f\n", r.EntryPrice)
	fmt.Printf("  Leverage: %.1fx\n", r.Leverage)
	fmt.Printf("  Margin Used: %.2f\n", r.MarginUsed)
	fmt.Printf("  Position Size: %.2f\n", r.PositionSize)
	fmt.Printf("  Market Fee: %.2f\n", r.MarketFee)
	fmt.Printf("  Limit Fee: %.2f\n", r.LimitFee)
	fmt.Printf("  Profit at TP (%.2f): %.2f\n", lv.TP, r.ProfitAtTP)
	fmt.Printf("  Loss at SL (%.2f): %.2f\n", lv.SL, r.LossAtSL)

	if simFlags.journalOn {
		j, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer j.Close()

		err = j.RecordSimulation(journal.SimulationRecord{
			ID:           id.New(),
			Time:         time.Now().UTC(),
			OrderType:    string(in.OrderType),
			EntryPrice:   r.EntryPrice,
			Leverage:     r.Leverage,
			MarginUsed:   r.MarginUsed,
			PositionSize: r.PositionSize,
			Fees:         r.MarketFee + r.LimitFee,
			ProfitAtTP:   r.ProfitAtTP,
			LossAtSL:     r.LossAtSL,
		})
		if err != nil {
			return fmt.Errorf("record simulation: %w", err)
		}
		fmt.Println("\n✓ Simulation recorded to journal.")
	}

	return nil
}
