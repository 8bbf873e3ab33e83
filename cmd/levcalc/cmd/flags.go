package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levtools/levcalc/config"
	"github.com/levtools/levcalc/journal"
	"github.com/levtools/levcalc/trade"
)

// tradeFlags holds the flag values shared by the eval, simulate, sweep and
// check commands.
type tradeFlags struct {
	price         float64
	quantity      float64
	leverage      float64
	tp            float64
	sl            float64
	targetRatio   float64
	makerFee      float64
	takerFee      float64
	marginPercent float64
	side          string
	orderType     string

	configPath string
	journalOn  bool
}

func (f *tradeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.price, "price", 0, "entry price")
	cmd.Flags().Float64Var(&f.quantity, "quantity", 0, "quantity in units")
	cmd.Flags().Float64Var(&f.leverage, "leverage", 0, "leverage multiplier")
	cmd.Flags().Float64Var(&f.tp, "tp", 0, "take-profit level (0 = derive from target ratio)")
	cmd.Flags().Float64Var(&f.sl, "sl", 0, "stop-loss level (0 = derive from target ratio)")
	cmd.Flags().Float64Var(&f.targetRatio, "rr", 0, "target risk/reward ratio")
	cmd.Flags().Float64Var(&f.makerFee, "maker-fee", -1, "maker fee rate")
	cmd.Flags().Float64Var(&f.takerFee, "taker-fee", -1, "taker fee rate")
	cmd.Flags().Float64Var(&f.marginPercent, "margin-percent", 0, "position-sizing slider value (0-100)")
	cmd.Flags().StringVar(&f.side, "side", "", "position side: long or short")
	cmd.Flags().StringVar(&f.orderType, "order-type", "", "order type: market, limit or trigger")
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (YAML or JSON)")
	cmd.Flags().BoolVar(&f.journalOn, "journal", false, "record the result to the configured journal")
}

// load merges the config file (or stock defaults) with the explicit flags
// into a complete input snapshot.
func (f *tradeFlags) load(cmd *cobra.Command) (*config.Config, trade.Inputs, float64, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, trade.Inputs{}, 0, err
		}
		cfg = loaded
	}

	in := cfg.Inputs()
	in.Price = f.price
	in.Quantity = f.quantity
	in.TP = f.tp
	in.SL = f.sl
	in.MarginPercent = f.marginPercent
	if cmd.Flags().Changed("leverage") {
		in.Leverage = f.leverage
	}
	if f.makerFee >= 0 {
		in.MakerFee = f.makerFee
	}
	if f.takerFee >= 0 {
		in.TakerFee = f.takerFee
	}
	if f.side != "" {
		in.PositionSide = trade.Side(f.side)
	}
	if f.orderType != "" {
		in.OrderType = trade.OrderType(f.orderType)
	}

	ratio := cfg.Defaults.TargetRiskReward
	if f.targetRatio > 0 {
		ratio = f.targetRatio
	}
	return cfg, in, ratio, nil
}

// openJournal builds the journal sink selected by the config.
func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.SetupsFile, cfg.Journal.SimulationsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "":
		return nil, fmt.Errorf("no journal configured")
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
}
