package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "levcalc",
	Short: "A leveraged-trading position calculator",
	Long: `Levcalc derives margin, liquidation and risk metrics for a proposed
leveraged trade and scores its overall strength.

It provides tools for:
  - Computing position size, margin and liquidation price
  - Resolving take-profit/stop-loss levels from a target risk/reward ratio
  - Scoring trade strength with summary and detailed presets
  - Simulating fees and PnL at the resolved levels
  - Sweeping leverage ranges with score statistics
  - Journaling evaluated setups to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
