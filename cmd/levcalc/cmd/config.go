package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levtools/levcalc/config"
)

var configOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage calculator configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if err := cfg.SaveToFile(configOut); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote default config to %s\n", configOut)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configOut, "out", "levcalc.yaml", "output path (.yaml/.yml or .json)")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
