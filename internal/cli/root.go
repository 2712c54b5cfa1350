// Package cli holds the accountd command tree.
package cli

import (
	"fmt"

	"bank-account-service/config"
	"bank-account-service/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ./config.yaml or ./config/config.yaml)")
}

var rootCmd = &cobra.Command{
	Use:   "accountd",
	Short: "Bank account ledger and debit card payment service",
	Long: `accountd opens bank accounts under the savings, checking and fixed-term
rules, applies deposits, withdrawals and transfers, and routes debit card
payments across a customer's linked accounts.

Configuration is read from a YAML file and BAS_* environment variables.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads configuration and builds the process logger.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
}
