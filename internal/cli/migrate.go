package cli

import (
	"context"
	"fmt"
	"time"

	"bank-account-service/config"
	pgStorage "bank-account-service/internal/adapter/storage/postgres"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Duration("timeout", 30*time.Second, "Give up if the schema is not applied within this duration")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL schema",
	Long:  `Create the accounts, debit_cards and audit_logs tables and their indexes. Safe to run repeatedly.`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return applySchema(cmd.Context(), cfg, log, timeout)
}

func applySchema(ctx context.Context, cfg *config.Config, log zerolog.Logger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	defer pool.Close()

	if err := pgStorage.Migrate(ctx, pool); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Database.DBName).Msg("schema applied")
	return nil
}
