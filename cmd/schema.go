package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/spotseed/internal/config"
	"github.com/Rana718/spotseed/internal/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the application tables",
	Long: `Create the user, position, vault, airdrop, telegram_user and transaction
tables for the configured provider. Existing tables are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := database.Open(ctx, cfg.Database.Provider, dbURL, cfg.Database.BatchSize)
		if err != nil {
			return err
		}
		defer adapter.Close()

		if err := adapter.ApplySchema(ctx); err != nil {
			return err
		}
		color.Green("✅ Schema applied (%s)", cfg.Database.Provider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
