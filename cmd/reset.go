package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/spotseed/internal/config"
	"github.com/Rana718/spotseed/internal/database"
	"github.com/Rana718/spotseed/internal/seeder"
	"github.com/Rana718/spotseed/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all seeded data",
	Long: `
Empty every table spotseed writes to, dependents first, and reset their
id sequences. The tables themselves are kept.

⚠️  WARNING: This permanently deletes all rows in those tables!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		tables, err := seeder.TruncationOrder()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This will delete every row in: %s\n", strings.Join(tables, ", "))
		}
		input := &utils.InputUtils{In: os.Stdin, Out: os.Stdout}
		if !input.AskConfirmation("Do you want to continue?", force) {
			fmt.Println("❌ Reset cancelled")
			return nil
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

		if err := adapter.Truncate(ctx, tables); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
		color.Green("✅ Removed all seeded data")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
