package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rana718/spotseed/internal/config"
	"github.com/Rana718/spotseed/internal/database"
	"github.com/Rana718/spotseed/internal/database/memory"
	"github.com/Rana718/spotseed/internal/domain"
	"github.com/Rana718/spotseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	seedUsers          int
	seedPerUser        int
	seedRandSeed       int64
	seedTokens         string
	seedNoVaults       bool
	seedNoAirdrops     bool
	seedNoLinked       bool
	seedAirdrops       bool
	seedLinkedAccounts bool
	seedDryRun         bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic data",
	Long: `
Generate users and their dependent records and write them to the database
configured in spotseed.config.json.

Stages run in dependency order: users first, then the per-user records,
then one transaction per status for every position. Each stage is committed
before the next one starts, so a failure leaves the earlier stages in place.

Use --dry-run to generate everything in memory without touching a database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applySeedFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		seedCfg, err := cfg.SeedConfig()
		if err != nil {
			return err
		}

		tokens, err := domain.LoadTokens(cfg.TokensPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var session database.Session
		if seedDryRun {
			color.Yellow("🧪 Dry run: records are generated in memory only")
			session = memory.NewSession()
		} else {
			dbURL, err := cfg.GetDatabaseURL()
			if err != nil {
				return err
			}
			adapter, err := database.Open(ctx, cfg.Database.Provider, dbURL, cfg.Database.BatchSize)
			if err != nil {
				return err
			}
			defer adapter.Close()
			session = adapter
		}

		s := seeder.New(session, seedCfg, seeder.WithTokens(tokens.Symbols()))
		report, err := s.Run(ctx)
		if err != nil {
			color.Red("❌ Seeding stopped after state %s", report.State)
			if len(report.Counts) > 0 {
				color.Yellow("   Committed before the failure: %s", report)
			}
			return err
		}

		fmt.Println()
		color.Green("🎉 Seeded %d records", report.Total())
		for _, stage := range report.Order {
			fmt.Printf("  %-16s %d\n", stage, report.Counts[stage])
		}
		return nil
	},
}

// applySeedFlags lets explicitly passed flags override the config file.
func applySeedFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("users") {
		cfg.Seed.Users = seedUsers
	}
	if flags.Changed("per-user") {
		cfg.SetPerUser(seedPerUser)
	}
	if flags.Changed("rand-seed") {
		cfg.Seed.RandSeed = seedRandSeed
	}
	if flags.Changed("tokens") {
		cfg.TokensPath = seedTokens
	}
	if seedAirdrops {
		cfg.Seed.Stages.Airdrops = true
	}
	if seedLinkedAccounts {
		cfg.Seed.Stages.LinkedAccounts = true
	}
	if seedNoVaults {
		cfg.Seed.Stages.Vaults = false
	}
	if seedNoAirdrops {
		cfg.Seed.Stages.Airdrops = false
	}
	if seedNoLinked {
		cfg.Seed.Stages.LinkedAccounts = false
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedUsers, "users", seeder.DefaultUsers, "Number of users to create")
	seedCmd.Flags().IntVar(&seedPerUser, "per-user", seeder.DefaultPerParent, "Records per user for every per-user stage")
	seedCmd.Flags().Int64Var(&seedRandSeed, "rand-seed", 0, "Seed for the fake data generator (0 picks one at random)")
	seedCmd.Flags().StringVar(&seedTokens, "tokens", "", "YAML file with the token symbols to draw from")
	seedCmd.Flags().BoolVar(&seedAirdrops, "airdrops", false, "Also seed airdrops")
	seedCmd.Flags().BoolVar(&seedLinkedAccounts, "linked-accounts", false, "Also seed linked telegram accounts")
	seedCmd.Flags().BoolVar(&seedNoVaults, "no-vaults", false, "Skip vaults")
	seedCmd.Flags().BoolVar(&seedNoAirdrops, "no-airdrops", false, "Skip airdrops")
	seedCmd.Flags().BoolVar(&seedNoLinked, "no-linked-accounts", false, "Skip linked telegram accounts")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Generate records in memory without a database")
}
