package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/Rana718/spotseed/internal/database/common"
	"github.com/Rana718/spotseed/internal/seeder"
	"github.com/spf13/viper"
)

type Config struct {
	Database   Database `json:"database" mapstructure:"database"`
	TokensPath string   `json:"tokens_path,omitempty" mapstructure:"tokens_path"` // Empty uses the built-in token list
	Seed       Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider  string `json:"provider" mapstructure:"provider"`
	URLEnv    string `json:"url_env" mapstructure:"url_env"`
	BatchSize int    `json:"batch_size,omitempty" mapstructure:"batch_size"`
}

type Seed struct {
	Users    int            `json:"users" mapstructure:"users"`
	PerUser  map[string]int `json:"per_user,omitempty" mapstructure:"per_user"`
	RandSeed int64          `json:"rand_seed,omitempty" mapstructure:"rand_seed"`
	Stages   Stages         `json:"stages" mapstructure:"stages"`
}

// Stages switches individual generation stages on or off. Users are always
// seeded.
type Stages struct {
	Positions      bool `json:"positions" mapstructure:"positions"`
	Vaults         bool `json:"vaults" mapstructure:"vaults"`
	Airdrops       bool `json:"airdrops" mapstructure:"airdrops"`
	LinkedAccounts bool `json:"linked_accounts" mapstructure:"linked_accounts"`
	Transactions   bool `json:"transactions" mapstructure:"transactions"`
}

var supportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.BatchSize == 0 {
		cfg.Database.BatchSize = common.DefaultBatchSize
	}
	if !viper.IsSet("seed.users") {
		cfg.Seed.Users = seeder.DefaultUsers
	}
	// Airdrops and linked accounts stay off unless asked for.
	if !viper.IsSet("seed.stages.positions") {
		cfg.Seed.Stages.Positions = true
	}
	if !viper.IsSet("seed.stages.vaults") {
		cfg.Seed.Stages.Vaults = true
	}
	if !viper.IsSet("seed.stages.transactions") {
		cfg.Seed.Stages.Transactions = true
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Database.URLEnv == "" {
		return fmt.Errorf("database.url_env cannot be empty")
	}

	if c.Database.BatchSize < 0 {
		return fmt.Errorf("database.batch_size cannot be negative: %d", c.Database.BatchSize)
	}

	if _, err := c.SeedConfig(); err != nil {
		return err
	}
	return nil
}

// SeedConfig converts the seed section into the seeder's run configuration.
func (c *Config) SeedConfig() (seeder.SeedConfig, error) {
	cfg := seeder.SeedConfig{
		Users:        c.Seed.Users,
		Multiplicity: make(map[seeder.Stage]int, len(c.Seed.PerUser)),
		Disabled: map[seeder.Stage]bool{
			seeder.StagePositions:      !c.Seed.Stages.Positions,
			seeder.StageVaults:         !c.Seed.Stages.Vaults,
			seeder.StageAirdrops:       !c.Seed.Stages.Airdrops,
			seeder.StageLinkedAccounts: !c.Seed.Stages.LinkedAccounts,
			seeder.StageTransactions:   !c.Seed.Stages.Transactions,
		},
		RandSeed: c.Seed.RandSeed,
	}

	keys := make([]string, 0, len(c.Seed.PerUser))
	for k := range c.Seed.PerUser {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		stage := seeder.Stage(k)
		switch stage {
		case seeder.StagePositions, seeder.StageVaults, seeder.StageAirdrops, seeder.StageLinkedAccounts:
			cfg.Multiplicity[stage] = c.Seed.PerUser[k]
		default:
			return cfg, fmt.Errorf("seed.per_user: unknown stage %q", k)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid seed config: %w", err)
	}
	return cfg, nil
}

// SetPerUser overrides the multiplicity of every fan-out stage.
func (c *Config) SetPerUser(n int) {
	if c.Seed.PerUser == nil {
		c.Seed.PerUser = make(map[string]int)
	}
	for _, stage := range []seeder.Stage{seeder.StagePositions, seeder.StageVaults, seeder.StageAirdrops, seeder.StageLinkedAccounts} {
		c.Seed.PerUser[string(stage)] = n
	}
}
