package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"spotplan/internal/config/configs"
)

// notionTextLimit is the largest rich text content Notion stores in one
// property fragment.
const notionTextLimit = 2000

// Config is the calendar service configuration, read from the environment.
// Each section has its own variable prefix.
type Config struct {
	// Env names the deployment and is attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Notion  configs.Notion   `envPrefix:"NOTION_"`
	Planner configs.Planner  `envPrefix:"PLANNER_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads the environment and checks the settings that depend on each
// other. Missing variables take their defaults. NOTION_TOKEN is not required
// here; record store calls report it instead.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Planner.FieldLimit <= 0 || c.Planner.FieldLimit > notionTextLimit {
		errs = append(errs, fmt.Errorf("PLANNER_FIELD_LIMIT must be between 1 and %d, got %d", notionTextLimit, c.Planner.FieldLimit))
	}
	if c.Planner.HistoryLimit <= 0 {
		errs = append(errs, fmt.Errorf("PLANNER_HISTORY_LIMIT must be positive, got %d", c.Planner.HistoryLimit))
	}
	if !c.Psql.Enabled && (c.Psql.RunMigrations || c.Psql.Seed) {
		errs = append(errs, errors.New("PSQL_RUN_MIGRATIONS and PSQL_SEED need PSQL_ENABLED=true"))
	}
	return errors.Join(errs...)
}
