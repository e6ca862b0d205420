package config

import (
	"github.com/caarlos0/env/v11"

	"ad-budget/internal/config/configs"
)

// Config aggregates all configuration sections for the engine. Fields are
// populated from environment variables using caarlos0/env; nested structs
// carry an envPrefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (prod, dev). Logged at start-up.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Scheduler holds cron expressions per sweep and the reference time
	// zone. Variables are prefixed with SCHEDULER_.
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`

	// Retry bounds the retry of contended store writes.
	Retry configs.Retry `envPrefix:"RETRY_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
