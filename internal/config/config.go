package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingRequired = errors.New("missing required configuration")

type Config struct {
	DBHost string `envconfig:"DB_HOST" default:"postgres"`
	DBPort int    `envconfig:"DB_PORT" default:"5432"`
	DBUser string `envconfig:"DB_USER" default:"futurestudies"`
	DBPass string `envconfig:"DB_PASS" default:"password"`
	DBName string `envconfig:"DB_NAME" default:"futurestudies"`

	NSQLookupd string `envconfig:"NSQ_LOOKUPD" default:"nsqlookupd:4161"`
	NSQDHost   string `envconfig:"NSQD_HOST" default:"nsqd:4150"`
	NSQDHTTP   string `envconfig:"NSQD_HTTP" default:"nsqd:4151"`

	EnableAPI             bool   `envconfig:"ENABLE_API" default:"true"`
	EnableOptimizerWorker bool   `envconfig:"ENABLE_OPTIMIZER_WORKER" default:"true"`
	OptimizeConcurrency   int    `envconfig:"OPTIMIZE_CONCURRENCY" default:"4"`
	MigrationPath         string `envconfig:"MIGRATION_PATH" default:"file://migrations"`

	// ProfilePath points at an optional YAML file overriding the built-in
	// per-domain vocabulary profiles.
	ProfilePath       string `envconfig:"PROFILE_PATH"`
	ExportSourceLabel string `envconfig:"EXPORT_SOURCE_LABEL" default:"LinkedU Articles (RAG Optimized)"`

	// Server
	ServerPort int `envconfig:"SERVER_PORT" default:"8081"`

	// Resilience
	BootstrapRetryAttempts     int `envconfig:"BOOTSTRAP_RETRY_ATTEMPTS" default:"10"`
	BootstrapRetryDelaySeconds int `envconfig:"BOOTSTRAP_RETRY_DELAY_SECONDS" default:"2"`
}

func Load() (*Config, error) {
	// Env vars may also come from the shell; a missing .env is fine.
	_ = godotenv.Load(".env")

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("%w: DB_HOST", ErrMissingRequired)
	}
	if c.DBUser == "" {
		return fmt.Errorf("%w: DB_USER", ErrMissingRequired)
	}
	if c.DBName == "" {
		return fmt.Errorf("%w: DB_NAME", ErrMissingRequired)
	}
	if c.OptimizeConcurrency < 1 {
		return fmt.Errorf("%w: OPTIMIZE_CONCURRENCY must be at least 1", ErrMissingRequired)
	}
	return nil
}
