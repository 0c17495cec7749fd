package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// LoadEnv merges SKYSAMPLER_* environment variables into cfg. When envFile
// is non-empty it is loaded first and overrides the process environment,
// matching what an explicit --env-file flag should do.
func LoadEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
