// Package config loads command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name declared in env tags.
const EnvPrefix = "MINIGAMES_"

// ParseEnv loads configuration from environment variables. A field tagged
// `env:"SEED"` reads MINIGAMES_SEED.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
