// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every handbook environment variable.
const EnvPrefix = "HOOKS_HANDBOOK_"

// ParseEnv loads configuration from environment variables.
//
// Field tags are written without the shared prefix; ParseEnv applies
// EnvPrefix so `env:"HTTP_ADDR"` reads HOOKS_HANDBOOK_HTTP_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
