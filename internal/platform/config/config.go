// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by ParseEnv. Struct tags name the
// variable without it: `env:"HTTP_ADDR"` reads STOREADMIN_HTTP_ADDR.
const EnvPrefix = "STOREADMIN_"

// ParseEnv fills target from prefixed environment variables.
func ParseEnv(target any) error {
	return ParseEnvWith(target, nil)
}

// ParseEnvWith fills target from environ instead of the process
// environment. A nil environ reads the process environment.
func ParseEnvWith(target any, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
