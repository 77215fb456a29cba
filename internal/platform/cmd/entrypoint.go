// Package cmd holds the startup plumbing shared by service commands: config
// loading, flag parsing and the telemetry lifecycle.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/storeadmin/internal/platform/config"
	"github.com/louisbranch/storeadmin/internal/platform/otel"
	"github.com/louisbranch/storeadmin/internal/platform/timeouts"
)

// ServiceAdmin names the admin process in telemetry.
const ServiceAdmin = "storeadmin"

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Flags override environment values
// when they default to them.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing from the environment, runs the service and
// flushes spans on return.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}

	var telemetry otel.Config
	if err := config.ParseEnv(&telemetry); err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, service, telemetry)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	if telemetry.Active() {
		log.Printf("tracing to %s (sample ratio %.2f)", telemetry.Endpoint, telemetry.SampleRatio)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
