// Package admin parses admin command flags and launches the admin UI.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/storeadmin/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/storeadmin/internal/platform/grpc"
	"github.com/louisbranch/storeadmin/internal/platform/timeouts"
	"github.com/louisbranch/storeadmin/internal/services/admin"
	"github.com/louisbranch/storeadmin/internal/services/admin/team"
)

// Config holds the admin command configuration. Environment variables are
// read with the STOREADMIN_ prefix.
type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8082"`
	HealthAddr   string        `env:"HEALTH_ADDR"`
	APIURL       string        `env:"API_URL"`
	APIToken     string        `env:"API_TOKEN"`
	PublicOrigin string        `env:"PUBLIC_ORIGIN"`
	DBPath       string        `env:"DB_PATH" envDefault:"data/admin.db"`
	FilterPolicy string        `env:"FILTER_POLICY" envDefault:"replace"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	// Probe checks the health endpoint of a running instance and exits.
	Probe bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the store admin API")
	fs.StringVar(&cfg.APIToken, "api-token", cfg.APIToken, "bearer token sent to the store admin API")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (disabled when empty)")
	fs.StringVar(&cfg.PublicOrigin, "public-origin", cfg.PublicOrigin, "origin used in invite links when the store has no template")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the local sqlite database")
	fs.StringVar(&cfg.FilterPolicy, "filter-policy", cfg.FilterPolicy, "team filter policy: replace or intersect")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "how long remote reads are cached")
	fs.BoolVar(&cfg.Probe, "probe", false, "probe the health endpoint at -health-addr and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := team.ParsePolicy(cfg.FilterPolicy); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL < 0 {
		return Config{}, fmt.Errorf("cache ttl must not be negative, got %s", cfg.CacheTTL)
	}
	return cfg, nil
}

// Run starts the admin server, or probes a running one.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Probe {
		return probe(ctx, cfg)
	}
	policy, err := team.ParsePolicy(cfg.FilterPolicy)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(ctx, admin.Config{
			HTTPAddr:     cfg.HTTPAddr,
			HealthAddr:   cfg.HealthAddr,
			APIURL:       cfg.APIURL,
			APIToken:     cfg.APIToken,
			PublicOrigin: cfg.PublicOrigin,
			DBPath:       cfg.DBPath,
			FilterPolicy: policy,
			CacheTTL:     cfg.CacheTTL,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}

func probe(ctx context.Context, cfg Config) error {
	if cfg.HealthAddr == "" {
		return errors.New("probe requires -health-addr")
	}
	return platformgrpc.Probe(ctx, cfg.HealthAddr, admin.HealthService, timeouts.GRPCDial, log.Printf)
}
