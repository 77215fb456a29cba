package admin

import (
	"context"
	"flag"
	"io"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8082" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/admin.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.FilterPolicy != "replace" {
		t.Fatalf("filter policy = %q", cfg.FilterPolicy)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("cache ttl = %v", cfg.CacheTTL)
	}
	if cfg.Probe {
		t.Fatal("probe should default to false")
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("STOREADMIN_HTTP_ADDR", "env-addr")
	t.Setenv("STOREADMIN_API_URL", "https://env.example.com")
	t.Setenv("STOREADMIN_CACHE_TTL", "1m")
	t.Setenv("STOREADMIN_FILTER_POLICY", "intersect")

	args := []string{"-http-addr", "flag-addr", "-api-token", "secret", "-health-addr", "127.0.0.1:9000"}
	cfg, err := ParseConfig(newFlagSet(), args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("flag should win, got %q", cfg.HTTPAddr)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Fatalf("api url = %q", cfg.APIURL)
	}
	if cfg.APIToken != "secret" || cfg.HealthAddr != "127.0.0.1:9000" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.CacheTTL != time.Minute || cfg.FilterPolicy != "intersect" {
		t.Fatalf("unexpected env values %+v", cfg)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown policy", args: []string{"-filter-policy", "union"}},
		{name: "negative ttl", args: []string{"-cache-ttl", "-1s"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseConfig(newFlagSet(), tc.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunProbeRequiresHealthAddr(t *testing.T) {
	if err := Run(context.Background(), Config{Probe: true}); err == nil {
		t.Fatal("expected probe error without health addr")
	}
}
