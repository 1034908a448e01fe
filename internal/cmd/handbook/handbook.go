// Package handbook parses handbook command flags and starts the web service.
package handbook

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/hooks.handbook/internal/platform/cmd"
	server "github.com/louisbranch/hooks.handbook/internal/services/handbook"
)

// Config holds handbook command configuration.
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR"          envDefault:"localhost:8080"`
	DemoAPIBaseURL string        `env:"DEMO_API_BASE_URL"  envDefault:"https://jsonplaceholder.typicode.com"`
	DemoAPITimeout time.Duration `env:"DEMO_API_TIMEOUT"   envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	if cfg.DemoAPITimeout <= 0 {
		return Config{}, fmt.Errorf("demo api timeout must be positive, got %s", cfg.DemoAPITimeout)
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DemoAPIBaseURL, "demo-api-base-url", cfg.DemoAPIBaseURL, "base URL of the demo REST API")
	fs.DurationVar(&cfg.DemoAPITimeout, "demo-api-timeout", cfg.DemoAPITimeout, "timeout for demo API fetches")
}

// Run builds the handbook server and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceHandbook, func(ctx context.Context) error {
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:       cfg.HTTPAddr,
			DemoAPIBaseURL: cfg.DemoAPIBaseURL,
			DemoAPITimeout: cfg.DemoAPITimeout,
		})
		if err != nil {
			return fmt.Errorf("init handbook server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve handbook: %w", err)
		}
		return nil
	})
}
