package cmd

import (
	"context"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func bindTestFlags(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("HOOKS_HANDBOOK_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("HOOKS_HANDBOOK_CMD_TEST_MODE", "env-mode")

	cfg := testConfig{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-address", "flag:9001"}, bindTestFlags); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfg.Address)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfg.Mode)
	}
}

func TestParseConfigFromArgsKeepsEnvDefaults(t *testing.T) {
	cfg := testConfig{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, nil, bindTestFlags); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Address != "127.0.0.1:8080" {
		t.Fatalf("Address = %q, want %q", cfg.Address, "127.0.0.1:8080")
	}
	if cfg.Mode != "server" {
		t.Fatalf("Mode = %q, want %q", cfg.Mode, "server")
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected parse config to reject nil target")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceHandbook, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryRunsLoopWithoutEndpoint(t *testing.T) {
	t.Setenv("HOOKS_HANDBOOK_OTEL_ENDPOINT", "")

	called := false
	err := RunWithTelemetry(context.Background(), ServiceHandbook, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("RunWithTelemetry() error = %v", err)
	}
	if !called {
		t.Fatal("expected run loop to be called")
	}
}
