// Package main starts the React Hooks Handbook web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	handbookcmd "github.com/louisbranch/hooks.handbook/internal/cmd/handbook"
	"github.com/louisbranch/hooks.handbook/internal/platform/config"
)

func main() {
	log.SetPrefix("[HANDBOOK] ")
	cfg, err := handbookcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := handbookcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
