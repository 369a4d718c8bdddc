// Command tracker prints workout summaries for sensor packages.
//
// Usage:
//
//	tracker [-f packages.yaml] [-o text|json] [-s] [-l level] [-c config.json] [CODE:v1,v2,...]...
//
// Without packages arguments or file the built-in sample readings are used.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/fitness-tracker/internal/buildinfo"
	"github.com/and161185/fitness-tracker/internal/config"
	"github.com/and161185/fitness-tracker/internal/input"
	"github.com/and161185/fitness-tracker/internal/tracker"
)

func main() {
	buildinfo.Print(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewTrackerConfig()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = cfg.Logger.Sync() }()

	pkgs, err := input.Resolve(cfg.Args, cfg.PackagesPath)
	if err != nil {
		cfg.Logger.Fatal(err)
	}

	trk := tracker.NewTracker(cfg, os.Stdout)
	if err := trk.Run(ctx, pkgs); err != nil {
		cfg.Logger.Fatal(err)
	}
}
