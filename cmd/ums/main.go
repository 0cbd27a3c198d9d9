// Package main provides the interactive university management console.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/allexsabbir/uiu-ums-go/internal/auth"
	"github.com/allexsabbir/uiu-ums-go/internal/config"
	"github.com/allexsabbir/uiu-ums-go/internal/console"
	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
	"github.com/allexsabbir/uiu-ums-go/internal/report"
	"github.com/allexsabbir/uiu-ums-go/internal/seed"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; packages that log without an injected logger
	// pick it up through the slog default.
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log.Logger)
	log.Info("Starting UIU UMS")

	// Open record stores
	reg, err := registry.Open(cfg.DataDir)
	if err != nil {
		log.WithError(err).Error("Failed to open record stores")
		os.Exit(1)
	}
	defer func() { _ = reg.Close() }()
	log.WithField("data_dir", cfg.DataDir).Info("Record stores opened")

	authn := auth.NewAuthenticator(reg.Users)

	// Seed demo data on first run
	if cfg.SeedDemoData {
		seeded, err := seed.Bootstrap(reg, authn, log.Logger)
		if err != nil {
			log.WithError(err).Error("Failed to seed demo data")
			os.Exit(1)
		}
		if seeded {
			fmt.Println("First run: demo data created, login as admin/admin123.")
		}
	}

	ui := console.New(os.Stdin, os.Stdout, reg, report.NewEngine(reg), authn, log)
	if err := ui.Run(); err != nil {
		log.WithError(err).Error("Console session failed")
		os.Exit(1)
	}

	log.Info("Goodbye")
}
