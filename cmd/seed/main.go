// Package main provides a standalone seeding tool that populates an
// empty data directory with the demo dataset without starting the
// interactive console.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/allexsabbir/uiu-ums-go/internal/auth"
	"github.com/allexsabbir/uiu-ums-go/internal/config"
	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
	"github.com/allexsabbir/uiu-ums-go/internal/seed"
)

var dataDirFlag = flag.String("data-dir", "", "Data directory (overrides UMS_DATA_DIR)")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log.Logger)
	log.Info("Starting seed tool")

	// Open record stores
	reg, err := registry.Open(cfg.DataDir)
	if err != nil {
		log.WithError(err).Error("Failed to open record stores")
		os.Exit(1)
	}
	defer func() { _ = reg.Close() }()

	seeded, err := seed.Bootstrap(reg, auth.NewAuthenticator(reg.Users), log.Logger)
	if err != nil {
		log.WithError(err).Error("Seeding failed")
		os.Exit(1)
	}
	if !seeded {
		fmt.Println("User store is not empty, nothing to do.")
		return
	}

	fmt.Printf("Demo data created in %s\n", cfg.DataDir)
	fmt.Println("Logins:")
	fmt.Printf("  admin   %s / %s\n", seed.AdminUsername, seed.AdminPassword)
	fmt.Printf("  faculty rezwan, john / %s\n", seed.FacultyPass)
	fmt.Printf("  student sabbir, mim / %s\n", seed.StudentPass)
}
