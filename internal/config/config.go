// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the data directory, log level and demo-data seeding.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Entity file names inside the data directory. One flat binary file per
// entity; record width is entity-specific and fixed for the life of the file.
const (
	StudentsFile    = "students.dat"
	FacultyFile     = "faculty.dat"
	CoursesFile     = "courses.dat"
	EnrollmentsFile = "enrollments.dat"
	UsersFile       = "users.dat"
)

// Config holds all application configuration
type Config struct {
	// Data Configuration
	DataDir string // Directory holding the per-entity record files

	// Server Configuration
	LogLevel string

	// Bootstrap Configuration
	SeedDemoData bool // Create demo records and logins when the user store is empty
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:      getEnv(EnvDataDir, "data"),
		LogLevel:     getEnv(EnvLogLevel, "info"),
		SeedDemoData: getBoolEnv(EnvSeedDemoData, true),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// FilePath returns the full path of an entity file inside the data directory.
func (c *Config) FilePath(name string) string {
	return filepath.Join(c.DataDir, name)
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
