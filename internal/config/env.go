// Package config defines environment variable keys for configuration.
package config

const (
	// Data
	EnvDataDir = "UMS_DATA_DIR"

	// Server
	EnvLogLevel = "UMS_LOG_LEVEL"

	// Bootstrap
	EnvSeedDemoData = "UMS_SEED_DEMO_DATA"
)
