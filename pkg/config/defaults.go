package config

import (
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultWorkers        = 4
	DefaultLogLevel       = "info"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvLogLevel = "EXTCMD_LOG_LEVEL"
	EnvWorkers  = "EXTCMD_WORKERS"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CommandSources: []string{},
		Workers:        DefaultWorkers,
		LogLevel:       DefaultLogLevel,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if workers := os.Getenv(EnvWorkers); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil {
			c.Workers = n
		}
	}
}
