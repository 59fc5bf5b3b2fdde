// Package config holds runtime configuration. Everything is overridable
// through the environment, with a best-effort .env load for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// GenerationDelay is the simulated latency of the report render job.
	GenerationDelay time.Duration
	// NotificationTTL is how long a toast stays visible without a dismiss.
	NotificationTTL time.Duration

	// Analysis service settings. An empty key disables analysis and reports
	// fall back to placeholder summaries.
	AnalysisURL string
	AnalysisKey string

	// LogDir receives file logs in TUI mode.
	LogDir string
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		GenerationDelay: 5 * time.Second,
		NotificationTTL: 4 * time.Second,
		LogDir:          "logs",
	}
}

// Load builds the effective configuration: defaults, then .env (if present),
// then process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	c := NewConfig()
	c.LoadFromEnvironment()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromEnvironment overrides fields from environment variables.
func (c *Config) LoadFromEnvironment() {
	if ms := os.Getenv("EVALIO_GENERATION_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			c.GenerationDelay = time.Duration(v) * time.Millisecond
		}
	}

	if ms := os.Getenv("EVALIO_NOTIFICATION_TTL_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			c.NotificationTTL = time.Duration(v) * time.Millisecond
		}
	}

	if url := os.Getenv("EVALIO_ANALYSIS_URL"); url != "" {
		c.AnalysisURL = url
	}

	if key := os.Getenv("EVALIO_ANALYSIS_KEY"); key != "" {
		c.AnalysisKey = key
	}

	if dir := os.Getenv("EVALIO_LOG_DIR"); dir != "" {
		c.LogDir = dir
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.GenerationDelay <= 0 {
		return fmt.Errorf("generation delay must be positive, got: %s", c.GenerationDelay)
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("notification TTL must be positive, got: %s", c.NotificationTTL)
	}
	if c.AnalysisKey != "" && c.AnalysisURL == "" {
		return fmt.Errorf("analysis key set but no analysis URL configured")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory cannot be empty")
	}
	return nil
}
