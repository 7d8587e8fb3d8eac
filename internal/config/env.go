package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnv overlays HERDSYNC_* variables. Unlike unset variables, a set but
// malformed numeric value is an error.
func (c *Config) applyEnv() error {
	if v := os.Getenv("HERDSYNC_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("HERDSYNC_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("HERDSYNC_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("HERDSYNC_PROTOCOLS"); v != "" {
		c.Catalog.ProtocolDir = v
	}
	if v := os.Getenv("HERDSYNC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HERDSYNC_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("HERDSYNC_METRICS_TEXTFILE"); v != "" {
		c.Metrics.Textfile = v
	}
	if v := os.Getenv("HERDSYNC_FORECAST_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HERDSYNC_FORECAST_DAYS: %w", err)
		}
		c.Forecast.WindowDays = n
	}
	return nil
}
