package config

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if c.Forecast.WindowDays < 1 || c.Forecast.WindowDays > 365 {
		return fmt.Errorf("forecast.window_days must be between 1 and 365, got %d", c.Forecast.WindowDays)
	}
	if err := c.validateWorkforce(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("database.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for the postgres driver (set HERDSYNC_DB_DSN)")
		}
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	return nil
}

func (c *Config) validateWorkforce() error {
	for name, r := range c.Workforce.Defaults {
		if !domain.ValidTaskTypes[name] {
			return fmt.Errorf("workforce.defaults.%s: unknown task type", name)
		}
		if r.WorkerPerCows < 0 || r.TechnicianPerCows < 0 || r.DoctorPerCows < 0 {
			return fmt.Errorf("workforce.defaults.%s: ratios must be positive", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}
