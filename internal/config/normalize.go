package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

func (c *Config) normalize() error {
	c.Database.Driver = lower.String(strings.TrimSpace(c.Database.Driver))
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "pgx" {
		c.Database.Driver = "postgres"
	}

	var err error
	if c.Database.Path, err = expandPath(strings.TrimSpace(c.Database.Path)); err != nil {
		return fmt.Errorf("database.path: %w", err)
	}
	if c.Catalog.ProtocolDir, err = expandPath(strings.TrimSpace(c.Catalog.ProtocolDir)); err != nil {
		return fmt.Errorf("catalog.protocol_dir: %w", err)
	}
	if c.Metrics.Textfile, err = expandPath(strings.TrimSpace(c.Metrics.Textfile)); err != nil {
		return fmt.Errorf("metrics.textfile: %w", err)
	}

	c.Logging.Level = lower.String(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = lower.String(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if len(c.Workforce.Defaults) > 0 {
		normalized := make(map[string]Ratio, len(c.Workforce.Defaults))
		for name, r := range c.Workforce.Defaults {
			normalized[lower.String(strings.TrimSpace(name))] = r
		}
		c.Workforce.Defaults = normalized
	}
	return nil
}
