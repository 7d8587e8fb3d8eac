// Package config loads herdsync settings from a TOML file with HERDSYNC_*
// environment overrides layered on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Database selects the persistence backend.
type Database struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
	DSN    string `toml:"dsn"`
}

// Catalog points at user-defined protocol files.
type Catalog struct {
	ProtocolDir string `toml:"protocol_dir"`
}

type Forecast struct {
	WindowDays int `toml:"window_days"`
}

// Ratio is a per-role capacity ratio; zero leaves the role unstaffed.
type Ratio struct {
	WorkerPerCows     float64 `toml:"worker_per_cows"`
	TechnicianPerCows float64 `toml:"technician_per_cows"`
	DoctorPerCows     float64 `toml:"doctor_per_cows"`
}

// Workforce overrides the built-in default ratios per task type.
type Workforce struct {
	Defaults map[string]Ratio `toml:"defaults"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Metrics enables the Prometheus textfile export.
type Metrics struct {
	Textfile string `toml:"textfile"`
}

// Config encapsulates all configuration values for herdsync.
type Config struct {
	Database  Database  `toml:"database"`
	Catalog   Catalog   `toml:"catalog"`
	Forecast  Forecast  `toml:"forecast"`
	Workforce Workforce `toml:"workforce"`
	Logging   Logging   `toml:"logging"`
	Metrics   Metrics   `toml:"metrics"`
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		Database: Database{
			Driver: "sqlite",
			Path:   "~/.herdsync/herdsync.db",
		},
		Catalog:  Catalog{ProtocolDir: "~/.herdsync/protocols"},
		Forecast: Forecast{WindowDays: 14},
		Logging:  Logging{Level: "warn", Format: "text"},
	}
}

// DefaultConfigPath returns the absolute path of the default config file.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/herdsync/config.toml")
}

// Load reads path (or the default locations when path is empty), applies
// environment overrides, then normalizes and validates the result. It also
// reports the resolved file path and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// WorkforceDefaults returns the configured per-type ratio overrides.
func (c *Config) WorkforceDefaults() map[domain.TaskType]domain.CapacityRatio {
	out := make(map[domain.TaskType]domain.CapacityRatio, len(c.Workforce.Defaults))
	for name, r := range c.Workforce.Defaults {
		out[domain.TaskType(name)] = domain.CapacityRatio{
			WorkerPerSubjects:     r.WorkerPerCows,
			TechnicianPerSubjects: r.TechnicianPerCows,
			DoctorPerSubjects:     r.DoctorPerCows,
		}
	}
	return out
}

// LockPath is where the CLI writer lock lives for this configuration.
func (c *Config) LockPath() string {
	if c.Database.Driver == "postgres" || c.Database.Path == ":memory:" {
		return filepath.Join(os.TempDir(), "herdsync.lock")
	}
	return c.Database.Path + ".lock"
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = os.Getenv("HERDSYNC_CONFIG")
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("herdsync.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" || pathValue == ":memory:" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
