// Package config loads roast's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Storage StorageConfig     `yaml:"storage"`
	Catalog CatalogConfig     `yaml:"catalog"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return c.Catalog.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)),
	)
}

// StorageConfig holds the SQLite database location.
// Ephemeral keeps favorites and notes in memory for the lifetime of the process.
type StorageConfig struct {
	Path      string `yaml:"path"`
	Ephemeral bool   `yaml:"ephemeral"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.When(!c.Ephemeral, validation.Required)),
	)
}

// CatalogConfig lists glob patterns of catalog files. Empty means the built-in catalog.
type CatalogConfig struct {
	Paths []string `yaml:"paths"`
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	for i, p := range c.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("catalog: paths[%d] is empty", i)
		}
	}
	return nil
}

// NewDefaultConfig returns a Config rooted at dir (usually ~/.roast).
func NewDefaultConfig(dir string) *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			LogFile:  filepath.Join(dir, "roast.log"),
		},
		Storage: StorageConfig{
			Path: filepath.Join(dir, "roast.db"),
		},
	}
}

// DefaultDir returns ~/.roast.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".roast"), nil
}

// Load reads filename over target, expanding environment variables first.
// A missing file leaves target untouched. The result is validated either way.
func Load(filename string, target *Config) error {
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	}

	target.App.LogFile = ExpandHome(target.App.LogFile)
	target.Storage.Path = ExpandHome(target.Storage.Path)

	if err := target.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
