package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig("/tmp/roast")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.App.LogLevel)
	assert.Equal(t, "/tmp/roast/roast.db", cfg.Storage.Path)
	assert.Equal(t, "/tmp/roast/roast.log", cfg.App.LogFile)
	assert.Empty(t, cfg.Catalog.Paths)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := NewDefaultConfig("/tmp/roast")
	require.NoError(t, Load(filepath.Join(t.TempDir(), "nope.yaml"), cfg))
	assert.Equal(t, NewDefaultConfig("/tmp/roast"), cfg)
}

func TestLoadOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("ROAST_TEST_DIR", "/data/roast")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  log_level: debug
storage:
  path: ${ROAST_TEST_DIR}/shared.db
catalog:
  paths:
    - ${ROAST_TEST_DIR}/shops/**/*.yaml
`), 0o644))

	cfg := NewDefaultConfig("/tmp/roast")
	require.NoError(t, Load(path, cfg))
	assert.Equal(t, slog.LevelDebug, cfg.App.LogLevel)
	assert.Equal(t, "/tmp/roast/roast.log", cfg.App.LogFile)
	assert.Equal(t, "/data/roast/shared.db", cfg.Storage.Path)
	assert.Equal(t, []string{"/data/roast/shops/**/*.yaml"}, cfg.Catalog.Paths)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: ["), 0o644))

	err := Load(path, NewDefaultConfig("/tmp/roast"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestStorageValidation(t *testing.T) {
	cfg := StorageConfig{}
	assert.Error(t, cfg.Validate())

	cfg.Ephemeral = true
	assert.NoError(t, cfg.Validate())
}

func TestCatalogValidation(t *testing.T) {
	cfg := CatalogConfig{Paths: []string{"a.yaml", " "}}
	assert.ErrorContains(t, cfg.Validate(), "paths[1] is empty")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".roast", "roast.db"), ExpandHome("~/.roast/roast.db"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}
