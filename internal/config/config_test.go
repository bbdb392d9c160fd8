package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CATALOG_LOG_LEVEL", "")
	t.Setenv("CATALOG_LOG_FILE", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source: catalog.db
logging:
  level: debug
ui:
  table_height: 20
`), 0o644))

	t.Run("file", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "")
		t.Setenv("CATALOG_LOG_LEVEL", "")
		t.Setenv("CATALOG_LOG_FILE", "")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "catalog.db", cfg.Source)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 20, cfg.UI.TableHeight)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "postgres://localhost/catalog")
		t.Setenv("CATALOG_LOG_LEVEL", "warn")
		t.Setenv("CATALOG_LOG_FILE", "/tmp/catalog.log")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/catalog", cfg.Source)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "/tmp/catalog.log", cfg.Logging.File)
		assert.Equal(t, 20, cfg.UI.TableHeight)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("CATALOG_LOG_LEVEL", "")

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui: [1, 2"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("CATALOG_LOG_LEVEL", "loud")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("bad table height", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "height.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui:\n  table_height: 0\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "table_height")
	})
}
