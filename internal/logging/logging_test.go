package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/marshallshelly/catalog/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("interactive without file discards", func(t *testing.T) {
		logger, err := New(config.LoggingConfig{Level: "info"}, false, true)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("level", func(t *testing.T) {
		logger, err := New(config.LoggingConfig{Level: "warn"}, false, false)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("verbose forces debug", func(t *testing.T) {
		logger, err := New(config.LoggingConfig{Level: "error"}, true, false)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("file output in interactive mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.log")
		logger, err := New(config.LoggingConfig{Level: "info", File: path}, false, true)
		require.NoError(t, err)

		logger.Info("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(config.LoggingConfig{Level: "loud"}, false, false)
		assert.Error(t, err)
	})
}
