package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indusign/indusign/pkg/constants"
	"github.com/indusign/indusign/pkg/logging"
)

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("respects level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "level.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})
		logger.Debug().Msg("debug message")
		logger.Info().Msg("info message")
		logger.Warn().Msg("warn message")
		logger.Error().Msg("error message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		output := string(content)
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, `"level":"warn"`)
		assert.Contains(t, output, "error message")
	})

	t.Run("console format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Format:  "console",
			Output:  path,
			NoColor: true,
		})
		logger.Info().Str("addr", "0.0.0.0:8000").Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
		assert.Contains(t, string(content), "addr=0.0.0.0:8000")
	})

	t.Run("caller", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "caller.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{Format: "json", Output: path, Caller: true})
		logger.Info().Msg("with caller")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"caller":`)
		assert.Contains(t, string(content), "logger_test.go")
	})

	t.Run("log file mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mode.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{Format: "json", Output: path})
		logger.Info().Msg("created")

		info, err := os.Stat(path)
		require.NoError(t, err)
		// umask can only clear bits
		assert.Zero(t, info.Mode().Perm()&^os.FileMode(constants.FilePermissions))
	})

	t.Run("auto format on a file writes json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "auto.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{Output: path})
		logger.Info().Msg("auto")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"message":"auto"`)
	})

	t.Run("nil config", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	// Must not panic
	logger.Info().Msg("discarded")
}
