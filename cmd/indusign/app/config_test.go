package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indusign/indusign/cmd/indusign/cmd/serve"
	"github.com/indusign/indusign/internal/server"
	"github.com/indusign/indusign/pkg/errors"
)

// isolateConfig keeps config lookups away from the developer's home directory.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	isolateConfig(t)

	config, err := LoadConfig(newViper(), "")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Empty(t, config.ConfigFile)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

// TestLoadConfig_LoggingEnv verifies LOG_* variables reach the config.
func TestLoadConfig_LoggingEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.EnvLogLevel)
	assert.Empty(t, config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "stdout", config.LogOutput)
}

func TestServerConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := serverConfig(newViper())
	require.NoError(t, err)
	assert.Equal(t, server.DefaultConfig(), cfg)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestServerConfig_Environment(t *testing.T) {
	t.Setenv("INDUSIGN_HOST", "127.0.0.1")
	t.Setenv("INDUSIGN_PORT", "9001")
	t.Setenv("INDUSIGN_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("INDUSIGN_CORS_CREDENTIALS", "false")
	t.Setenv("INDUSIGN_RATE_LIMIT", "60")
	t.Setenv("INDUSIGN_TRUST_PROXY", "true")
	t.Setenv("INDUSIGN_METRICS_ENABLED", "false")
	t.Setenv("INDUSIGN_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := serverConfig(newViper())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.CORSCredentials)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.True(t, cfg.TrustProxy)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.DocsEnabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestServerConfig_HTTPAliases(t *testing.T) {
	t.Setenv("HTTP_HOST", "localhost")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := serverConfig(newViper())
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8081, cfg.Port)

	// The prefixed variable wins over the alias
	t.Setenv("INDUSIGN_PORT", "8082")
	cfg, err = serverConfig(newViper())
	require.NoError(t, err)
	assert.Equal(t, 8082, cfg.Port)
}

func TestServerConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "65536", "-1"} {
		t.Run(port, func(t *testing.T) {
			t.Setenv("INDUSIGN_PORT", port)

			_, err := serverConfig(newViper())
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err), "expected ConfigError, got %v", err)
		})
	}
}

func TestServerConfig_EmptyHost(t *testing.T) {
	t.Setenv("INDUSIGN_HOST", "   ")

	_, err := serverConfig(newViper())
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadConfig_File(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "indusign.yaml")
	content := `port: 9100
cors_origins:
  - https://sign.example.com
  - https://admin.example.com
rate_limit: 30
log_format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := newViper()
	config, err := LoadConfig(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "json", config.LogFormat)

	cfg, err := serverConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, []string{"https://sign.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 30, cfg.RateLimit)

	// Environment wins over the file
	t.Setenv("INDUSIGN_PORT", "9200")
	cfg, err = serverConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Port)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("INDUSIGN_PORT", "9001")
	t.Setenv("INDUSIGN_HOST", "127.0.0.1")

	cmd := &cobra.Command{Use: "serve"}
	serve.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{
		"--port", "9300",
		"--trust-proxy",
		"--cors-origins", "https://x.example,https://y.example",
		"--metrics=false",
	}))

	v := newViper()
	require.NoError(t, bindServeFlags(v, cmd))

	cfg, err := serverConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 9300, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host, "unset flags must not shadow the environment")
	assert.Equal(t, []string{"https://x.example", "https://y.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.TrustProxy)
}

func TestLoadEnvFiles(t *testing.T) {
	const key = "INDUSIGN_TEST_DOTENV_VALUE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-env\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte(key+"=from-local\n"), 0o600))
	t.Chdir(dir)

	loadEnvFiles()
	assert.Equal(t, "from-local", os.Getenv(key))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{name: "wildcard", raw: "*", want: []string{"*"}},
		{name: "comma separated", raw: "https://a.example, https://b.example,", want: []string{"https://a.example", "https://b.example"}},
		{name: "string slice", raw: []string{"https://a.example", "https://b.example"}, want: []string{"https://a.example", "https://b.example"}},
		{name: "yaml sequence", raw: []any{"https://a.example"}, want: []string{"https://a.example"}},
		{name: "empty", raw: "", want: []string{}},
		{name: "unsupported", raw: 42, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.raw))
		})
	}
}

func TestParsePort(t *testing.T) {
	port, err := parsePort(" 8000 ")
	require.NoError(t, err)
	assert.Equal(t, 8000, port)

	_, err = parsePort("eighty")
	assert.True(t, errors.IsConfigError(err))
}
