package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/indusign/indusign/internal/server"
	"github.com/indusign/indusign/pkg/constants"
	"github.com/indusign/indusign/pkg/errors"
)

// EnvPrefix namespaces the environment variables read by the server.
const EnvPrefix = "INDUSIGN"

// ConfigName is the config file looked up in the working and home directories.
const ConfigName = ".indusign"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Logging configuration. LogLevel is the --log-level flag; EnvLogLevel
	// comes from LOG_LEVEL or the config file and ranks below -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// serveFlagKeys maps serve flags to their configuration keys.
var serveFlagKeys = map[string]string{
	"host":             "host",
	"port":             "port",
	"cors-origins":     "cors_origins",
	"cors-credentials": "cors_credentials",
	"rate-limit":       "rate_limit",
	"trust-proxy":      "trust_proxy",
	"metrics":          "metrics_enabled",
	"docs":             "docs_enabled",
	"read-timeout":     "read_timeout",
	"write-timeout":    "write_timeout",
	"idle-timeout":     "idle_timeout",
	"shutdown-timeout": "shutdown_timeout",
}

// newViper creates a configuration registry with defaults and environment
// bindings. Keys resolve as INDUSIGN_<KEY>; host and port also accept the
// conventional HTTP_HOST and HTTP_PORT.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := server.DefaultConfig()
	v.SetDefault("host", defaults.Host)
	v.SetDefault("port", defaults.Port)
	v.SetDefault("cors_origins", strings.Join(defaults.CORSOrigins, ","))
	v.SetDefault("cors_credentials", defaults.CORSCredentials)
	v.SetDefault("rate_limit", defaults.RateLimit)
	v.SetDefault("trust_proxy", defaults.TrustProxy)
	v.SetDefault("metrics_enabled", defaults.MetricsEnabled)
	v.SetDefault("docs_enabled", defaults.DocsEnabled)
	v.SetDefault("read_timeout", defaults.ReadTimeout)
	v.SetDefault("write_timeout", defaults.WriteTimeout)
	v.SetDefault("idle_timeout", defaults.IdleTimeout)
	v.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	// Binding with explicit names cannot fail
	_ = v.BindEnv("host", EnvPrefix+"_HOST", "HTTP_HOST")
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "HTTP_PORT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LOG_FORMAT")
	_ = v.BindEnv("log_output", "LOG_OUTPUT")

	return v
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or .indusign.yaml in . or $HOME)
// 5. Defaults
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	return &Config{
		ConfigFile:  v.ConfigFileUsed(),
		EnvLogLevel: v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	c.LogLevel = logLevel
}

// readConfigFile reads an explicit config file, or searches the default
// locations. Only a missing file in the default locations is tolerated.
func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "cannot read config file", err)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files. Variables
// already set in the process win, and .env.local wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// bindServeFlags binds the serve flags present on cmd so that flags the
// user set take precedence over every other source.
func bindServeFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range serveFlagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// serverConfig resolves the server configuration from v and validates it.
func serverConfig(v *viper.Viper) (server.Config, error) {
	port, err := parsePort(v.GetString("port"))
	if err != nil {
		return server.Config{}, err
	}

	cfg := server.Config{
		Host:            strings.TrimSpace(v.GetString("host")),
		Port:            port,
		CORSOrigins:     splitList(v.Get("cors_origins")),
		CORSCredentials: v.GetBool("cors_credentials"),
		RateLimit:       v.GetInt("rate_limit"),
		TrustProxy:      v.GetBool("trust_proxy"),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		IdleTimeout:     v.GetDuration("idle_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		MetricsEnabled:  v.GetBool("metrics_enabled"),
		DocsEnabled:     v.GetBool("docs_enabled"),
	}

	if err := cfg.Validate(); err != nil {
		return server.Config{}, err
	}
	return cfg, nil
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(portStr))
	if err != nil {
		return 0, errors.NewConfigError("server", fmt.Sprintf("invalid port number: %q", portStr), err)
	}
	if port < constants.MinPort || port > constants.MaxPort {
		return 0, errors.NewConfigError("server", fmt.Sprintf("port out of range: %d", port), nil)
	}
	return port, nil
}

// splitList accepts a comma-separated string (environment, flags) or a YAML
// sequence (config file) and returns the trimmed, non-empty entries.
func splitList(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, ",")
	case []string:
		for _, s := range v {
			parts = append(parts, strings.Split(s, ",")...)
		}
	case []any:
		for _, s := range v {
			parts = append(parts, fmt.Sprint(s))
		}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
