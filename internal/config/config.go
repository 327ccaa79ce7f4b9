// Package config resolves the process configuration for the Linear MCP
// server: the API key, the GraphQL endpoint and logging switches.
//
// Values come from (highest precedence first) bound CLI flags, the
// process environment and an optional .env file in the working
// directory. A missing API key is a startup-time failure.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvAPIKey holds the Linear personal API key.
	EnvAPIKey = "LINEAR_API_KEY"
	// EnvAPIURL overrides the GraphQL endpoint.
	EnvAPIURL = "LINEAR_API_URL"
	// EnvDebug switches logging to debug level.
	EnvDebug = "LINEAR_MCP_DEBUG"
	// EnvLogFormat selects "text" or "json" log output.
	EnvLogFormat = "LINEAR_MCP_LOG_FORMAT"

	// DefaultEndpoint is Linear's public GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// APIKeyPrefix is how Linear personal API keys begin.
	APIKeyPrefix = "lin_api_"

	// APIKeySettingsURL is where users create or rotate keys.
	APIKeySettingsURL = "https://linear.app/settings/api"
)

// Viper keys. Flags are bound to the same names by the CLI.
const (
	KeyAPIKey    = "api_key"
	KeyAPIURL    = "api_url"
	KeyDebug     = "debug"
	KeyLogFormat = "log_format"
)

// Config is the resolved process configuration.
type Config struct {
	APIKey    string
	Endpoint  string
	Debug     bool
	LogFormat string
}

// ConfigurationError reports a missing or unusable required setting.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"%s is required. Set it as environment variable or in a .env file. Get your API key from: %s",
		e.Key, APIKeySettingsURL,
	)
}

// LoadDotEnv loads the given .env files (".env" when none are given)
// into the process environment. Existing variables are not overridden
// and a missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Bind registers defaults and environment bindings on v. It is safe to
// call more than once.
func Bind(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, DefaultEndpoint)
	v.SetDefault(KeyLogFormat, "text")
	_ = v.BindEnv(KeyAPIKey, EnvAPIKey)
	_ = v.BindEnv(KeyAPIURL, EnvAPIURL)
	_ = v.BindEnv(KeyDebug, EnvDebug)
	_ = v.BindEnv(KeyLogFormat, EnvLogFormat)
}

// Load resolves the configuration from v. The returned error is a
// *ConfigurationError when the API key is absent.
func Load(v *viper.Viper) (*Config, error) {
	Bind(v)

	cfg := &Config{
		APIKey:    strings.TrimSpace(v.GetString(KeyAPIKey)),
		Endpoint:  strings.TrimSpace(v.GetString(KeyAPIURL)),
		Debug:     v.GetBool(KeyDebug),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required setting is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigurationError{Key: EnvAPIKey}
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.LogFormat)
	}
	return nil
}

// KeyFormatWarning returns a human-readable warning when the API key
// does not look like a Linear personal key, or "" when it does. The key
// is never rejected on format alone.
func (c *Config) KeyFormatWarning() string {
	if strings.HasPrefix(c.APIKey, APIKeyPrefix) {
		return ""
	}
	prefix := c.APIKey
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("API key doesn't start with %q (current prefix: %s...)", APIKeyPrefix, prefix)
}

// MaskedKey returns the API key with its middle elided, safe for display.
func (c *Config) MaskedKey() string {
	return MaskKey(c.APIKey)
}

// MaskKey elides the middle of a secret, keeping 12 leading and 4
// trailing characters. Short values are fully masked.
func MaskKey(key string) string {
	if len(key) <= 16 {
		return "***"
	}
	return key[:12] + "..." + key[len(key)-4:]
}
