package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// --- Load ---

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_abcdefghijklmnop")
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogFormat, "JSON")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "lin_api_abcdefghijklmnop" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, DefaultEndpoint)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoad_EndpointOverride(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_key")
	t.Setenv(EnvAPIURL, "http://127.0.0.1:9999/graphql")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "http://127.0.0.1:9999/graphql" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestLoad_MissingKeyIsConfigurationError(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := Load(viper.New())
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %T, want *ConfigurationError", err)
	}
	if cfgErr.Key != EnvAPIKey {
		t.Errorf("Key = %q, want %q", cfgErr.Key, EnvAPIKey)
	}
	if !strings.Contains(err.Error(), APIKeySettingsURL) {
		t.Errorf("error should point at %s: %v", APIKeySettingsURL, err)
	}
}

func TestLoad_ExplicitValueWinsOverEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "lin_api_from_env")

	v := viper.New()
	v.Set(KeyAPIKey, "lin_api_from_flag")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "lin_api_from_flag" {
		t.Errorf("APIKey = %q, want flag value", cfg.APIKey)
	}
}

func TestValidate_RejectsUnknownLogFormat(t *testing.T) {
	cfg := &Config{APIKey: "lin_api_x", LogFormat: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}

// --- LoadDotEnv ---

func TestLoadDotEnv_SetsMissingVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LINEAR_API_KEY=lin_api_dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIKey, "")
	// t.Setenv restores the original value; unset so godotenv can fill it.
	if err := os.Unsetenv(EnvAPIKey); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(EnvAPIKey); got != "lin_api_dotenv" {
		t.Errorf("%s = %q, want lin_api_dotenv", EnvAPIKey, got)
	}
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LINEAR_API_KEY=lin_api_dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIKey, "lin_api_process")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(EnvAPIKey); got != "lin_api_process" {
		t.Errorf("%s = %q, want lin_api_process", EnvAPIKey, got)
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("LoadDotEnv() error = %v, want nil", err)
	}
}

// --- Key helpers ---

func TestKeyFormatWarning(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantWarn bool
	}{
		{"linear key", "lin_api_1234567890", false},
		{"oauth token", "lin_oauth_123456", true},
		{"random", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{APIKey: tt.key}
			got := cfg.KeyFormatWarning()
			if (got != "") != tt.wantWarn {
				t.Errorf("KeyFormatWarning(%q) = %q, wantWarn %v", tt.key, got, tt.wantWarn)
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"lin_api_abcdefghijklmnopqrstuvwxyz", "lin_api_abcd...wxyz"},
		{"short", "***"},
		{"exactly16chars!!", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		got := MaskKey(tt.input)
		if got != tt.want {
			t.Errorf("MaskKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
