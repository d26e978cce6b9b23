// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/slackweb/lib/secret"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local experimentation.
	Development Environment = "development"
	// Staging is for a test workspace.
	Staging Environment = "staging"
	// Production is for a real workspace.
	Production Environment = "production"
)

// Transport names accepted by api.transport.
const (
	TransportHTTP  = "http"
	TransportResty = "resty"
)

// Config is the configuration for the slackweb command.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// API configures how the Web API is reached.
	API APIConfig `yaml:"api"`

	// Cassette configures recording and replay.
	Cassette CassetteConfig `yaml:"cassette"`

	// Telemetry configures OpenTelemetry output.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API       *APIConfig         `yaml:"api,omitempty"`
	Cassette  *CassetteConfig    `yaml:"cassette,omitempty"`
	Telemetry *TelemetryOverride `yaml:"telemetry,omitempty"`
}

// APIConfig configures the Web API client.
type APIConfig struct {
	// BaseURL is the API root.
	// Default: https://slack.com/api
	BaseURL string `yaml:"base_url"`

	// Transport is "http" (net/http) or "resty".
	// Default: http
	Transport string `yaml:"transport"`

	// Timeout bounds each round trip, as a Go duration.
	// Default: 30s
	Timeout string `yaml:"timeout"`

	// TokenFile is a file holding the default token. Takes precedence
	// over TokenEnv.
	TokenFile string `yaml:"token_file"`

	// TokenEnv names the environment variable holding the default
	// token.
	// Default: SLACK_TOKEN
	TokenEnv string `yaml:"token_env"`
}

// CassetteConfig configures recording.
type CassetteConfig struct {
	// Directory resolves relative --record and --replay paths.
	Directory string `yaml:"directory"`

	// Compression is "none", "lz4", or "zstd".
	// Default: zstd
	Compression string `yaml:"compression"`
}

// TelemetryConfig configures tracing.
type TelemetryConfig struct {
	// Enabled turns on span output. The --trace flag also enables it.
	Enabled bool `yaml:"enabled"`

	// ServiceName is recorded on spans.
	// Default: slackweb
	ServiceName string `yaml:"service_name"`
}

// TelemetryOverride overrides TelemetryConfig. Enabled is a pointer so
// an override can turn telemetry off.
type TelemetryOverride struct {
	Enabled     *bool  `yaml:"enabled,omitempty"`
	ServiceName string `yaml:"service_name,omitempty"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
// They exist to give every field a usable value, not as a fallback:
// the config file is required.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL:   "https://slack.com/api",
			Transport: TransportHTTP,
			Timeout:   "30s",
			TokenEnv:  "SLACK_TOKEN",
		},
		Cassette: CassetteConfig{
			Directory:   filepath.Join(homeDir, ".cache", "slackweb", "cassettes"),
			Compression: "zstd",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "slackweb",
		},
	}
}

// Load loads configuration from the SLACKWEB_CONFIG environment
// variable.
//
// There are no fallbacks: if SLACKWEB_CONFIG is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("SLACKWEB_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("SLACKWEB_CONFIG environment variable not set; " +
			"set it to the path of your slackweb.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables
// do not override config values; they are only substituted where the
// file writes ${VAR}.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current
// config. Unknown keys are rejected so typos surface.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.Transport != "" {
			c.API.Transport = overrides.API.Transport
		}
		if overrides.API.Timeout != "" {
			c.API.Timeout = overrides.API.Timeout
		}
		if overrides.API.TokenFile != "" {
			c.API.TokenFile = overrides.API.TokenFile
		}
		if overrides.API.TokenEnv != "" {
			c.API.TokenEnv = overrides.API.TokenEnv
		}
	}

	if overrides.Cassette != nil {
		if overrides.Cassette.Directory != "" {
			c.Cassette.Directory = overrides.Cassette.Directory
		}
		if overrides.Cassette.Compression != "" {
			c.Cassette.Compression = overrides.Cassette.Compression
		}
	}

	if overrides.Telemetry != nil {
		if overrides.Telemetry.Enabled != nil {
			c.Telemetry.Enabled = *overrides.Telemetry.Enabled
		}
		if overrides.Telemetry.ServiceName != "" {
			c.Telemetry.ServiceName = overrides.Telemetry.ServiceName
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// and URL fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.API.BaseURL = expandVars(c.API.BaseURL, vars)
	c.API.TokenFile = expandVars(c.API.TokenFile, vars)
	c.Cassette.Directory = expandVars(c.Cassette.Directory, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	} else if parsed, err := url.Parse(c.API.BaseURL); err != nil || (parsed.Scheme != "https" && parsed.Scheme != "http") || parsed.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL))
	}

	transports := []string{TransportHTTP, TransportResty}
	if !slices.Contains(transports, c.API.Transport) {
		errs = append(errs, fmt.Errorf("api.transport must be one of: %v", transports))
	}

	if _, err := c.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}

	if c.API.TokenFile == "" && c.API.TokenEnv == "" {
		errs = append(errs, errors.New("one of api.token_file or api.token_env is required"))
	}

	compressions := []string{"none", "lz4", "zstd"}
	if !slices.Contains(compressions, c.Cassette.Compression) {
		errs = append(errs, fmt.Errorf("cassette.compression must be one of: %v", compressions))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// TimeoutDuration parses api.timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	return timeout, nil
}

// ReadToken loads the default token from api.token_file, else from the
// variable named by api.token_env. It returns (nil, nil) when the
// configured environment variable is unset, so token-free methods
// still work. Surrounding whitespace is trimmed.
func (c *Config) ReadToken() (*secret.Buffer, error) {
	var raw []byte
	switch {
	case c.API.TokenFile != "":
		data, err := os.ReadFile(c.API.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("reading token file: %w", err)
		}
		raw = data
	case c.API.TokenEnv != "":
		value, ok := os.LookupEnv(c.API.TokenEnv)
		if !ok {
			return nil, nil
		}
		raw = []byte(value)
	default:
		return nil, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		secret.Zero(raw)
		return nil, errors.New("token is empty")
	}
	buffer, err := secret.NewFromBytes(trimmed)
	secret.Zero(raw)
	if err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}
	return buffer, nil
}

// CassettePath resolves a --record or --replay argument against
// cassette.directory. Absolute paths and paths starting with ./ are
// used as given.
func (c *Config) CassettePath(name string) string {
	if filepath.IsAbs(name) || c.Cassette.Directory == "" || name != filepath.Base(name) {
		return name
	}
	return filepath.Join(c.Cassette.Directory, name)
}

// EnsureCassetteDirectory creates cassette.directory if needed.
func (c *Config) EnsureCassetteDirectory() error {
	if c.Cassette.Directory == "" {
		return nil
	}
	if err := os.MkdirAll(c.Cassette.Directory, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Cassette.Directory, err)
	}
	return nil
}
