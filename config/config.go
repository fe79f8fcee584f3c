/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/logging"
)

// ErrNoToken is returned by Load when no credential is configured anywhere.
var ErrNoToken = errors.New("no Yuque token configured")

// Config provides access to application configuration
type Config struct {
	configPath  string      // resolved path to config file, empty if none was read
	explicit    bool        // config path came from an option or the environment
	data        *configData // parsed configuration
	tokenSource string      // where the token came from

	// command-line overrides
	flagToken     string
	flagTransport string
	flagPort      int
}

// configData holds the parsed configuration (internal)
type configData struct {
	Version            int     `json:"version" yaml:"version"`
	Token              string  `json:"token,omitempty" yaml:"token,omitempty"`
	BaseURL            string  `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Transport          string  `json:"transport,omitempty" yaml:"transport,omitempty"`
	HTTP               HTTP    `json:"http,omitempty" yaml:"http,omitempty"`
	RequestTimeout     int     `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"` // seconds
	Logging            Logging `json:"logging" yaml:"logging"`
	MarkNonDestructive bool    `json:"mark_non_destructive,omitempty" yaml:"mark_non_destructive,omitempty"`
}

// HTTP configures the streamable HTTP transport
type HTTP struct {
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// Logging represents logging configuration
type Logging struct {
	File  string `json:"file" yaml:"file"`
	Level string `json:"level" yaml:"level"`
}

// Option is a functional option for configuring Config
type Option func(*Config)

// New creates a new Config instance with optional configuration
func New(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithConfigPath sets an explicit config file path
func WithConfigPath(path string) Option {
	return func(c *Config) {
		c.configPath = path
	}
}

// WithToken sets the token given on the command line. Token environment
// variables take precedence over it.
func WithToken(token string) Option {
	return func(c *Config) {
		c.flagToken = token
	}
}

// WithTransport overrides the configured transport
func WithTransport(transport string) Option {
	return func(c *Config) {
		c.flagTransport = transport
	}
}

// WithPort overrides the configured HTTP port
func WithPort(port int) Option {
	return func(c *Config) {
		c.flagPort = port
	}
}

// Load reads the config file if there is one, applies environment and
// command-line overrides, and validates the result. A missing default config
// file is not an error; a missing explicit one is.
func (c *Config) Load() error {
	configPath, err := c.resolveConfigPath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	cfg := &configData{}
	if global.FileExists(configPath) {
		if err := parseFile(configPath, cfg); err != nil {
			return err
		}
		c.configPath = configPath
	} else if c.explicit {
		return fmt.Errorf("config file not found: %s", configPath)
	} else {
		c.configPath = ""
	}
	c.data = cfg

	c.applyDefaults()
	c.applyOverrides()

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// parseFile decodes a JSON or YAML file, chosen by extension. Unknown fields
// produce a warning rather than an error.
func parseFile(path string, cfg *configData) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			if !strings.Contains(err.Error(), "not found in type") {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: config file %s: %v\n", path, err)
			*cfg = configData{}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			if !strings.Contains(err.Error(), "unknown field") {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: config file %s: %v\n", path, err)
			*cfg = configData{}
			if err := json.Unmarshal(data, cfg); err != nil {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}
	return nil
}

// resolveConfigPath determines the config file path using precedence rules
func (c *Config) resolveConfigPath() (string, error) {
	// 1. Explicit path (from WithConfigPath option)
	if c.configPath != "" {
		c.explicit = true
		return global.ResolveAbsolute(c.configPath)
	}

	// 2. Environment variable
	if envPath := os.Getenv(global.ConfigEnvVar); envPath != "" {
		c.explicit = true
		return global.ResolveAbsolute(envPath)
	}

	// 3. Default: base_dir/config.json
	return filepath.Join(global.ExpandHomePath(global.DefaultBaseDir), global.DefaultConfigFileName), nil
}

func (c *Config) applyDefaults() {
	d := c.data
	if d.BaseURL == "" {
		d.BaseURL = global.DefaultBaseURL
	}
	if d.Transport == "" {
		d.Transport = global.TransportStdio
	}
	if d.HTTP.Port == 0 {
		d.HTTP.Port = global.DefaultHTTPPort
	}
	if d.HTTP.Endpoint == "" {
		d.HTTP.Endpoint = global.DefaultHTTPEndpoint
	}
	if d.RequestTimeout == 0 {
		d.RequestTimeout = global.DefaultRequestTimeout
	}
	if d.Logging.Level == "" {
		d.Logging.Level = global.LogLevelInfo
	}
	d.Logging.Level = strings.ToUpper(d.Logging.Level)
	if d.Logging.File != "" {
		d.Logging.File = global.ExpandHomePath(d.Logging.File)
	}
}

// applyOverrides layers environment variables and flags over the file.
// Token: YUQUE_PERSONAL_TOKEN, YUQUE_GROUP_TOKEN, YUQUE_TOKEN, --token, file.
// Other settings: flag, environment, file.
func (c *Config) applyOverrides() {
	d := c.data

	c.tokenSource = ""
	for _, name := range []string{global.EnvPersonalToken, global.EnvGroupToken, global.EnvToken} {
		if v := os.Getenv(name); v != "" {
			d.Token, c.tokenSource = v, name
			break
		}
	}
	if c.tokenSource == "" {
		switch {
		case c.flagToken != "":
			d.Token, c.tokenSource = c.flagToken, "--token"
		case d.Token != "":
			c.tokenSource = "config file"
		}
	}

	if v := os.Getenv(global.EnvBaseURL); v != "" {
		d.BaseURL = v
	}
	d.BaseURL = strings.TrimRight(d.BaseURL, "/")

	if v := os.Getenv(global.EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			d.HTTP.Port = port
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring invalid %s value %q\n", global.EnvPort, v)
		}
	}

	if c.flagTransport != "" {
		d.Transport = c.flagTransport
	}
	d.Transport = strings.ToLower(d.Transport)
	if c.flagPort != 0 {
		d.HTTP.Port = c.flagPort
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	d := c.data

	if d.Version > 1 {
		return fmt.Errorf("config version %d is newer than supported (expected 1)", d.Version)
	}

	if d.Token == "" {
		return fmt.Errorf("%w: set %s, %s or %s, or pass --token", ErrNoToken,
			global.EnvPersonalToken, global.EnvGroupToken, global.EnvToken)
	}

	u, err := url.Parse(d.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL: %q", d.BaseURL)
	}

	switch d.Transport {
	case global.TransportStdio, global.TransportHTTP:
	default:
		return fmt.Errorf("invalid transport '%s' (expected '%s' or '%s')", d.Transport, global.TransportStdio, global.TransportHTTP)
	}

	if d.HTTP.Port < 1 || d.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d is out of range", d.HTTP.Port)
	}
	if !strings.HasPrefix(d.HTTP.Endpoint, "/") {
		return fmt.Errorf("http endpoint must start with '/': %q", d.HTTP.Endpoint)
	}

	if d.RequestTimeout < 1 || d.RequestTimeout > global.MaxRequestTimeout {
		return fmt.Errorf("request_timeout must be between 1 and %d seconds", global.MaxRequestTimeout)
	}

	if !logging.ValidLevel(d.Logging.Level) {
		return fmt.Errorf("invalid log level '%s'", d.Logging.Level)
	}

	return nil
}

// ConfigPath returns the config file that was read, or empty if none
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Version returns the config file version
func (c *Config) Version() int {
	return c.data.Version
}

// Token returns the Yuque API token
func (c *Config) Token() string {
	return c.data.Token
}

// TokenSource names where the token came from
func (c *Config) TokenSource() string {
	return c.tokenSource
}

// BaseURL returns the Yuque API root
func (c *Config) BaseURL() string {
	return c.data.BaseURL
}

// Transport returns the MCP transport ("stdio" or "http")
func (c *Config) Transport() string {
	return c.data.Transport
}

// Port returns the HTTP port
func (c *Config) Port() int {
	return c.data.HTTP.Port
}

// HTTPAddr returns the listen address for the HTTP transport
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.data.HTTP.Host, strconv.Itoa(c.data.HTTP.Port))
}

// HTTPEndpoint returns the MCP endpoint path
func (c *Config) HTTPEndpoint() string {
	return c.data.HTTP.Endpoint
}

// RequestTimeout returns the per-request timeout for API calls
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.data.RequestTimeout) * time.Second
}

// LogFile returns the configured log file path, empty for stderr
func (c *Config) LogFile() string {
	return c.data.Logging.File
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() string {
	return c.data.Logging.Level
}

// MarkNonDestructive reports whether destructive tools should be advertised
// without the destructive hint
func (c *Config) MarkNonDestructive() bool {
	return c.data.MarkNonDestructive
}
