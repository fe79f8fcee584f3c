/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PivotLLM/yuque-mcp/global"
)

// isolate clears every environment variable Load reads and points HOME at
// an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		global.ConfigEnvVar, global.EnvPersonalToken, global.EnvGroupToken,
		global.EnvToken, global.EnvBaseURL, global.EnvPort,
	} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c := New(WithToken("flag-token"))
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ConfigPath() != "" {
		t.Errorf("no file should have been read, got %s", c.ConfigPath())
	}
	if c.Token() != "flag-token" || c.TokenSource() != "--token" {
		t.Errorf("token = %q from %q", c.Token(), c.TokenSource())
	}
	if c.BaseURL() != global.DefaultBaseURL {
		t.Errorf("base url = %s", c.BaseURL())
	}
	if c.Transport() != global.TransportStdio {
		t.Errorf("transport = %s", c.Transport())
	}
	if c.Port() != global.DefaultHTTPPort || c.HTTPAddr() != ":3000" || c.HTTPEndpoint() != "/mcp" {
		t.Errorf("http = %d %s %s", c.Port(), c.HTTPAddr(), c.HTTPEndpoint())
	}
	if c.RequestTimeout() != 30*time.Second {
		t.Errorf("timeout = %s", c.RequestTimeout())
	}
	if c.LogLevel() != global.LogLevelInfo || c.LogFile() != "" {
		t.Errorf("logging = %q %q", c.LogLevel(), c.LogFile())
	}
}

func TestLoadMissingToken(t *testing.T) {
	isolate(t)

	err := New().Load()
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken, got %v", err)
	}
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		flag       string
		wantToken  string
		wantSource string
	}{
		{
			name:       "personal wins",
			env:        map[string]string{global.EnvPersonalToken: "p", global.EnvGroupToken: "g", global.EnvToken: "t"},
			flag:       "f",
			wantToken:  "p",
			wantSource: global.EnvPersonalToken,
		},
		{
			name:       "group before generic",
			env:        map[string]string{global.EnvGroupToken: "g", global.EnvToken: "t"},
			wantToken:  "g",
			wantSource: global.EnvGroupToken,
		},
		{
			name:       "env before flag",
			env:        map[string]string{global.EnvToken: "t"},
			flag:       "f",
			wantToken:  "t",
			wantSource: global.EnvToken,
		},
		{
			name:       "flag alone",
			flag:       "f",
			wantToken:  "f",
			wantSource: "--token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			c := New(WithToken(tt.flag))
			if err := c.Load(); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if c.Token() != tt.wantToken || c.TokenSource() != tt.wantSource {
				t.Errorf("token = %q from %q, want %q from %q", c.Token(), c.TokenSource(), tt.wantToken, tt.wantSource)
			}
		})
	}
}

func TestLoadJSONFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.json", `{
  "version": 1,
  "token": "file-token",
  "base_url": "https://yuque.example.com/api/v2/",
  "transport": "http",
  "http": {"host": "127.0.0.1", "port": 8080, "endpoint": "/rpc"},
  "request_timeout": 10,
  "logging": {"file": "/tmp/yuque.log", "level": "debug"},
  "mark_non_destructive": true
}`)

	c := New(WithConfigPath(path))
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ConfigPath() != path {
		t.Errorf("config path = %s", c.ConfigPath())
	}
	if c.Token() != "file-token" || c.TokenSource() != "config file" {
		t.Errorf("token = %q from %q", c.Token(), c.TokenSource())
	}
	if c.BaseURL() != "https://yuque.example.com/api/v2" {
		t.Errorf("base url = %s", c.BaseURL())
	}
	if c.Transport() != global.TransportHTTP || c.HTTPAddr() != "127.0.0.1:8080" || c.HTTPEndpoint() != "/rpc" {
		t.Errorf("http = %s %s %s", c.Transport(), c.HTTPAddr(), c.HTTPEndpoint())
	}
	if c.RequestTimeout() != 10*time.Second {
		t.Errorf("timeout = %s", c.RequestTimeout())
	}
	if c.LogLevel() != global.LogLevelDebug || c.LogFile() != "/tmp/yuque.log" {
		t.Errorf("logging = %q %q", c.LogLevel(), c.LogFile())
	}
	if !c.MarkNonDestructive() {
		t.Error("mark_non_destructive not read")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.yaml", `
version: 1
token: yaml-token
transport: http
http:
  port: 9090
logging:
  level: warn
`)

	c := New(WithConfigPath(path))
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Token() != "yaml-token" || c.Port() != 9090 || c.LogLevel() != global.LogLevelWarn {
		t.Errorf("yaml not applied: %q %d %q", c.Token(), c.Port(), c.LogLevel())
	}
	if c.HTTPEndpoint() != global.DefaultHTTPEndpoint {
		t.Errorf("endpoint default not applied: %s", c.HTTPEndpoint())
	}
}

func TestUnknownFieldsAreTolerated(t *testing.T) {
	isolate(t)
	for name, content := range map[string]string{
		"config.json": `{"token": "x", "colour": "blue"}`,
		"config.yml":  "token: x\ncolour: blue\n",
	} {
		c := New(WithConfigPath(writeFile(t, name, content)))
		if err := c.Load(); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if c.Token() != "x" {
			t.Errorf("%s: token = %q", name, c.Token())
		}
	}
}

func TestConfigPathFromEnvironment(t *testing.T) {
	isolate(t)
	path := writeFile(t, "env.json", `{"token": "env-file"}`)
	t.Setenv(global.ConfigEnvVar, path)

	c := New()
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ConfigPath() != path || c.Token() != "env-file" {
		t.Errorf("path=%s token=%s", c.ConfigPath(), c.Token())
	}
}

func TestExplicitMissingFile(t *testing.T) {
	isolate(t)
	err := New(WithConfigPath(filepath.Join(t.TempDir(), "nope.json")), WithToken("x")).Load()
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestOverrides(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.json", `{"token": "x", "transport": "stdio", "http": {"port": 4000}}`)
	t.Setenv(global.EnvPort, "5000")
	t.Setenv(global.EnvBaseURL, "http://localhost:8081/api/v2")

	c := New(WithConfigPath(path))
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port() != 5000 {
		t.Errorf("PORT env not applied: %d", c.Port())
	}
	if c.BaseURL() != "http://localhost:8081/api/v2" {
		t.Errorf("base url env not applied: %s", c.BaseURL())
	}

	c = New(WithConfigPath(path), WithTransport("HTTP"), WithPort(6000))
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Transport() != global.TransportHTTP || c.Port() != 6000 {
		t.Errorf("flags not applied: %s %d", c.Transport(), c.Port())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *configData {
		return &configData{
			Version:        1,
			Token:          "t",
			BaseURL:        global.DefaultBaseURL,
			Transport:      global.TransportStdio,
			HTTP:           HTTP{Port: 3000, Endpoint: "/mcp"},
			RequestTimeout: 30,
			Logging:        Logging{Level: "INFO"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(d *configData)
		wantError bool
	}{
		{name: "valid", mutate: func(*configData) {}},
		{name: "version too new", mutate: func(d *configData) { d.Version = 2 }, wantError: true},
		{name: "no token", mutate: func(d *configData) { d.Token = "" }, wantError: true},
		{name: "relative base url", mutate: func(d *configData) { d.BaseURL = "/api/v2" }, wantError: true},
		{name: "bad scheme", mutate: func(d *configData) { d.BaseURL = "ftp://x/api" }, wantError: true},
		{name: "bad transport", mutate: func(d *configData) { d.Transport = "sse" }, wantError: true},
		{name: "port zero", mutate: func(d *configData) { d.HTTP.Port = 0 }, wantError: true},
		{name: "port too high", mutate: func(d *configData) { d.HTTP.Port = 70000 }, wantError: true},
		{name: "endpoint without slash", mutate: func(d *configData) { d.HTTP.Endpoint = "mcp" }, wantError: true},
		{name: "timeout too long", mutate: func(d *configData) { d.RequestTimeout = global.MaxRequestTimeout + 1 }, wantError: true},
		{name: "bad log level", mutate: func(d *configData) { d.Logging.Level = "LOUD" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			c := &Config{data: d}
			err := c.validate()
			if (err != nil) != tt.wantError {
				t.Errorf("validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
