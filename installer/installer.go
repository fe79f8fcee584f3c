/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package installer registers the Yuque MCP server in the config files of
// MCP clients.
package installer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/logging"
)

// EntryName is the key of the server entry written into client configs.
const EntryName = "yuque"

// ErrUnknownClient is returned for an unsupported client identifier.
var ErrUnknownClient = errors.New("unknown client")

// Entry is the server launch description stored in a client config.
type Entry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// Result reports what Install did.
type Result struct {
	Client     Client
	Path       string
	BackupPath string // set when an unreadable config was backed up
}

// Installer writes client config files.
type Installer struct {
	env     Env
	command string
	args    []string
	logger  *logging.Logger
}

// Option configures an Installer.
type Option func(*Installer)

// WithEnv sets the platform description used to locate config files.
func WithEnv(env Env) Option {
	return func(i *Installer) {
		i.env = env
	}
}

// WithCommand sets the command clients run to start the server.
func WithCommand(command string, args ...string) Option {
	return func(i *Installer) {
		i.command = command
		i.args = args
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) Option {
	return func(i *Installer) {
		i.logger = logger
	}
}

// New creates an Installer for the current platform unless WithEnv is given.
func New(opts ...Option) (*Installer, error) {
	i := &Installer{
		command: "npx",
		args:    []string{"-y", global.ProgramName},
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.env.Home == "" {
		env, err := CurrentEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to determine environment: %w", err)
		}
		i.env = env
	}
	return i, nil
}

func (i *Installer) entry(token string) Entry {
	return Entry{
		Command: i.command,
		Args:    append([]string(nil), i.args...),
		Env:     map[string]string{global.EnvPersonalToken: token},
	}
}

// Install adds or replaces the server entry in the client's config file,
// keeping every other entry. An existing file that is not valid JSON is
// copied to <file>.backup and replaced.
func (i *Installer) Install(token, clientID string) (*Result, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token cannot be empty")
	}
	client, ok := LookupClient(clientID)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownClient, clientID, strings.Join(ClientIDs(), ", "))
	}

	result := &Result{Client: client, Path: client.ConfigPath(i.env)}
	err := withLock(result.Path, func() error {
		cfg, backup, err := i.readConfig(result.Path)
		if err != nil {
			return err
		}
		result.BackupPath = backup

		servers, ok := cfg[client.ConfigKey].(map[string]any)
		if !ok {
			servers = map[string]any{}
		}
		servers[EntryName] = i.entry(token)
		cfg[client.ConfigKey] = servers

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		data = append(data, '\n')

		// the file holds a credential
		perm := os.FileMode(0600)
		if info, err := os.Stat(result.Path); err == nil {
			perm = info.Mode().Perm()
		}
		return global.AtomicWrite(result.Path, data, perm)
	})
	if err != nil {
		return nil, err
	}

	i.logger.Infof("Configured %s in %s", client.Name, result.Path)
	return result, nil
}

// readConfig loads the existing config. A missing file yields an empty
// config; an invalid one is backed up first.
func (i *Installer) readConfig(path string) (map[string]any, string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err == nil && cfg != nil {
		return cfg, "", nil
	}

	backup := path + ".backup"
	if err := global.CopyFile(path, backup); err != nil {
		return nil, "", fmt.Errorf("failed to back up invalid config: %w", err)
	}
	i.logger.Warnf("Existing config %s was invalid JSON, backed up to %s", path, backup)
	return map[string]any{}, backup, nil
}

// withLock executes a function while holding a lock next to path
func withLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// Setup asks for a token and a client on in, then installs. Prompts and
// results are written to out.
func (i *Installer) Setup(in io.Reader, out io.Writer) (*Result, error) {
	scanner := bufio.NewScanner(in)
	ask := func(question string) string {
		_, _ = fmt.Fprint(out, question)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	_, _ = fmt.Fprintf(out, "\n%s - Quick Setup\n\n", global.ProgramName)
	_, _ = fmt.Fprintln(out, "Step 1: Enter your Yuque API token")
	_, _ = fmt.Fprintln(out, "   (Get one at https://www.yuque.com/settings/tokens)")
	_, _ = fmt.Fprintln(out)
	token := ask("   Token: ")
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	all := Clients()
	_, _ = fmt.Fprintln(out, "\nStep 2: Select your MCP client")
	_, _ = fmt.Fprintln(out)
	for n, c := range all {
		_, _ = fmt.Fprintf(out, "   %d) %s (%s)\n", n+1, c.Name, c.ID)
	}
	_, _ = fmt.Fprintln(out)

	choice := ask(fmt.Sprintf("   Enter number (1-%d): ", len(all)))
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(all) {
		return nil, fmt.Errorf("invalid selection: %q", choice)
	}

	result, err := i.Install(token, all[idx-1].ID)
	if err != nil {
		return nil, err
	}
	result.Report(out)
	return result, nil
}

// Report prints a short success message.
func (r *Result) Report(out io.Writer) {
	if r.BackupPath != "" {
		_, _ = fmt.Fprintf(out, "\nExisting config was invalid JSON. Backed up to: %s\n", r.BackupPath)
	}
	_, _ = fmt.Fprintf(out, "\nSuccessfully configured %s for %s!\n", global.ProgramName, r.Client.Name)
	_, _ = fmt.Fprintf(out, "   Config file: %s\n", r.Path)
	_, _ = fmt.Fprintf(out, "\n   Restart %s to activate the MCP server.\n\n", r.Client.Name)
}
