/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package installer

import (
	"os"
	"path/filepath"
	"runtime"
)

// Env holds the platform facts used to locate client config files.
type Env struct {
	GOOS          string
	Home          string
	Cwd           string
	AppData       string // Windows %APPDATA%
	XDGConfigHome string
}

// CurrentEnv describes the running process.
func CurrentEnv() (Env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Env{}, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Env{}, err
	}
	return Env{
		GOOS:          runtime.GOOS,
		Home:          home,
		Cwd:           cwd,
		AppData:       os.Getenv("APPDATA"),
		XDGConfigHome: os.Getenv("XDG_CONFIG_HOME"),
	}, nil
}

func (e Env) appData() string {
	if e.AppData != "" {
		return e.AppData
	}
	return filepath.Join(e.Home, "AppData", "Roaming")
}

func (e Env) configHome() string {
	if e.XDGConfigHome != "" {
		return e.XDGConfigHome
	}
	return filepath.Join(e.Home, ".config")
}

// appSupport returns the per-user application data directory on each platform.
func (e Env) appSupport() string {
	switch e.GOOS {
	case "darwin":
		return filepath.Join(e.Home, "Library", "Application Support")
	case "windows":
		return e.appData()
	default:
		return e.configHome()
	}
}

// Config keys used by MCP clients.
const (
	KeyMCPServers = "mcpServers"
	KeyServers    = "servers"
)

// Client is an editor or assistant that reads an MCP server list from a
// JSON file.
type Client struct {
	ID        string
	Name      string
	ConfigKey string
	path      func(Env) string
}

// ConfigPath returns where the client keeps its MCP config.
func (c Client) ConfigPath(env Env) string {
	return c.path(env)
}

var clients = []Client{
	{
		ID:        "claude-desktop",
		Name:      "Claude Desktop",
		ConfigKey: KeyMCPServers,
		path: func(e Env) string {
			return filepath.Join(e.appSupport(), "Claude", "claude_desktop_config.json")
		},
	},
	{
		ID:        "vscode",
		Name:      "VS Code",
		ConfigKey: KeyServers,
		path: func(e Env) string {
			return filepath.Join(e.Cwd, ".vscode", "mcp.json")
		},
	},
	{
		ID:        "cursor",
		Name:      "Cursor",
		ConfigKey: KeyMCPServers,
		path: func(e Env) string {
			return filepath.Join(e.Home, ".cursor", "mcp.json")
		},
	},
	{
		ID:        "windsurf",
		Name:      "Windsurf",
		ConfigKey: KeyMCPServers,
		path: func(e Env) string {
			return filepath.Join(e.Home, ".windsurf", "mcp.json")
		},
	},
	{
		ID:        "cline",
		Name:      "Cline",
		ConfigKey: KeyMCPServers,
		path: func(e Env) string {
			return filepath.Join(e.appSupport(), "Code", "User", "globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json")
		},
	},
	{
		ID:        "trae",
		Name:      "Trae",
		ConfigKey: KeyMCPServers,
		path: func(e Env) string {
			return filepath.Join(e.appSupport(), "Trae", "User", "globalStorage", "trae-ai.trae-core", "settings", "cline_mcp_settings.json")
		},
	},
}

// Clients returns the supported clients in display order.
func Clients() []Client {
	out := make([]Client, len(clients))
	copy(out, clients)
	return out
}

// ClientIDs returns the supported client identifiers.
func ClientIDs() []string {
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return ids
}

// LookupClient finds a client by identifier.
func LookupClient(id string) (Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}
