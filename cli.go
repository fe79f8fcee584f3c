/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PivotLLM/yuque-mcp/config"
	"github.com/PivotLLM/yuque-mcp/dispatch"
	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/installer"
	"github.com/PivotLLM/yuque-mcp/logging"
	"github.com/PivotLLM/yuque-mcp/server"
	"github.com/PivotLLM/yuque-mcp/yuque"
)

const rootLong = `yuque-mcp is a Model Context Protocol (MCP) server for the Yuque
knowledge base. It exposes Yuque users, groups, repos, documents, tables of
contents, versions, search and statistics as MCP tools, plus prompts for
common workflows.

The API token is read from, in order: YUQUE_PERSONAL_TOKEN,
YUQUE_GROUP_TOKEN, YUQUE_TOKEN, --token, then the config file
(default: $YUQUE_MCP_CONFIG or ~/.yuque-mcp/config.json).`

const rootExample = `  # Serve over stdio
  yuque-mcp --token YOUR_TOKEN

  # Serve streamable HTTP on port 8080
  yuque-mcp --transport http --port 8080

  # Register the server in Cursor
  yuque-mcp install --client cursor --token YOUR_TOKEN`

type serveOptions struct {
	configPath string
	token      string
	transport  string
	port       int
}

// newRootCommand builds the command tree
func newRootCommand() *cobra.Command {
	var opts serveOptions

	root := &cobra.Command{
		Use:           global.ProgramName,
		Short:         "MCP server for the Yuque knowledge base",
		Long:          rootLong,
		Example:       rootExample,
		Version:       global.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s v{{.Version}}\n", global.ProgramName))

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to configuration file")
	flags.StringVar(&opts.token, "token", "", "Yuque API token")
	flags.StringVar(&opts.transport, "transport", "", "transport: stdio or http")
	flags.IntVar(&opts.port, "port", 0, fmt.Sprintf("HTTP port when --transport=http (default %d)", global.DefaultHTTPPort))

	root.AddCommand(newInstallCommand(), newSetupCommand(), newVersionCommand())
	return root
}

// serve loads configuration and runs the MCP server until shutdown
func serve(ctx context.Context, opts serveOptions) error {
	cfgOpts := []config.Option{
		config.WithToken(opts.token),
		config.WithTransport(opts.transport),
		config.WithPort(opts.port),
	}
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigPath(opts.configPath))
	}
	cfg := config.New(cfgOpts...)

	if err := cfg.Load(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := logging.New(cfg.LogFile())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func(logger *logging.Logger) {
		// Ensure logs are flushed before exit
		_ = logger.Sync()
		_ = logger.Close()
	}(logger)
	logger.SetLevel(cfg.LogLevel())

	logger.Infof("%s v%s starting", global.ProgramName, global.Version)
	if cfg.ConfigPath() != "" {
		logger.Infof("Using config file %s", cfg.ConfigPath())
	}
	logger.Infof("Token source: %s, API: %s", cfg.TokenSource(), cfg.BaseURL())

	client := yuque.NewClient(cfg.Token(),
		yuque.WithBaseURL(cfg.BaseURL()),
		yuque.WithTimeout(cfg.RequestTimeout()),
		yuque.WithLogger(logger),
	)
	d := dispatch.New(client, dispatch.WithLogger(logger))

	srv, err := server.New(d, server.WithLogger(logger), server.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	logger.Infof("Starting %s", srv)

	return srv.Run(ctx)
}

// tokenFromEnv returns the first token set in the environment
func tokenFromEnv() string {
	for _, name := range []string{global.EnvPersonalToken, global.EnvGroupToken, global.EnvToken} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func newInstallCommand() *cobra.Command {
	var clientID, token string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the server in an MCP client's config file",
		Long: "Adds a \"yuque\" server entry to the client's MCP config, keeping other entries.\n" +
			"Supported clients: " + strings.Join(installer.ClientIDs(), ", "),
		Example: "  yuque-mcp install --client claude-desktop --token YOUR_TOKEN",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = tokenFromEnv()
			}
			if token == "" {
				return fmt.Errorf("--token is required (or set %s)", global.EnvPersonalToken)
			}
			inst, err := installer.New()
			if err != nil {
				return err
			}
			result, err := inst.Install(token, clientID)
			if err != nil {
				return err
			}
			result.Report(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "client to configure ("+strings.Join(installer.ClientIDs(), ", ")+")")
	cmd.Flags().StringVar(&token, "token", "", "Yuque API token to store in the client config")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}

func newSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively choose a client and store a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := installer.New()
			if err != nil {
				return err
			}
			_, err = inst.Setup(cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", global.ProgramName, global.Version)
		},
	}
}
