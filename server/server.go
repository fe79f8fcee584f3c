/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/PivotLLM/yuque-mcp/config"
	"github.com/PivotLLM/yuque-mcp/dispatch"
	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/logging"
	"github.com/PivotLLM/yuque-mcp/tools"
)

const shutdownTimeout = 5 * time.Second

// Server binds the dispatcher to an MCP transport
type Server struct {
	logger             *logging.Logger
	dispatcher         *dispatch.Dispatcher
	mcpServer          *server.MCPServer
	transport          string
	httpAddr           string
	httpEndpoint       string
	markNonDestructive bool
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithConfig applies transport and annotation settings from cfg
func WithConfig(cfg *config.Config) Option {
	return func(s *Server) {
		s.transport = cfg.Transport()
		s.httpAddr = cfg.HTTPAddr()
		s.httpEndpoint = cfg.HTTPEndpoint()
		s.markNonDestructive = cfg.MarkNonDestructive()
	}
}

// WithMarkNonDestructive advertises destructive tools without the destructive hint
func WithMarkNonDestructive(v bool) Option {
	return func(s *Server) {
		s.markNonDestructive = v
	}
}

// New creates a new server instance and registers every tool and prompt
// the dispatcher knows about
func New(d *dispatch.Dispatcher, opts ...Option) (*Server, error) {
	if d == nil {
		return nil, errors.New("dispatcher is required")
	}

	srv := &Server{
		dispatcher:   d,
		transport:    global.TransportStdio,
		httpAddr:     fmt.Sprintf(":%d", global.DefaultHTTPPort),
		httpEndpoint: global.DefaultHTTPEndpoint,
	}
	for _, opt := range opts {
		opt(srv)
	}

	srv.mcpServer = server.NewMCPServer(
		global.ProgramName,
		global.Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithLogging(),
	)

	if err := srv.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	srv.registerPrompts()

	return srv, nil
}

// MCPServer exposes the underlying protocol server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// readOnlyTool creates a tool with read-only annotations
// ReadOnly: true, Destructive: false, OpenWorld: true
func (s *Server) readOnlyTool(info dispatch.ToolInfo) mcp.Tool {
	tool := mcp.NewToolWithRawSchema(info.Name, info.Description, info.InputSchema)
	tool.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	}
	return tool
}

// defaultTool creates a tool with default annotations (non-destructive)
// ReadOnly: false, Destructive: false, OpenWorld: true
func (s *Server) defaultTool(info dispatch.ToolInfo) mcp.Tool {
	tool := mcp.NewToolWithRawSchema(info.Name, info.Description, info.InputSchema)
	tool.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(false),
		DestructiveHint: mcp.ToBoolPtr(false),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	}
	return tool
}

// destructiveTool creates a tool with destructive annotations
// ReadOnly: false, Destructive: true (unless markNonDestructive config is set), OpenWorld: true
func (s *Server) destructiveTool(info dispatch.ToolInfo) mcp.Tool {
	tool := mcp.NewToolWithRawSchema(info.Name, info.Description, info.InputSchema)
	tool.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(false),
		DestructiveHint: mcp.ToBoolPtr(!s.markNonDestructive),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	}
	return tool
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	for _, info := range s.dispatcher.ListTools() {
		var tool mcp.Tool
		switch info.Access {
		case tools.ReadOnly:
			tool = s.readOnlyTool(info)
		case tools.Write:
			tool = s.defaultTool(info)
		case tools.Destructive:
			tool = s.destructiveTool(info)
		default:
			return fmt.Errorf("tool %s has unknown access level %d", info.Name, info.Access)
		}
		s.mcpServer.AddTool(tool, s.handleTool(info.Name))
	}
	return nil
}

// registerPrompts registers all MCP prompts
func (s *Server) registerPrompts() {
	for _, info := range s.dispatcher.ListPrompts() {
		opts := []mcp.PromptOption{mcp.WithPromptDescription(info.Description)}
		for _, arg := range info.Arguments {
			argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
			if arg.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
		}
		s.mcpServer.AddPrompt(mcp.NewPrompt(info.Name, opts...), s.handlePrompt(info.Name))
	}
}

// Run serves the configured transport until the client disconnects, the
// context is cancelled or a shutdown signal arrives
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	switch s.transport {
	case global.TransportHTTP:
		httpServer := server.NewStreamableHTTPServer(s.mcpServer, server.WithEndpointPath(s.httpEndpoint))
		g.Go(func() error {
			s.logger.Infof("MCP server listening on %s%s", s.httpAddr, s.httpEndpoint)
			if err := httpServer.Start(s.httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http transport: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	default:
		stdio := server.NewStdioServer(s.mcpServer)
		g.Go(func() error {
			s.logger.Infof("MCP server started on stdio")
			// Listen returns nil when stdin is closed
			return stdio.Listen(gctx, os.Stdin, os.Stdout)
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Errorf("Server error: %v", err)
		return fmt.Errorf("server error: %w", err)
	}

	if ctx.Err() != nil {
		s.logger.Info("Shutdown signal received")
	} else {
		s.logger.Info("Connection closed")
	}
	if err := s.logger.Sync(); err != nil {
		s.logger.Warnf("Failed to flush logs on shutdown: %v", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
