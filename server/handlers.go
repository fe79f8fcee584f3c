/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package server

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/PivotLLM/yuque-mcp/global"
	"github.com/PivotLLM/yuque-mcp/prompts"
	"github.com/PivotLLM/yuque-mcp/tools"
)

// handleTool returns the MCP handler for one tool. Failures are reported as
// error results so the session stays usable.
func (s *Server) handleTool(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		s.logToolCall(name, args)

		result, err := s.dispatcher.CallTool(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toCallToolResult(result), nil
	}
}

// handlePrompt returns the MCP handler for one prompt. Failures become
// protocol errors.
func (s *Server) handlePrompt(name string) server.PromptHandlerFunc {
	return func(_ context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		res, err := s.dispatcher.GetPrompt(name, request.Params.Arguments)
		if err != nil {
			return nil, err
		}
		msgs := make([]mcp.PromptMessage, 0, len(res.Messages))
		for _, m := range res.Messages {
			msgs = append(msgs, mcp.NewPromptMessage(toRole(m.Role), mcp.NewTextContent(m.Content.Text)))
		}
		return mcp.NewGetPromptResult(res.Description, msgs), nil
	}
}

func toCallToolResult(r *tools.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(r.Content))
	for _, c := range r.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}
	return &mcp.CallToolResult{Content: content}
}

func toRole(role string) mcp.Role {
	if role == prompts.RoleAssistant {
		return mcp.RoleAssistant
	}
	return mcp.RoleUser
}

// logToolCall logs an MCP tool invocation at INFO level. Only argument
// names are logged since values may hold document bodies.
func (s *Server) logToolCall(toolName string, args map[string]any) {
	if len(args) == 0 {
		s.logger.Infof("Tool %s called", toolName)
		return
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.logger.Infof("Tool %s called: %s", toolName, strings.Join(keys, ", "))
}

// String describes the server for startup logging
func (s *Server) String() string {
	if s.transport == global.TransportHTTP {
		return fmt.Sprintf("%s on %s%s", s.transport, s.httpAddr, s.httpEndpoint)
	}
	return s.transport
}
