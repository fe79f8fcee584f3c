/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package dispatch routes tool and prompt requests to the registries. It
// validates arguments before any handler runs and reduces every failure to
// one of a small set of error kinds.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PivotLLM/yuque-mcp/logging"
	"github.com/PivotLLM/yuque-mcp/prompts"
	"github.com/PivotLLM/yuque-mcp/tools"
	"github.com/PivotLLM/yuque-mcp/yuque"
)

// ToolInfo is the listing entry for one tool.
type ToolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Access      tools.Access    `json:"-"`
}

// PromptInfo is the listing entry for one prompt.
type PromptInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Arguments   []prompts.Argument `json:"arguments"`
}

// PromptResult is a rendered prompt.
type PromptResult struct {
	Description string            `json:"description"`
	Messages    []prompts.Message `json:"messages"`
}

// Dispatcher is safe for concurrent use once constructed.
type Dispatcher struct {
	client  tools.Client
	tools   *tools.Registry
	prompts *prompts.Registry
	logger  *logging.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithTools replaces the default tool registry.
func WithTools(r *tools.Registry) Option {
	return func(d *Dispatcher) {
		d.tools = r
	}
}

// WithPrompts replaces the default prompt registry.
func WithPrompts(r *prompts.Registry) Option {
	return func(d *Dispatcher) {
		d.prompts = r
	}
}

// New creates a Dispatcher that sends remote calls through client.
func New(client tools.Client, opts ...Option) *Dispatcher {
	d := &Dispatcher{client: client}
	for _, opt := range opts {
		opt(d)
	}
	if d.tools == nil {
		d.tools = tools.Default()
	}
	if d.prompts == nil {
		d.prompts = prompts.Default()
	}
	return d
}

// ListTools returns one entry per registered tool in registration order.
func (d *Dispatcher) ListTools() []ToolInfo {
	all := d.tools.All()
	out := make([]ToolInfo, 0, len(all))
	for _, t := range all {
		out = append(out, ToolInfo{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Schema.JSON(),
			Access:      t.Access,
		})
	}
	return out
}

// CallTool validates args against the named tool's schema and runs it.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*tools.Result, error) {
	callID := uuid.NewString()
	start := time.Now()

	tool, ok := d.tools.Lookup(name)
	if !ok {
		d.logger.Warnf("[%s] unknown tool: %s", callID, name)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	validated, err := tool.Schema.Validate(args)
	if err != nil {
		d.logger.Warnf("[%s] %s: %v", callID, name, err)
		return nil, fmt.Errorf("%w for %s: %w", ErrValidation, name, err)
	}

	d.logger.Debugf("[%s] calling %s", callID, name)
	result, err := tool.Handler(ctx, d.client, validated)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		mapped := yuque.MapError(err)
		d.logger.Errorf("[%s] %s failed after %s: %s", callID, name, elapsed, mapped.Message)
		return nil, fmt.Errorf("%w: %w", ErrToolExecution, mapped)
	}

	d.logger.Infof("[%s] %s completed in %s", callID, name, elapsed)
	return result, nil
}

// ListPrompts returns one entry per registered prompt in registration order.
func (d *Dispatcher) ListPrompts() []PromptInfo {
	all := d.prompts.All()
	out := make([]PromptInfo, 0, len(all))
	for _, p := range all {
		out = append(out, PromptInfo{
			Name:        p.Name,
			Description: p.Description,
			Arguments:   p.Arguments,
		})
	}
	return out
}

// GetPrompt renders the named prompt.
func (d *Dispatcher) GetPrompt(name string, args map[string]string) (*PromptResult, error) {
	callID := uuid.NewString()

	p, ok := d.prompts.Lookup(name)
	if !ok {
		d.logger.Warnf("[%s] unknown prompt: %s", callID, name)
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
	}

	if missing := p.MissingArgument(args); missing != "" {
		d.logger.Warnf("[%s] prompt %s: missing argument %s", callID, name, missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, missing)
	}

	msgs, err := p.Messages(args)
	if err != nil {
		return nil, err
	}

	d.logger.Debugf("[%s] rendered prompt %s", callID, name)
	return &PromptResult{Description: p.Description, Messages: msgs}, nil
}
