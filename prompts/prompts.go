/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package prompts holds the workflow prompts offered to MCP clients. Each
// prompt renders a single user message that tells the agent which tools to
// call and in what order.
package prompts

import (
	"bytes"
	"fmt"
	"text/template"
)

// Role of a prompt message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Argument describes one prompt argument.
type Argument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Content is a text block.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message is one rendered prompt message.
type Message struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Definition is the static declaration of a prompt.
type Definition struct {
	Name        string
	Description string
	Arguments   []Argument
	Template    string
}

// Prompt is a parsed, ready to render prompt.
type Prompt struct {
	Name        string
	Description string
	Arguments   []Argument
	tmpl        *template.Template
}

// Compile parses the definition's template.
func Compile(def Definition) (*Prompt, error) {
	tmpl, err := template.New(def.Name).Option("missingkey=zero").Parse(def.Template)
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", def.Name, err)
	}
	return &Prompt{
		Name:        def.Name,
		Description: def.Description,
		Arguments:   def.Arguments,
		tmpl:        tmpl,
	}, nil
}

// MissingArgument returns the first required argument absent from args, or
// an empty string when all are present.
func (p *Prompt) MissingArgument(args map[string]string) string {
	for _, a := range p.Arguments {
		if !a.Required {
			continue
		}
		if _, ok := args[a.Name]; !ok {
			return a.Name
		}
	}
	return ""
}

// Messages renders the prompt. Argument values are inserted verbatim.
func (p *Prompt) Messages(args map[string]string) ([]Message, error) {
	if args == nil {
		args = map[string]string{}
	}
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, args); err != nil {
		return nil, fmt.Errorf("failed to render prompt %s: %w", p.Name, err)
	}
	return []Message{{Role: RoleUser, Content: Content{Type: "text", Text: buf.String()}}}, nil
}
