/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package schema declares tool parameters, compiles them once to JSON Schema
// and checks untyped call arguments against them.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Type is the JSON type accepted by a parameter.
type Type int

const (
	String Type = iota
	Integer
	Number
	Boolean
	StringOrNumber
)

// Param declares one tool parameter.
type Param struct {
	Name        string
	Type        Type
	Description string
	Required    bool
	Enum        []any
}

// Schema is an immutable compiled parameter set.
type Schema struct {
	params   []Param
	raw      json.RawMessage
	compiled *gojsonschema.Schema
}

// New compiles the given parameters into a closed object schema. Unknown
// argument keys are rejected.
func New(params ...Param) (*Schema, error) {
	properties := make(map[string]any, len(params))
	required := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("parameter with empty name")
		}
		if _, dup := properties[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter: %s", p.Name)
		}
		properties[p.Name] = p.jsonSchema()
		if p.Required {
			required = append(required, p.Name)
		}
	}

	doc := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		doc["required"] = required
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{params: params, raw: raw, compiled: compiled}, nil
}

// MustNew is like New but panics on error. It is meant for static declarations.
func MustNew(params ...Param) *Schema {
	s, err := New(params...)
	if err != nil {
		panic(err)
	}
	return s
}

func (p Param) jsonSchema() map[string]any {
	m := map[string]any{}
	switch p.Type {
	case String:
		m["type"] = "string"
	case Integer:
		m["type"] = "integer"
	case Number:
		m["type"] = "number"
	case Boolean:
		m["type"] = "boolean"
	case StringOrNumber:
		m["type"] = []string{"string", "number"}
	}
	if p.Type == String || p.Type == StringOrNumber {
		if p.Required {
			m["minLength"] = 1
		}
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if len(p.Enum) > 0 {
		m["enum"] = p.Enum
	}
	return m
}

// JSON returns the JSON Schema document.
func (s *Schema) JSON() json.RawMessage {
	return s.raw
}

// Params returns the declared parameters in declaration order.
func (s *Schema) Params() []Param {
	return s.params
}

// ViolationError reports the first constraint an argument set failed.
type ViolationError struct {
	Field      string // offending argument, empty for the object itself
	Constraint string // gojsonschema error type, e.g. "required", "invalid_type", "enum"
	Message    string
}

func (e *ViolationError) Error() string {
	return e.Message
}

// Validate checks args and returns them as Args. A nil map is treated as empty.
func (s *Schema) Validate(args map[string]any) (Args, error) {
	if args == nil {
		args = map[string]any{}
	}

	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return nil, &ViolationError{Constraint: "decode", Message: fmt.Sprintf("arguments could not be read: %v", err)}
	}
	if result.Valid() {
		return Args(args), nil
	}

	first := result.Errors()[0]
	return nil, &ViolationError{
		Field:      fieldOf(first),
		Constraint: first.Type(),
		Message:    formatValidationError(first.String()),
	}
}

// fieldOf names the argument a result error refers to. Errors raised on the
// object itself carry the property name in their details.
func fieldOf(re gojsonschema.ResultError) string {
	if prop, ok := re.Details()["property"].(string); ok && prop != "" {
		return prop
	}
	field := re.Field()
	if field == "(root)" {
		return ""
	}
	return strings.TrimPrefix(field, "(root).")
}

// formatValidationError rewrites gojsonschema messages into a short form.
func formatValidationError(rawError string) string {
	if strings.Contains(rawError, "is required") {
		parts := strings.SplitN(rawError, ": ", 2)
		if len(parts) == 2 {
			return fmt.Sprintf("Missing required field: %s", strings.TrimSuffix(parts[1], " is required"))
		}
	}

	if strings.Contains(rawError, "Additional property") {
		parts := strings.SplitN(rawError, "Additional property ", 2)
		if len(parts) == 2 {
			return fmt.Sprintf("Unexpected field: %s (not allowed)", strings.TrimSuffix(parts[1], " is not allowed"))
		}
	}

	if strings.Contains(rawError, "Invalid type") {
		parts := strings.SplitN(rawError, ": Invalid type. ", 2)
		if len(parts) == 2 {
			typeInfo := strings.ReplaceAll(parts[1], "Expected: ", "expected ")
			typeInfo = strings.ReplaceAll(typeInfo, ", given: ", ", got ")
			return fmt.Sprintf("Field '%s': %s", parts[0], typeInfo)
		}
	}

	if strings.Contains(rawError, "must be one of the following") {
		parts := strings.SplitN(rawError, ": ", 2)
		if len(parts) == 2 {
			return fmt.Sprintf("Field '%s': %s", parts[0], parts[1])
		}
	}

	if strings.HasPrefix(rawError, "(root): ") {
		return strings.TrimPrefix(rawError, "(root): ")
	}
	return rawError
}
