/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package tools

import (
	"fmt"
)

// Registry is an immutable, ordered set of tools keyed by name.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry merges the given groups in order. Duplicate or malformed
// entries are an error.
func NewRegistry(groups ...[]Tool) (*Registry, error) {
	r := &Registry{index: make(map[string]int)}
	for _, group := range groups {
		for _, t := range group {
			if t.Name == "" {
				return nil, fmt.Errorf("tool with empty name")
			}
			if t.Schema == nil || t.Handler == nil {
				return nil, fmt.Errorf("tool %s: missing schema or handler", t.Name)
			}
			if _, dup := r.index[t.Name]; dup {
				return nil, fmt.Errorf("duplicate tool name: %s", t.Name)
			}
			r.index[t.Name] = len(r.tools)
			r.tools = append(r.tools, t)
		}
	}
	return r, nil
}

// Default returns the registry of all Yuque tools.
func Default() *Registry {
	r, err := NewRegistry(
		UserTools(),
		RepoTools(),
		DocTools(),
		TocTools(),
		SearchTools(),
		GroupTools(),
		StatsTools(),
		VersionTools(),
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the tool with the given name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// All returns the tools in registration order.
func (r *Registry) All() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len returns the number of tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
