/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package prompts

import (
	"fmt"
)

// Registry is an immutable, ordered set of prompts keyed by name.
type Registry struct {
	prompts []*Prompt
	index   map[string]*Prompt
}

// NewRegistry compiles the definitions. Duplicate names or bad templates
// are an error.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{index: make(map[string]*Prompt)}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("prompt with empty name")
		}
		if _, dup := r.index[def.Name]; dup {
			return nil, fmt.Errorf("duplicate prompt name: %s", def.Name)
		}
		p, err := Compile(def)
		if err != nil {
			return nil, err
		}
		r.index[def.Name] = p
		r.prompts = append(r.prompts, p)
	}
	return r, nil
}

// Default returns the registry of all built-in prompts.
func Default() *Registry {
	r, err := NewRegistry(Definitions()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the prompt with the given name.
func (r *Registry) Lookup(name string) (*Prompt, bool) {
	p, ok := r.index[name]
	return p, ok
}

// All returns the prompts in registration order.
func (r *Registry) All() []*Prompt {
	out := make([]*Prompt, len(r.prompts))
	copy(out, r.prompts)
	return out
}
