/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"encoding/json"
	"math"
	"strconv"
)

// Args is a validated argument set. Accessors return zero values for absent
// keys; the Opt variants return nil instead.
type Args map[string]any

// Has reports whether name was supplied.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Value returns the raw decoded value.
func (a Args) Value(name string) any {
	return a[name]
}

func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

func (a Args) OptString(name string) *string {
	v, ok := a[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func (a Args) Int(name string) int64 {
	n, _ := toInt(a[name])
	return n
}

func (a Args) OptInt(name string) *int {
	n, ok := toInt(a[name])
	if !ok {
		return nil
	}
	i := int(n)
	return &i
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}
