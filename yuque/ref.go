/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package yuque

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Ref identifies a repo or doc: a numeric id, an "owner/slug" namespace or a
// doc slug. It is passed to the API as given.
type Ref string

// RefFrom builds a Ref from a decoded JSON value.
func RefFrom(v any) Ref {
	switch t := v.(type) {
	case Ref:
		return t
	case string:
		return Ref(t)
	case float64:
		return Ref(strconv.FormatFloat(t, 'f', -1, 64))
	case json.Number:
		return Ref(t.String())
	case int:
		return Ref(strconv.Itoa(t))
	case int64:
		return Ref(strconv.FormatInt(t, 10))
	case nil:
		return ""
	default:
		return Ref(fmt.Sprint(t))
	}
}

func (r Ref) String() string {
	return string(r)
}

// path escapes each segment while keeping the namespace separator.
func (r Ref) path() string {
	parts := strings.Split(string(r), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
