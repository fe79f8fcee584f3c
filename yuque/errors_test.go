/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package yuque

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "server message with hint",
			err:        &ResponseError{StatusCode: 404, APIMessage: "book not found"},
			wantMsg:    "book not found (Not found - the resource does not exist or is not accessible)",
			wantStatus: 404,
		},
		{
			name:       "transport message when server message missing",
			err:        &ResponseError{StatusCode: 401},
			wantMsg:    "request failed with status code 401 (Unauthorized - the YUQUE_TOKEN may be invalid or expired)",
			wantStatus: 401,
		},
		{
			name:       "server error range",
			err:        &ResponseError{StatusCode: 503, APIMessage: "down"},
			wantMsg:    "down (Yuque server error - try again later)",
			wantStatus: 503,
		},
		{
			name:       "no hint for unlisted status",
			err:        &ResponseError{StatusCode: 409, APIMessage: "conflict"},
			wantMsg:    "conflict",
			wantStatus: 409,
		},
		{
			name:       "rate limited",
			err:        &ResponseError{StatusCode: 429, APIMessage: "slow down"},
			wantMsg:    "slow down (Rate limited - too many requests, try again later)",
			wantStatus: 429,
		},
		{
			name:    "response error without status or message",
			err:     &ResponseError{},
			wantMsg: msgUnknownAPIError,
		},
		{
			name:    "plain error",
			err:     errors.New("dial tcp: connection refused"),
			wantMsg: "dial tcp: connection refused",
		},
		{
			name:    "empty message",
			err:     emptyError{},
			wantMsg: msgUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got == nil {
				t.Fatal("expected error, got nil")
			}
			if got.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMsg)
			}
			if got.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", got.StatusCode, tt.wantStatus)
			}
			if !errors.Is(got, tt.err) {
				t.Error("mapped error does not wrap its cause")
			}
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	if MapError(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestMapErrorReturnsExistingError(t *testing.T) {
	original := &Error{Message: "already mapped", StatusCode: 403}
	wrapped := fmt.Errorf("tool execution failed: %w", original)

	if got := MapError(original); got != original {
		t.Error("expected the same *Error back")
	}
	if got := MapError(wrapped); got != original {
		t.Error("expected the *Error found in the chain")
	}
}

func TestMapErrorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("mapping is idempotent", prop.ForAll(
		func(status int, msg string) bool {
			first := MapError(&ResponseError{StatusCode: status, APIMessage: msg})
			second := MapError(first)
			return first == second && first.Message == second.Message
		},
		gen.IntRange(400, 599),
		gen.AlphaString(),
	))

	properties.Property("status is preserved and message is never empty", prop.ForAll(
		func(status int, msg string) bool {
			got := MapError(&ResponseError{StatusCode: status, APIMessage: msg})
			return got.StatusCode == status && got.Message != ""
		},
		gen.IntRange(400, 599),
		gen.AlphaString(),
	))

	properties.Property("server message leads the mapped message", prop.ForAll(
		func(status int, msg string) bool {
			got := MapError(&ResponseError{StatusCode: status, APIMessage: msg})
			return strings.HasPrefix(got.Message, msg)
		},
		gen.IntRange(400, 599),
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.Property("plain errors keep their message and carry no status", prop.ForAll(
		func(msg string) bool {
			got := MapError(errors.New(msg))
			return got.Message == msg && got.StatusCode == 0
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.TestingRun(t)
}

func TestStatusHint(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 429, 500, 502, 599} {
		if statusHint(status) == "" {
			t.Errorf("expected hint for %d", status)
		}
	}
	for _, status := range []int{0, 200, 302, 405, 409, 422} {
		if hint := statusHint(status); hint != "" {
			t.Errorf("unexpected hint for %d: %q", status, hint)
		}
	}
}

func TestRefFrom(t *testing.T) {
	tests := []struct {
		in   any
		want Ref
	}{
		{"owner/book", "owner/book"},
		{float64(12345), "12345"},
		{float64(1.5), "1.5"},
		{42, "42"},
		{int64(7), "7"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := RefFrom(tt.in); got != tt.want {
			t.Errorf("RefFrom(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRefPathKeepsNamespaceSeparator(t *testing.T) {
	if got := Ref("team/my book").path(); got != "team/my%20book" {
		t.Errorf("path = %q", got)
	}
}
