/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package yuque

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	msgUnknownAPIError = "Unknown Yuque API error"
	msgUnknownError    = "Unknown error occurred"
)

// Error is the single error kind returned by the Yuque client. StatusCode is
// zero when the failure did not carry an HTTP status.
type Error struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ResponseError describes a non-2xx HTTP response.
type ResponseError struct {
	StatusCode int
	APIMessage string // "message" field of the error body, if present
	Body       []byte
}

func (e *ResponseError) Error() string {
	if e.StatusCode == 0 {
		return ""
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// MapError converts any error into an *Error. It returns nil for nil and
// returns an existing *Error from the chain unchanged.
func MapError(err error) *Error {
	if err == nil {
		return nil
	}

	var ye *Error
	if errors.As(err, &ye) {
		return ye
	}

	var re *ResponseError
	if errors.As(err, &re) {
		msg := re.APIMessage
		if msg == "" {
			msg = err.Error()
		}
		if msg == "" {
			msg = msgUnknownAPIError
		}
		if hint := statusHint(re.StatusCode); hint != "" {
			msg = fmt.Sprintf("%s (%s)", msg, hint)
		}
		return &Error{Message: msg, StatusCode: re.StatusCode, Cause: err}
	}

	if msg := err.Error(); msg != "" {
		return &Error{Message: msg, Cause: err}
	}
	return &Error{Message: msgUnknownError, Cause: err}
}

// statusHint returns a short explanation for well-known status codes.
func statusHint(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "Bad request - check the parameters"
	case status == http.StatusUnauthorized:
		return "Unauthorized - the YUQUE_TOKEN may be invalid or expired"
	case status == http.StatusForbidden:
		return "Forbidden - insufficient permissions for this resource"
	case status == http.StatusNotFound:
		return "Not found - the resource does not exist or is not accessible"
	case status == http.StatusTooManyRequests:
		return "Rate limited - too many requests, try again later"
	case status >= http.StatusInternalServerError:
		return "Yuque server error - try again later"
	}
	return ""
}
