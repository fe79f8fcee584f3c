/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dispatch

import "errors"

// Sentinel errors returned by the Dispatcher. Test with errors.Is.
var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrUnknownPrompt   = errors.New("unknown prompt")
	ErrValidation      = errors.New("invalid arguments")
	ErrMissingArgument = errors.New("missing required argument")
	ErrToolExecution   = errors.New("Tool execution failed")
)
