/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHomePath expands a leading ~/ to the user's home directory.
// The path is returned unchanged if it has no such prefix or the home
// directory cannot be determined.
func ExpandHomePath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

// ResolveAbsolute expands ~/ and converts a path to absolute.
func ResolveAbsolute(path string) (string, error) {
	expanded := ExpandHomePath(path)
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	return filepath.Abs(expanded)
}
