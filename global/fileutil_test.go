/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("write new file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "new-file.json")
		content := []byte(`{"a":1}`)

		if err := AtomicWrite(filePath, content, 0600); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(data) != string(content) {
			t.Errorf("File content = %q, want %q", string(data), string(content))
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "existing-file.json")
		if err := os.WriteFile(filePath, []byte("old content"), 0644); err != nil {
			t.Fatalf("Failed to create initial file: %v", err)
		}

		if err := AtomicWrite(filePath, []byte("new content"), 0644); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(data) != "new content" {
			t.Errorf("File content = %q, want %q", string(data), "new content")
		}
		if FileExists(filePath + ".tmp") {
			t.Error("temp file should not remain after write")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "a", "b", "c.json")
		if err := AtomicWrite(filePath, []byte("{}"), 0644); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}
		if !FileExists(filePath) {
			t.Error("file should exist")
		}
	})
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.json")
	dst := filepath.Join(tmpDir, "src.json.backup")

	if err := os.WriteFile(src, []byte("not json {"), 0644); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read copy: %v", err)
	}
	if string(data) != "not json {" {
		t.Errorf("copy content = %q", string(data))
	}

	if err := CopyFile(filepath.Join(tmpDir, "missing"), dst); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", filePath, true},
		{"missing file", filepath.Join(tmpDir, "nope.txt"), false},
		{"directory", tmpDir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
