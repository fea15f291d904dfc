// Copyright 2025 The HashSuite Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

func TestValidateFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(file, []byte("hello"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid file", file, ""},
		{"empty path", "", "path is required"},
		{"non-existent file", filepath.Join(dir, "missing.txt"), "does not exist"},
		{"directory instead of file", dir, "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileExists("file", tt.path)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateFileExists() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateFileExists() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateFileExists() error = %q, want it to contain %q", err, tt.wantErr)
			}
			var ve *hashsuite.ValidationError
			if !errors.As(err, &ve) || ve.Field != "file" {
				t.Errorf("ValidateFileExists() error = %#v, want *ValidationError on field file", err)
			}
		})
	}
}

func TestValidateOptionalFile(t *testing.T) {
	if err := ValidateOptionalFile("config", ""); err != nil {
		t.Errorf("ValidateOptionalFile(\"\") error = %v, want nil", err)
	}
	if err := ValidateOptionalFile("config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("ValidateOptionalFile() should reject a missing file")
	}
}
