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

// Package utils holds small helpers shared by the CLI.
package utils

import (
	"fmt"
	"os"

	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

// ValidateFileExists checks that path names an existing regular file.
// Failures are *hashsuite.ValidationError with fieldName as the field.
func ValidateFileExists(fieldName, path string) error {
	if path == "" {
		return hashsuite.NewValidationError(fieldName, "path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return hashsuite.NewValidationError(fieldName, fmt.Sprintf("%q does not exist", path))
		}
		return hashsuite.NewValidationError(fieldName, fmt.Sprintf("checking %q: %v", path, err))
	}
	if info.IsDir() {
		return hashsuite.NewValidationError(fieldName, fmt.Sprintf("%q is a directory, expected file", path))
	}
	return nil
}

// ValidateOptionalFile validates a file path only if it's not empty.
func ValidateOptionalFile(fieldName, path string) error {
	if path == "" {
		return nil
	}
	return ValidateFileExists(fieldName, path)
}
