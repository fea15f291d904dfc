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

package cli

import (
	"errors"

	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

// Process exit codes.
const (
	ExitMismatch   = 1
	ExitValidation = 2
	ExitDigest     = 3
)

// ErrMismatch is returned by verify when the digests differ.
var ErrMismatch = errors.New("digest mismatch")

// ExitError carries the process exit code for Err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// withExitCode attaches an exit code to hashsuite errors and leaves every
// other error untouched.
func withExitCode(err error) error {
	if err == nil {
		return nil
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return err
	}
	switch {
	case hashsuite.IsValidationError(err):
		return &ExitError{Code: ExitValidation, Err: err}
	case hashsuite.IsDigestError(err):
		return &ExitError{Code: ExitDigest, Err: err}
	case errors.Is(err, ErrMismatch):
		return &ExitError{Code: ExitMismatch, Err: err}
	}
	return err
}
