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

package hashsuite

import (
	"errors"
	"fmt"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
)

// DigestError reports that a digest could not be computed, either because
// the algorithm is unknown or because the underlying primitive failed.
//
//	var de *hashsuite.DigestError
//	if errors.As(err, &de) {
//	    log.Printf("digest failed: algorithm=%s msg=%s", de.Algorithm, de.Message)
//	}
type DigestError struct {
	// Algorithm is the requested algorithm, which may be invalid.
	Algorithm algorithms.ID
	// Message is a human-readable description.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *DigestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("digest %s: %s: %v", e.Algorithm, e.Message, e.Cause)
	}
	return fmt.Sprintf("digest %s: %s", e.Algorithm, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DigestError) Unwrap() error {
	return e.Cause
}

// ValidationError reports caller input that was rejected before any digest
// was computed.
type ValidationError struct {
	// Field names the offending input, e.g. "input" or "digest".
	Field string
	// Message is suitable for showing to an end user.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsDigestError reports whether err wraps a *DigestError.
func IsDigestError(err error) bool {
	var de *DigestError
	return errors.As(err, &de)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
