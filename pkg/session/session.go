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

// Package session holds the interactive state behind a digest form: the
// current input, the selected algorithm, the latest results and a
// user-facing error message.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
	"github.com/hashsuite/hashsuite/pkg/tracing"
)

// User-facing validation messages.
const (
	MsgEmptyHashInput   = "please enter text to hash"
	MsgEmptyVerifyInput = "please enter text to verify"
	MsgEmptyDigest      = "please enter a digest to verify"
)

// Snapshot is a consistent copy of a Session's state.
type Snapshot struct {
	Input        string
	Algorithm    algorithms.ID
	Digest       *hashsuite.DigestResult
	Verification *hashsuite.VerificationResult
	InFlight     bool
	Err          string
}

// Session is safe for concurrent use. Results are replaced, never mutated.
type Session struct {
	hasher *hashsuite.Hasher

	mu           sync.Mutex
	input        string
	algorithm    algorithms.ID
	digest       *hashsuite.DigestResult
	verification *hashsuite.VerificationResult
	inFlight     bool
	err          string
}

// New returns a Session for algorithm using hasher. A nil hasher uses
// hashsuite.New().
func New(algorithm algorithms.ID, hasher *hashsuite.Hasher) *Session {
	if hasher == nil {
		hasher = hashsuite.New()
	}
	return &Session{hasher: hasher, algorithm: algorithm}
}

// SetInput replaces the input text.
func (s *Session) SetInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = input
}

// SetAlgorithm changes the selected algorithm. Existing results are kept
// until the next Generate or Verify.
func (s *Session) SetAlgorithm(algorithm algorithms.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.algorithm = algorithm
}

// Generate digests the current input.
//
// Whitespace-only input is rejected with a *hashsuite.ValidationError and
// leaves the previous digest in place. Any previous verification result is
// cleared before computing.
func (s *Session) Generate(ctx context.Context) (hashsuite.DigestResult, error) {
	s.mu.Lock()
	input, alg := s.input, s.algorithm
	if strings.TrimSpace(input) == "" {
		s.err = MsgEmptyHashInput
		s.mu.Unlock()
		return hashsuite.DigestResult{}, hashsuite.NewValidationError("input", MsgEmptyHashInput)
	}
	s.inFlight = true
	s.err = ""
	s.verification = nil
	s.mu.Unlock()

	var res hashsuite.DigestResult
	err := tracing.Run(ctx, "session.Generate", map[string]interface{}{
		"hashsuite.algorithm":    alg.String(),
		"hashsuite.input_length": len(input),
	}, func(context.Context) error {
		var err error
		res, err = s.hasher.Digest(input, alg)
		return err
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.err = err.Error()
		s.digest = nil
		return hashsuite.DigestResult{}, err
	}
	s.digest = &res
	return res, nil
}

// Verify checks provided against the digest of the current input.
func (s *Session) Verify(ctx context.Context, provided string) (hashsuite.VerificationResult, error) {
	s.mu.Lock()
	input, alg := s.input, s.algorithm
	switch {
	case strings.TrimSpace(input) == "":
		s.err = MsgEmptyVerifyInput
		s.mu.Unlock()
		return hashsuite.VerificationResult{}, hashsuite.NewValidationError("input", MsgEmptyVerifyInput)
	case strings.TrimSpace(provided) == "":
		s.err = MsgEmptyDigest
		s.mu.Unlock()
		return hashsuite.VerificationResult{}, hashsuite.NewValidationError("digest", MsgEmptyDigest)
	}
	s.inFlight = true
	s.err = ""
	s.mu.Unlock()

	var res hashsuite.VerificationResult
	err := tracing.Run(ctx, "session.Verify", map[string]interface{}{
		"hashsuite.algorithm":    alg.String(),
		"hashsuite.input_length": len(input),
	}, func(context.Context) error {
		var err error
		res, err = s.hasher.Verify(input, provided, alg)
		return err
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.err = err.Error()
		s.verification = nil
		return hashsuite.VerificationResult{}, err
	}
	s.verification = &res
	return res, nil
}

// ClearResults drops both results and the error message.
func (s *Session) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.digest = nil
	s.verification = nil
	s.err = ""
}

// ClearError drops the error message only.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// InFlight reports whether a Generate or Verify call is running.
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Input:        s.input,
		Algorithm:    s.algorithm,
		Digest:       s.digest,
		Verification: s.verification,
		InFlight:     s.inFlight,
		Err:          s.err,
	}
}
