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

// Package hashsuite computes digests of text and verifies supplied digests
// against freshly computed ones.
//
// Digest routes an input string and an algorithm to one of the fixed engines
// and renders the result as lowercase hex. Verify recomputes the digest and
// compares it against a caller-supplied value after trimming surrounding
// whitespace and lowercasing.
//
//	res, err := hashsuite.Digest("hello", algorithms.SHA256)
//	// res.HexDigest == "2cf24dba..."
//
//	v, err := hashsuite.Verify("hello", " 2CF24DBA... ", algorithms.SHA256)
//	// v.IsMatch == true
package hashsuite

import (
	"crypto/subtle"
	"io"
	"strings"
	"time"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashing/digests"
	hashengines "github.com/hashsuite/hashsuite/pkg/hashing/engines"
	hashio "github.com/hashsuite/hashsuite/pkg/hashing/engines/io"
	"github.com/hashsuite/hashsuite/pkg/hashing/engines/memory"
	"github.com/hashsuite/hashsuite/pkg/logging"
)

// DigestResult is the output of a single digest computation.
type DigestResult struct {
	Algorithm algorithms.ID `json:"algorithm"`
	// HexDigest is lowercase hex, Algorithm.HexLen() characters long.
	HexDigest string    `json:"hash"`
	Input     string    `json:"input"`
	Timestamp time.Time `json:"timestamp"`
}

// VerificationResult is the output of comparing a supplied digest against a
// freshly computed one.
type VerificationResult struct {
	Algorithm algorithms.ID `json:"algorithm"`
	IsMatch   bool          `json:"isMatch"`
	Input     string        `json:"input"`
	// NormalizedProvidedDigest is the supplied digest, trimmed and lowercased.
	NormalizedProvidedDigest string    `json:"providedHash"`
	ComputedDigest           string    `json:"computedHash"`
	Timestamp                time.Time `json:"timestamp"`
}

// Hasher computes and verifies digests. The zero value is not usable; call
// New.
//
// A Hasher holds no per-call state and is safe for concurrent use.
type Hasher struct {
	now       func() time.Time
	logger    logging.Logger
	chunkSize int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithClock sets the clock used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(h *Hasher) {
		if now != nil {
			h.now = now
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logging.Logger) Option {
	return func(h *Hasher) {
		h.logger = logging.EnsureLogger(l)
	}
}

// WithChunkSize sets the read buffer size used by DigestReader and
// DigestFile. Zero reads the whole source at once.
func WithChunkSize(n int) Option {
	return func(h *Hasher) {
		if n >= 0 {
			h.chunkSize = n
		}
	}
}

// New returns a Hasher configured by opts.
func New(opts ...Option) *Hasher {
	h := &Hasher{
		now:       time.Now,
		logger:    logging.Discard(),
		chunkSize: hashio.DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var defaultHasher = New()

// Digest computes the digest of input with the default Hasher.
func Digest(input string, algorithm algorithms.ID) (DigestResult, error) {
	return defaultHasher.Digest(input, algorithm)
}

// Verify checks providedDigest against input with the default Hasher.
func Verify(input, providedDigest string, algorithm algorithms.ID) (VerificationResult, error) {
	return defaultHasher.Verify(input, providedDigest, algorithm)
}

// Digest hashes the UTF-8 bytes of input with algorithm.
//
// The empty string is valid input. The only failures are an unsupported
// algorithm or a primitive failure, both reported as *DigestError.
func (h *Hasher) Digest(input string, algorithm algorithms.ID) (DigestResult, error) {
	engine, err := memory.Create(algorithm, []byte(input))
	if err != nil {
		return DigestResult{}, &DigestError{Algorithm: algorithm, Message: "no engine available", Cause: err}
	}

	d, err := engine.Compute()
	if err != nil {
		return DigestResult{}, &DigestError{Algorithm: algorithm, Message: "computation failed", Cause: err}
	}

	hexDigest, err := checkedHex(algorithm, d)
	if err != nil {
		return DigestResult{}, err
	}

	h.logger.WithFields(map[string]interface{}{
		"algorithm": algorithm.String(),
		"bytes":     len(input),
	}).Debugln("computed digest")

	return DigestResult{
		Algorithm: algorithm,
		HexDigest: hexDigest,
		Input:     input,
		Timestamp: h.now(),
	}, nil
}

// DigestReader hashes everything read from r with algorithm. The result's
// Input field is left empty because the content is not retained.
func (h *Hasher) DigestReader(r io.Reader, algorithm algorithms.ID) (DigestResult, error) {
	return h.digestStream(algorithm, func(engine hashengines.StreamingHashEngine) (*hashio.ReaderHasher, error) {
		return hashio.NewReaderHasher(r, engine, h.chunkSize)
	})
}

// DigestFile hashes the contents of the file at path with algorithm. An
// unreadable file is a *DigestError.
func (h *Hasher) DigestFile(path string, algorithm algorithms.ID) (DigestResult, error) {
	return h.digestStream(algorithm, func(engine hashengines.StreamingHashEngine) (*hashio.ReaderHasher, error) {
		return hashio.NewFileHasher(path, engine, h.chunkSize)
	})
}

func (h *Hasher) digestStream(
	algorithm algorithms.ID,
	source func(hashengines.StreamingHashEngine) (*hashio.ReaderHasher, error),
) (DigestResult, error) {
	engine, err := memory.Create(algorithm, nil)
	if err != nil {
		return DigestResult{}, &DigestError{Algorithm: algorithm, Message: "no engine available", Cause: err}
	}

	rh, err := source(engine)
	if err != nil {
		return DigestResult{}, &DigestError{Algorithm: algorithm, Message: "invalid source", Cause: err}
	}

	d, err := rh.Compute()
	if err != nil {
		return DigestResult{}, &DigestError{Algorithm: algorithm, Message: "computation failed", Cause: err}
	}

	hexDigest, err := checkedHex(algorithm, d)
	if err != nil {
		return DigestResult{}, err
	}

	h.logger.WithField("algorithm", algorithm.String()).Debugln("computed stream digest")

	return DigestResult{
		Algorithm: algorithm,
		HexDigest: hexDigest,
		Timestamp: h.now(),
	}, nil
}

// Verify recomputes the digest of input and compares it against
// providedDigest.
//
// providedDigest is trimmed and lowercased before comparison; apart from
// that the match is exact. A providedDigest that is empty after trimming is a
// *ValidationError. Malformed hex is simply a mismatch.
func (h *Hasher) Verify(input, providedDigest string, algorithm algorithms.ID) (VerificationResult, error) {
	normalized := NormalizeDigest(providedDigest)
	if normalized == "" {
		return VerificationResult{}, NewValidationError("digest", "provided digest is empty")
	}

	res, err := h.Digest(input, algorithm)
	if err != nil {
		return VerificationResult{}, err
	}
	return h.compare(res, normalized), nil
}

// VerifyReader is Verify for a byte stream. The result's Input field is
// left empty.
func (h *Hasher) VerifyReader(r io.Reader, providedDigest string, algorithm algorithms.ID) (VerificationResult, error) {
	normalized := NormalizeDigest(providedDigest)
	if normalized == "" {
		return VerificationResult{}, NewValidationError("digest", "provided digest is empty")
	}

	res, err := h.DigestReader(r, algorithm)
	if err != nil {
		return VerificationResult{}, err
	}
	return h.compare(res, normalized), nil
}

func (h *Hasher) compare(res DigestResult, normalized string) VerificationResult {
	match := subtle.ConstantTimeCompare([]byte(res.HexDigest), []byte(normalized)) == 1

	h.logger.WithFields(map[string]interface{}{
		"algorithm": res.Algorithm.String(),
		"match":     match,
	}).Debugln("verified digest")

	return VerificationResult{
		Algorithm:                res.Algorithm,
		IsMatch:                  match,
		Input:                    res.Input,
		NormalizedProvidedDigest: normalized,
		ComputedDigest:           res.HexDigest,
		Timestamp:                h.now(),
	}
}

// NormalizeDigest trims surrounding whitespace and lowercases s.
func NormalizeDigest(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checkedHex(algorithm algorithms.ID, d digests.Digest) (string, error) {
	hexDigest := d.Hex()
	if len(hexDigest) != algorithm.HexLen() {
		return "", &DigestError{
			Algorithm: algorithm,
			Message:   "unexpected digest length",
		}
	}
	return hexDigest, nil
}
