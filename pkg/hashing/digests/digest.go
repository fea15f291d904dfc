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

// Package digests provides an immutable value type for computed digests.
package digests

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
)

// Digest is a computed digest tagged with the algorithm that produced it.
//
// Fields are unexported and the byte slice is copied on the way in and on the
// way out, so a Digest can be shared freely between goroutines.
type Digest struct {
	algorithm algorithms.ID
	value     []byte
}

// NewDigest returns a Digest holding a copy of value.
func NewDigest(algorithm algorithms.ID, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// FromHex parses a hex string into a Digest for algorithm.
//
// Surrounding whitespace is ignored and either case is accepted. The decoded
// length must match the algorithm's digest size.
func FromHex(algorithm algorithms.ID, s string) (Digest, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Digest{}, fmt.Errorf("decode %s digest: %w", algorithm, err)
	}
	if want := algorithm.Size(); len(raw) != want {
		return Digest{}, fmt.Errorf("%s digest must be %d bytes, got %d", algorithm, want, len(raw))
	}
	return Digest{algorithm: algorithm, value: raw}, nil
}

// Algorithm returns the algorithm that produced the digest.
func (d Digest) Algorithm() algorithms.ID {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the digest as lowercase hex with no prefix or separators.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the digest length in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// IsZero reports whether d was never populated.
func (d Digest) IsZero() bool {
	return d.algorithm == "" && len(d.value) == 0
}

// String renders the digest as "algorithm:hex".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether both digests use the same algorithm and bytes.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}
