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

// Package algorithms defines the closed set of digest algorithms supported by
// hashsuite, together with descriptive metadata for each one.
//
// The set is fixed at compile time. There is no registration API: adding an
// algorithm means adding a constant, a catalogue entry and an engine.
package algorithms

import (
	"fmt"
	"strings"
)

// ID identifies a digest algorithm. The zero value is not a valid ID.
type ID string

const (
	// SHA256 is SHA-2 with a 256-bit output (FIPS 180-4).
	SHA256 ID = "SHA-256"
	// SHA512 is SHA-2 with a 512-bit output (FIPS 180-4).
	SHA512 ID = "SHA-512"
	// SHA3256 is SHA-3 with a 256-bit output (FIPS 202).
	SHA3256 ID = "SHA3-256"
	// BLAKE2b is unkeyed BLAKE2b with a 512-bit output (RFC 7693).
	BLAKE2b ID = "BLAKE2b"
)

// all lists every ID in display order.
var all = []ID{SHA256, SHA512, SHA3256, BLAKE2b}

// All returns every supported ID in display order. The returned slice is a
// copy and may be modified by the caller.
func All() []ID {
	out := make([]ID, len(all))
	copy(out, all)
	return out
}

// Default is the algorithm used when none is selected.
const Default = SHA256

// aliases maps lowercase spellings accepted by Parse to their ID.
var aliases = map[string]ID{
	"sha-256":     SHA256,
	"sha256":      SHA256,
	"sha-512":     SHA512,
	"sha512":      SHA512,
	"sha3-256":    SHA3256,
	"sha3256":     SHA3256,
	"sha3_256":    SHA3256,
	"blake2b":     BLAKE2b,
	"blake2b-512": BLAKE2b,
	"blake2b512":  BLAKE2b,
}

// Parse converts a user-supplied algorithm name into an ID.
//
// Matching is case-insensitive and ignores surrounding whitespace. Both the
// canonical names ("SHA-256") and common dashless spellings ("sha256") are
// accepted.
func Parse(s string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if id, ok := aliases[key]; ok {
		return id, nil
	}
	return "", fmt.Errorf("unsupported hash algorithm: %q (supported: %s)", s, strings.Join(Names(), ", "))
}

// MustParse is like Parse but panics on an unknown name.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Names returns the canonical names of all algorithms in display order.
func Names() []string {
	names := make([]string, len(all))
	for i, id := range all {
		names[i] = string(id)
	}
	return names
}

// Valid reports whether id is one of the supported algorithms.
func (id ID) Valid() bool {
	_, ok := catalogue[id]
	return ok
}

// String returns the canonical name.
func (id ID) String() string {
	return string(id)
}

// Size returns the digest size in bytes, or 0 for an unknown ID.
func (id ID) Size() int {
	info, ok := catalogue[id]
	if !ok {
		return 0
	}
	return info.OutputBits / 8
}

// HexLen returns the length of the lowercase hex rendering of a digest
// produced by id, or 0 for an unknown ID.
func (id ID) HexLen() int {
	return id.Size() * 2
}
