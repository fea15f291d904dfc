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

package memory

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
)

// NewSHA256 returns a SHA-256 engine seeded with initialData.
func NewSHA256(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(algorithms.SHA256, func() (hash.Hash, error) {
		return sha256.New(), nil
	}, initialData)
}

// NewSHA512 returns a SHA-512 engine seeded with initialData.
func NewSHA512(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(algorithms.SHA512, func() (hash.Hash, error) {
		return sha512.New(), nil
	}, initialData)
}

// NewSHA3256 returns a SHA3-256 engine seeded with initialData.
func NewSHA3256(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(algorithms.SHA3256, func() (hash.Hash, error) {
		return sha3.New256(), nil
	}, initialData)
}

// NewBLAKE2b returns an unkeyed BLAKE2b-512 engine seeded with initialData.
func NewBLAKE2b(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(algorithms.BLAKE2b, func() (hash.Hash, error) {
		return blake2b.New512(nil)
	}, initialData)
}
