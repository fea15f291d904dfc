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

// Package memory provides in-memory streaming engines for every supported
// digest algorithm.
package memory

import (
	"fmt"
	"hash"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashing/digests"
	hashengines "github.com/hashsuite/hashsuite/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates a fresh hash.Hash.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine adapts any hash.Hash to StreamingHashEngine.
//
// A GenericHashEngine is not safe for concurrent use. Create one engine per
// computation; engines are cheap.
type GenericHashEngine struct {
	algorithm algorithms.ID
	size      int
	h         hash.Hash
}

// NewGenericHashEngine builds an engine for algorithm from factory.
//
// initialData, if non-empty, is written immediately.
func NewGenericHashEngine(algorithm algorithms.ID, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	if factory == nil {
		return nil, fmt.Errorf("hash factory for %s must not be nil", algorithm)
	}

	h, err := factory()
	if err != nil {
		return nil, fmt.Errorf("initialize %s hasher: %w", algorithm, err)
	}

	engine := &GenericHashEngine{
		algorithm: algorithm,
		size:      h.Size(),
		h:         h,
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error.
		_, _ = engine.h.Write(initialData)
	}

	return engine, nil
}

// Update appends data to the hash state.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and seeds it with data.
func (e *GenericHashEngine) Reset(data []byte) {
	e.h.Reset()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute returns the digest of everything written since the last Reset.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	if len(sum) != e.size {
		return digests.Digest{}, fmt.Errorf("%s produced %d bytes, want %d", e.algorithm, len(sum), e.size)
	}
	return digests.NewDigest(e.algorithm, sum), nil
}

// Algorithm returns the engine's algorithm.
func (e *GenericHashEngine) Algorithm() algorithms.ID {
	return e.algorithm
}

// DigestSize returns the digest size in bytes.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
