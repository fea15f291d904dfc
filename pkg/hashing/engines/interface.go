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

// Package hashengines defines the interfaces implemented by digest engines.
//
// Engines are split into a one-shot HashEngine and a Streaming mixin so that
// sources which produce their digest in a single step (for example a reader
// hasher) do not have to fake incremental updates.
package hashengines

import (
	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashing/digests"
)

// HashEngine computes a digest for one algorithm.
type HashEngine interface {
	// Compute finalizes the current state and returns the digest. It does
	// not reset the engine.
	Compute() (digests.Digest, error)

	// Algorithm returns the algorithm implemented by the engine. It is
	// copied into the Digest returned by Compute.
	Algorithm() algorithms.ID

	// DigestSize returns the size in bytes of digests produced by the
	// engine. It must match Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming feeds data into an engine incrementally.
type Streaming interface {
	// Update appends data to the hash state.
	Update(data []byte)

	// Reset clears the hash state and seeds it with data, which may be nil.
	Reset(data []byte)
}

// StreamingHashEngine is a HashEngine that accepts incremental input.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
