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
	"fmt"
	"strings"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	hashengines "github.com/hashsuite/hashsuite/pkg/hashing/engines"
)

// EngineFactory creates an engine seeded with initialData.
type EngineFactory func(initialData []byte) (*GenericHashEngine, error)

// factories is fixed at compile time and never written to, so it needs no
// lock.
var factories = map[algorithms.ID]EngineFactory{
	algorithms.SHA256:  NewSHA256,
	algorithms.SHA512:  NewSHA512,
	algorithms.SHA3256: NewSHA3256,
	algorithms.BLAKE2b: NewBLAKE2b,
}

// Create returns a new engine for algorithm, seeded with initialData.
func Create(algorithm algorithms.ID, initialData []byte) (hashengines.StreamingHashEngine, error) {
	factory, ok := factories[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm: %q (supported: %s)",
			algorithm, strings.Join(algorithms.Names(), ", "))
	}

	engine, err := factory(initialData)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %s: %w", algorithm, err)
	}
	return engine, nil
}

// IsSupported reports whether Create can build an engine for algorithm.
func IsSupported(algorithm algorithms.ID) bool {
	_, ok := factories[algorithm]
	return ok
}
