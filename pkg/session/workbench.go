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

package session

import (
	"fmt"
	"sync"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

// Workbench keeps one independent Session per algorithm and tracks which
// one is active.
type Workbench struct {
	sessions map[algorithms.ID]*Session

	mu     sync.RWMutex
	active algorithms.ID
}

// NewWorkbench creates a Session for every algorithm, all sharing hasher.
// initial becomes the active algorithm.
func NewWorkbench(initial algorithms.ID, hasher *hashsuite.Hasher) (*Workbench, error) {
	if !initial.Valid() {
		return nil, fmt.Errorf("unsupported hash algorithm: %q", initial)
	}
	if hasher == nil {
		hasher = hashsuite.New()
	}

	sessions := make(map[algorithms.ID]*Session, len(algorithms.All()))
	for _, id := range algorithms.All() {
		sessions[id] = New(id, hasher)
	}
	return &Workbench{sessions: sessions, active: initial}, nil
}

// Select makes algorithm the active session.
func (w *Workbench) Select(algorithm algorithms.ID) error {
	if _, ok := w.sessions[algorithm]; !ok {
		return fmt.Errorf("unsupported hash algorithm: %q", algorithm)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = algorithm
	return nil
}

// ActiveAlgorithm returns the selected algorithm.
func (w *Workbench) ActiveAlgorithm() algorithms.ID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active
}

// Active returns the selected Session.
func (w *Workbench) Active() *Session {
	return w.sessions[w.ActiveAlgorithm()]
}

// Session returns the Session for algorithm, or nil if unsupported.
func (w *Workbench) Session(algorithm algorithms.ID) *Session {
	return w.sessions[algorithm]
}

// EachSession calls fn for every session in display order, stopping at the
// first error.
func (w *Workbench) EachSession(fn func(algorithms.ID, *Session) error) error {
	for _, id := range algorithms.All() {
		if err := fn(id, w.sessions[id]); err != nil {
			return err
		}
	}
	return nil
}
