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

// Package io streams byte sources (readers, files) into digest engines.
package io

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashing/digests"
	hashengines "github.com/hashsuite/hashsuite/pkg/hashing/engines"
)

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 8192

var _ hashengines.HashEngine = (*ReaderHasher)(nil)

// ReaderHasher hashes everything read from a source by streaming it into an
// inner StreamingHashEngine.
//
// The source is consumed exactly once per Compute. With chunkSize == 0 the
// whole source is read into memory in one go.
type ReaderHasher struct {
	open          func() (io.ReadCloser, error)
	name          string
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

// NewReaderHasher hashes r. The reader is not closed.
func NewReaderHasher(r io.Reader, contentHasher hashengines.StreamingHashEngine, chunkSize int) (*ReaderHasher, error) {
	if r == nil {
		return nil, errors.New("reader must not be nil")
	}
	return newReaderHasher(func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}, "reader", contentHasher, chunkSize)
}

// NewFileHasher hashes the file at filePath, opening it on every Compute.
func NewFileHasher(filePath string, contentHasher hashengines.StreamingHashEngine, chunkSize int) (*ReaderHasher, error) {
	if filePath == "" {
		return nil, errors.New("file path must be non-empty")
	}
	return newReaderHasher(func() (io.ReadCloser, error) {
		return os.Open(filePath)
	}, filePath, contentHasher, chunkSize)
}

func newReaderHasher(
	open func() (io.ReadCloser, error),
	name string,
	contentHasher hashengines.StreamingHashEngine,
	chunkSize int,
) (*ReaderHasher, error) {
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}
	if contentHasher == nil {
		return nil, errors.New("content hasher must not be nil")
	}

	return &ReaderHasher{
		open:          open,
		name:          name,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// Algorithm is delegated to the inner content hasher.
func (h *ReaderHasher) Algorithm() algorithms.ID {
	return h.contentHasher.Algorithm()
}

// DigestSize is delegated to the inner content hasher.
func (h *ReaderHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute reads the source to EOF and returns its digest.
func (h *ReaderHasher) Compute() (digests.Digest, error) {
	h.contentHasher.Reset(nil)

	rc, err := h.open()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open %s: %w", h.name, err)
	}
	defer rc.Close()

	if h.chunkSize == 0 {
		data, err := io.ReadAll(rc)
		if err != nil {
			return digests.Digest{}, fmt.Errorf("read %s: %w", h.name, err)
		}
		h.contentHasher.Update(data)
	} else {
		buf := make([]byte, h.chunkSize)
		for {
			n, err := rc.Read(buf)
			if n > 0 {
				h.contentHasher.Update(buf[:n])
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return digests.Digest{}, fmt.Errorf("read %s: %w", h.name, err)
			}
		}
	}

	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}
	return d, nil
}
