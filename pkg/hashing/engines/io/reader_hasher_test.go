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

package io

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashing/engines/memory"
)

const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestReaderHasher_ChunkSizesAgree(t *testing.T) {
	payload := strings.Repeat("hashsuite ", 5000)

	for _, alg := range algorithms.All() {
		base, err := memory.Create(alg, []byte(payload))
		if err != nil {
			t.Fatalf("Create(%s) error = %v", alg, err)
		}
		want, err := base.Compute()
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}

		for _, chunk := range []int{0, 1, 7, DefaultChunkSize, 1 << 20} {
			engine, err := memory.Create(alg, nil)
			if err != nil {
				t.Fatalf("Create(%s) error = %v", alg, err)
			}
			h, err := NewReaderHasher(strings.NewReader(payload), engine, chunk)
			if err != nil {
				t.Fatalf("NewReaderHasher() error = %v", err)
			}
			got, err := h.Compute()
			if err != nil {
				t.Fatalf("%s chunk=%d: Compute() error = %v", alg, chunk, err)
			}
			if !got.Equal(want) {
				t.Errorf("%s chunk=%d: got %s, want %s", alg, chunk, got.Hex(), want.Hex())
			}
		}
	}
}

func TestFileHasher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	engine, err := memory.NewSHA256(nil)
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewFileHasher(path, engine, 2)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		d, err := h.Compute()
		if err != nil {
			t.Fatalf("Compute() #%d error = %v", i, err)
		}
		if d.Hex() != helloSHA256 {
			t.Errorf("Compute() #%d = %q, want %q", i, d.Hex(), helloSHA256)
		}
	}
	if h.Algorithm() != algorithms.SHA256 || h.DigestSize() != 32 {
		t.Errorf("unexpected metadata %s/%d", h.Algorithm(), h.DigestSize())
	}
}

func TestFileHasher_MissingFile(t *testing.T) {
	engine, _ := memory.NewSHA256(nil)
	h, err := NewFileHasher(filepath.Join(t.TempDir(), "absent"), engine, 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}
	if _, err := h.Compute(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Compute() error = %v, want os.ErrNotExist", err)
	}
}

func TestReaderHasher_ReadError(t *testing.T) {
	boom := errors.New("boom")
	engine, _ := memory.NewSHA256(nil)
	h, err := NewReaderHasher(iotest.ErrReader(boom), engine, 16)
	if err != nil {
		t.Fatalf("NewReaderHasher() error = %v", err)
	}
	if _, err := h.Compute(); !errors.Is(err, boom) {
		t.Errorf("Compute() error = %v, want %v", err, boom)
	}
}

func TestConstructorValidation(t *testing.T) {
	engine, _ := memory.NewSHA256(nil)

	if _, err := NewReaderHasher(nil, engine, 0); err == nil {
		t.Error("nil reader should be rejected")
	}
	if _, err := NewReaderHasher(strings.NewReader(""), nil, 0); err == nil {
		t.Error("nil engine should be rejected")
	}
	if _, err := NewReaderHasher(strings.NewReader(""), engine, -1); err == nil {
		t.Error("negative chunk size should be rejected")
	}
	if _, err := NewFileHasher("", engine, 0); err == nil {
		t.Error("empty path should be rejected")
	}
}
