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
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestGenerate_RejectsBlankInput(t *testing.T) {
	s := New(algorithms.SHA256, nil)
	s.SetInput("   \n")

	_, err := s.Generate(context.Background())
	require.Error(t, err)

	var ve *hashsuite.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, MsgEmptyHashInput, ve.Message)
	assert.Equal(t, MsgEmptyHashInput, s.Snapshot().Err)
	assert.Nil(t, s.Snapshot().Digest)
}

func TestGenerate_StoresResult(t *testing.T) {
	s := New(algorithms.SHA256, nil)
	s.SetInput("hello")

	res, err := s.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, res.HexDigest)

	snap := s.Snapshot()
	require.NotNil(t, snap.Digest)
	assert.Equal(t, helloSHA256, snap.Digest.HexDigest)
	assert.Empty(t, snap.Err)
	assert.False(t, snap.InFlight)
	assert.False(t, s.InFlight())
}

func TestGenerate_ClearsPreviousVerification(t *testing.T) {
	s := New(algorithms.SHA256, nil)
	s.SetInput("hello")

	_, err := s.Verify(context.Background(), helloSHA256)
	require.NoError(t, err)
	require.NotNil(t, s.Snapshot().Verification)

	_, err = s.Generate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s.Snapshot().Verification)
}

func TestGenerate_FailureClearsDigest(t *testing.T) {
	s := New(algorithms.SHA256, nil)
	s.SetInput("hello")
	_, err := s.Generate(context.Background())
	require.NoError(t, err)

	s.SetAlgorithm(algorithms.ID("bogus"))
	_, err = s.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, hashsuite.IsDigestError(err))

	snap := s.Snapshot()
	assert.Nil(t, snap.Digest)
	assert.NotEmpty(t, snap.Err)
}

func TestVerify_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		provided string
		wantMsg  string
	}{
		{"blank input", " ", helloSHA256, MsgEmptyVerifyInput},
		{"blank digest", "hello", "\t", MsgEmptyDigest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(algorithms.SHA256, nil)
			s.SetInput(tt.input)

			_, err := s.Verify(context.Background(), tt.provided)
			require.Error(t, err)
			assert.True(t, hashsuite.IsValidationError(err))
			assert.Equal(t, tt.wantMsg, s.Snapshot().Err)
		})
	}
}

func TestVerify_MatchAndMismatch(t *testing.T) {
	s := New(algorithms.SHA256, nil)
	s.SetInput("hello")

	v, err := s.Verify(context.Background(), "  "+strings.ToUpper(helloSHA256))
	require.NoError(t, err)
	assert.True(t, v.IsMatch)

	v, err = s.Verify(context.Background(), strings.Repeat("0", 64))
	require.NoError(t, err)
	assert.False(t, v.IsMatch)
	require.NotNil(t, s.Snapshot().Verification)
	assert.False(t, s.Snapshot().Verification.IsMatch)
}

func TestClearResultsAndError(t *testing.T) {
	s := New(algorithms.SHA512, nil)
	s.SetInput("hello")
	_, err := s.Generate(context.Background())
	require.NoError(t, err)

	s.SetInput("")
	_, _ = s.Generate(context.Background())
	assert.Equal(t, MsgEmptyHashInput, s.Snapshot().Err)
	assert.NotNil(t, s.Snapshot().Digest, "validation failure keeps the previous digest")

	s.ClearError()
	assert.Empty(t, s.Snapshot().Err)
	assert.NotNil(t, s.Snapshot().Digest)

	s.ClearResults()
	snap := s.Snapshot()
	assert.Nil(t, snap.Digest)
	assert.Nil(t, snap.Verification)
}

func TestSession_Concurrent(t *testing.T) {
	s := New(algorithms.BLAKE2b, nil)
	s.SetInput("hello")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Generate(context.Background())
			assert.NoError(t, err)
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	assert.False(t, s.InFlight())
}

func TestWorkbench_IndependentSessions(t *testing.T) {
	w, err := NewWorkbench(algorithms.SHA256, nil)
	require.NoError(t, err)
	assert.Equal(t, algorithms.SHA256, w.ActiveAlgorithm())

	w.Active().SetInput("one")
	require.NoError(t, w.Select(algorithms.SHA3256))
	assert.Equal(t, algorithms.SHA3256, w.ActiveAlgorithm())
	assert.Empty(t, w.Active().Snapshot().Input)

	assert.Equal(t, "one", w.Session(algorithms.SHA256).Snapshot().Input)
	assert.Nil(t, w.Session(algorithms.ID("nope")))
	assert.Error(t, w.Select(algorithms.ID("nope")))
}

func TestWorkbench_EachSession(t *testing.T) {
	w, err := NewWorkbench(algorithms.BLAKE2b, nil)
	require.NoError(t, err)

	var seen []algorithms.ID
	err = w.EachSession(func(id algorithms.ID, s *Session) error {
		seen = append(seen, id)
		assert.Equal(t, id, s.Snapshot().Algorithm)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, algorithms.All(), seen)

	stop := errors.New("stop")
	count := 0
	err = w.EachSession(func(algorithms.ID, *Session) error {
		count++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}

func TestNewWorkbench_RejectsUnknown(t *testing.T) {
	_, err := NewWorkbench(algorithms.ID("crc32"), nil)
	assert.Error(t, err)
}
