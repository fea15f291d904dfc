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

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

const (
	helloSHA256  = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	helloSHA512  = "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043"
	helloSHA3256 = "3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392"
	helloBLAKE2b = "e4cfa39a3d37be31c59609e807970799caa68a19bfaa15135f165085e01d41a65ba1e1b146aeb6bd0092b49eac214c103ccfa3a365954bbbe52f74a2b3620c94"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *ExitError
	require.True(t, errors.As(err, &ee), "expected *ExitError, got %v", err)
	return ee.ExitCode()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDigest_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"positional default algorithm", []string{"digest", "hello"}, helloSHA256},
		{"text flag", []string{"digest", "--text", "hello"}, helloSHA256},
		{"sha512", []string{"digest", "-a", "sha512", "hello"}, helloSHA512},
		{"sha3 alias", []string{"digest", "--algorithm", "SHA3_256", "hello"}, helloSHA3256},
		{"blake2b", []string{"digest", "-a", "blake2b-512", "hello"}, helloBLAKE2b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestDigest_All(t *testing.T) {
	out, _, err := run(t, "", "digest", "--all", "hello")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	for i, want := range []string{helloSHA256, helloSHA512, helloSHA3256, helloBLAKE2b} {
		fields := strings.Fields(lines[i])
		require.Len(t, fields, 2)
		assert.Equal(t, algorithms.All()[i].String(), fields[0])
		assert.Equal(t, want, fields[1])
	}
}

func TestDigest_AllJSON(t *testing.T) {
	out, _, err := run(t, "", "digest", "--all", "-o", "json", "hello")
	require.NoError(t, err)

	var results []hashsuite.DigestResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)
	assert.Equal(t, algorithms.SHA256, results[0].Algorithm)
	assert.Equal(t, helloSHA256, results[0].HexDigest)
	assert.Equal(t, "hello", results[0].Input)
	assert.False(t, results[0].Timestamp.IsZero())
}

func TestDigest_SingleJSON(t *testing.T) {
	out, _, err := run(t, "", "digest", "-o", "json", "-a", "sha512", "hello")
	require.NoError(t, err)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "SHA-512", res["algorithm"])
	assert.Equal(t, helloSHA512, res["hash"])
}

func TestDigest_FileAndStdin(t *testing.T) {
	path := writeFile(t, "input.txt", "hello")

	out, _, err := run(t, "", "digest", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, helloSHA256+"\n", out)

	out, _, err = run(t, "hello", "digest", "-f", "-", "-a", "blake2b")
	require.NoError(t, err)
	assert.Equal(t, helloBLAKE2b+"\n", out)

	out, _, err = run(t, "hello", "digest", "--file", "-", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, helloSHA256)
	assert.Contains(t, out, helloSHA3256)

	out, _, err = run(t, "", "digest", "--file", path, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, helloSHA512)
}

func TestDigest_EmptyStdinIsValid(t *testing.T) {
	out, _, err := run(t, "", "digest", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855\n", out)
}

func TestDigest_ValidationExitCodes(t *testing.T) {
	path := writeFile(t, "input.txt", "hello")

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"blank text", []string{"digest", "   "}, "please enter text to hash"},
		{"no input", []string{"digest"}, "please enter text to hash"},
		{"unknown algorithm", []string{"digest", "-a", "md5", "hello"}, "unsupported hash algorithm"},
		{"text and argument", []string{"digest", "--text", "a", "b"}, "not both"},
		{"file and text", []string{"digest", "--file", path, "hello"}, "cannot be combined"},
		{"missing file", []string{"digest", "--file", filepath.Join(t.TempDir(), "nope")}, "invalid file"},
		{"directory", []string{"digest", "--file", t.TempDir()}, "is a directory"},
		{"bad output", []string{"digest", "-o", "xml", "hello"}, "invalid output"},
		{"bad log level", []string{"--log-level", "loud", "digest", "hello"}, "invalid log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitValidation, exitCode(t, err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, out)
		})
	}
}

func TestDigest_AllAndAlgorithmExclusive(t *testing.T) {
	_, _, err := run(t, "", "digest", "--all", "-a", "sha512", "hello")
	assert.Error(t, err)
}

func TestVerify_Match(t *testing.T) {
	out, _, err := run(t, "", "verify", "hello", "--digest", helloSHA256)
	require.NoError(t, err)
	assert.Equal(t, "OK: SHA-256 digest matches\n", out)

	out, _, err = run(t, "", "verify", "-a", "sha512", "--text", "hello", "-d", "  "+strings.ToUpper(helloSHA512)+"\n")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: SHA-512")
}

func TestVerify_Mismatch(t *testing.T) {
	altered := "0" + helloSHA256[1:]
	out, _, err := run(t, "", "verify", "hello", "--digest", altered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, ExitMismatch, exitCode(t, err))
	assert.Contains(t, out, "MISMATCH: SHA-256")
	assert.Contains(t, out, "computed: "+helloSHA256)
}

func TestVerify_MalformedDigestIsMismatch(t *testing.T) {
	_, _, err := run(t, "", "verify", "hello", "--digest", "not-hex")
	require.Error(t, err)
	assert.Equal(t, ExitMismatch, exitCode(t, err))
}

func TestVerify_JSON(t *testing.T) {
	out, _, err := run(t, "", "verify", "-o", "json", "hello", "--digest", strings.ToUpper(helloSHA256))
	require.NoError(t, err)

	var v hashsuite.VerificationResult
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.IsMatch)
	assert.Equal(t, helloSHA256, v.NormalizedProvidedDigest)
	assert.Equal(t, helloSHA256, v.ComputedDigest)
}

func TestVerify_FileAndStdin(t *testing.T) {
	path := writeFile(t, "input.txt", "hello")

	_, _, err := run(t, "", "verify", "--file", path, "--digest", helloSHA256)
	require.NoError(t, err)

	_, _, err = run(t, "hello", "verify", "--file", "-", "-a", "sha3-256", "--digest", helloSHA3256)
	require.NoError(t, err)

	_, _, err = run(t, "hello!", "verify", "--file", "-", "--digest", helloSHA256)
	assert.Equal(t, ExitMismatch, exitCode(t, err))
}

func TestVerify_ValidationExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"blank text", []string{"verify", " ", "--digest", helloSHA256}, "please enter text to verify"},
		{"blank digest", []string{"verify", "hello", "--digest", " \t"}, "please enter a digest to verify"},
		{"blank digest for stdin", []string{"verify", "--file", "-", "--digest", " "}, "provided digest is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "hello", tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitValidation, exitCode(t, err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestVerify_DigestRequired(t *testing.T) {
	_, _, err := run(t, "", "verify", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest")
}

func TestConfig_EnvironmentAndFile(t *testing.T) {
	t.Setenv("HASHSUITE_ALGORITHM", "sha512")

	out, _, err := run(t, "", "digest", "hello")
	require.NoError(t, err)
	assert.Equal(t, helloSHA512+"\n", out, "environment overrides the default")

	out, _, err = run(t, "", "digest", "-a", "sha256", "hello")
	require.NoError(t, err)
	assert.Equal(t, helloSHA256+"\n", out, "flag overrides the environment")

	cfg := writeFile(t, "hashsuite.yaml", "algorithm: blake2b\noutput: json\n")
	out, _, err = run(t, "", "--config", cfg, "digest", "hello")
	require.NoError(t, err)
	var res hashsuite.DigestResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, algorithms.SHA512, res.Algorithm, "environment overrides the config file")
}

func TestConfig_File(t *testing.T) {
	cfg := writeFile(t, "hashsuite.yaml", "algorithm: blake2b\noutput: json\n")

	out, _, err := run(t, "", "--config", cfg, "digest", "hello")
	require.NoError(t, err)

	var res hashsuite.DigestResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, algorithms.BLAKE2b, res.Algorithm)
	assert.Equal(t, helloBLAKE2b, res.HexDigest)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "digest", "hello")
	require.Error(t, err)
	assert.Equal(t, ExitValidation, exitCode(t, err))
}

func TestDebugLogging_OmitsInput(t *testing.T) {
	out, errOut, err := run(t, "", "--log-level", "debug", "digest", "topsecret")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 64)
	assert.Contains(t, errOut, "computed digest")
	assert.NotContains(t, errOut, "topsecret")

	_, errOut, err = run(t, "", "--log-level", "debug", "--log-format", "json", "digest", "topsecret")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"message":"computed digest"`)
}

func TestAlgorithms(t *testing.T) {
	out, _, err := run(t, "", "algorithms")
	require.NoError(t, err)
	for _, name := range algorithms.Names() {
		assert.Contains(t, out, name)
	}

	out, _, err = run(t, "", "algs", "-o", "json")
	require.NoError(t, err)
	var infos []algorithms.Info
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 4)
	assert.Equal(t, 512, infos[3].OutputBits)
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, withExitCode(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, withExitCode(plain))

	de := &hashsuite.DigestError{Algorithm: algorithms.SHA256, Message: "boom"}
	err := withExitCode(de)
	assert.Equal(t, ExitDigest, exitCode(t, err))
	assert.ErrorIs(t, err, de)

	again := withExitCode(err)
	assert.Same(t, err, again)
}

func TestFlagNormalization(t *testing.T) {
	_, errOut, err := run(t, "", "--log_level", "debug", "digest", "hello")
	require.NoError(t, err)
	assert.Contains(t, errOut, "computed digest")
}
