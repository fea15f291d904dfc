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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashsuite/hashsuite/cmd/hashsuite/cli/options"
	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
	"github.com/hashsuite/hashsuite/pkg/session"
	"github.com/hashsuite/hashsuite/pkg/tracing"
	"github.com/hashsuite/hashsuite/pkg/utils"
)

// Digest creates the digest command.
func Digest(ro *options.RootOptions) *cobra.Command {
	o := &options.DigestOptions{}

	long := `Compute the digest of TEXT, of a file given with --file, or of stdin
with --file -.

A single digest is printed as bare lowercase hex. With --all every supported
algorithm is run and the results are printed as a table.`

	cmd := &cobra.Command{
		Use:   "digest [OPTIONS] [TEXT]",
		Short: "Compute a digest.",
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runDigest(cmd, ro, o, args))
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runDigest(cmd *cobra.Command, ro *options.RootOptions, o *options.DigestOptions, args []string) error {
	src, err := o.InputFlags.Resolve(args)
	if err != nil {
		return err
	}
	format, err := o.OutputFlags.Resolve(ro)
	if err != nil {
		return err
	}
	all := ro.Bool("all")
	alg := algorithms.Default
	if !all {
		if alg, err = o.AlgorithmFlags.Resolve(ro); err != nil {
			return err
		}
	}

	obs := ro.NewObservability()
	hasher := obs.NewHasher()
	attrs := map[string]interface{}{
		"hashsuite.algorithm": alg.String(),
		"hashsuite.all":       all,
		"hashsuite.source":    string(src.Kind),
		"hashsuite.output":    format,
	}

	var results []hashsuite.DigestResult
	err = tracing.Run(cmd.Context(), "Digest", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		ids := []algorithms.ID{alg}
		if all {
			ids = algorithms.All()
		}

		var err error
		if src.Kind == options.SourceText {
			results, err = digestText(ctx, hasher, src.Text, alg, all)
		} else {
			results, err = digestSource(ctx, cmd, hasher, src, ids)
		}
		return err
	})
	if err != nil {
		return err
	}

	obs.Logger.WithFields(map[string]interface{}{
		"algorithms": len(results),
		"source":     string(src.Kind),
	}).Debugln("digest complete")

	return writeDigests(cmd.OutOrStdout(), format, results, all)
}

// digestText runs text input through the session layer so that blank input
// is rejected the same way as in an interactive session.
func digestText(ctx context.Context, hasher *hashsuite.Hasher, text string, alg algorithms.ID, all bool) ([]hashsuite.DigestResult, error) {
	wb, err := session.NewWorkbench(alg, hasher)
	if err != nil {
		return nil, hashsuite.NewValidationError("algorithm", err.Error())
	}

	if !all {
		s := wb.Active()
		s.SetInput(text)
		res, err := s.Generate(ctx)
		if err != nil {
			return nil, err
		}
		return []hashsuite.DigestResult{res}, nil
	}

	var results []hashsuite.DigestResult
	err = wb.EachSession(func(_ algorithms.ID, s *session.Session) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.SetInput(text)
		res, err := s.Generate(ctx)
		if err != nil {
			return err
		}
		results = append(results, res)
		return nil
	})
	return results, err
}

// digestSource streams a file or stdin through every algorithm in ids.
// Stdin is buffered when more than one algorithm needs it.
func digestSource(ctx context.Context, cmd *cobra.Command, hasher *hashsuite.Hasher, src options.Source, ids []algorithms.ID) ([]hashsuite.DigestResult, error) {
	var buffered []byte
	if src.Kind == options.SourceStdin && len(ids) > 1 {
		var err error
		if buffered, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}

	results := make([]hashsuite.DigestResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			res hashsuite.DigestResult
			err error
		)
		switch {
		case buffered != nil:
			res, err = hasher.DigestReader(bytes.NewReader(buffered), id)
		case src.Kind == options.SourceStdin:
			res, err = hasher.DigestReader(cmd.InOrStdin(), id)
		default:
			res, err = digestFile(hasher, src.Path, id)
		}
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func digestFile(hasher *hashsuite.Hasher, path string, id algorithms.ID) (hashsuite.DigestResult, error) {
	if err := utils.ValidateFileExists("file", path); err != nil {
		return hashsuite.DigestResult{}, err
	}
	return hasher.DigestFile(path, id)
}

func openInput(path string) (*os.File, error) {
	if err := utils.ValidateFileExists("file", path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, hashsuite.NewValidationError("file", err.Error())
	}
	return f, nil
}
