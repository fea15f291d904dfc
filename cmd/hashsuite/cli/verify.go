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
	"context"

	"github.com/spf13/cobra"

	"github.com/hashsuite/hashsuite/cmd/hashsuite/cli/options"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
	"github.com/hashsuite/hashsuite/pkg/session"
	"github.com/hashsuite/hashsuite/pkg/tracing"
)

// Verify creates the verify command. A mismatch is reported on stdout and
// the command exits with ExitMismatch.
func Verify(ro *options.RootOptions) *cobra.Command {
	o := &options.VerifyOptions{}

	long := `Verify that TEXT, a file given with --file, or stdin (--file -) has the
digest given with --digest.

The expected digest is trimmed and lowercased before comparison. A malformed
or wrong-length digest is a mismatch. Exit codes: 0 match, 1 mismatch,
2 invalid input, 3 digest failure.`

	cmd := &cobra.Command{
		Use:   "verify [OPTIONS] [TEXT] --digest HEX",
		Short: "Verify a digest.",
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runVerify(cmd, ro, o, args))
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runVerify(cmd *cobra.Command, ro *options.RootOptions, o *options.VerifyOptions, args []string) error {
	src, err := o.InputFlags.Resolve(args)
	if err != nil {
		return err
	}
	format, err := o.OutputFlags.Resolve(ro)
	if err != nil {
		return err
	}
	alg, err := o.AlgorithmFlags.Resolve(ro)
	if err != nil {
		return err
	}

	obs := ro.NewObservability()
	hasher := obs.NewHasher()
	attrs := map[string]interface{}{
		"hashsuite.algorithm": alg.String(),
		"hashsuite.source":    string(src.Kind),
		"hashsuite.output":    format,
	}

	var res hashsuite.VerificationResult
	err = tracing.Run(cmd.Context(), "Verify", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		var err error
		switch src.Kind {
		case options.SourceText:
			s := session.New(alg, hasher)
			s.SetInput(src.Text)
			res, err = s.Verify(ctx, o.Digest)
		case options.SourceStdin:
			res, err = hasher.VerifyReader(cmd.InOrStdin(), o.Digest, alg)
		default:
			f, openErr := openInput(src.Path)
			if openErr != nil {
				return openErr
			}
			defer f.Close()
			res, err = hasher.VerifyReader(f, o.Digest, alg)
		}
		return err
	})
	if err != nil {
		return err
	}

	obs.Logger.WithFields(map[string]interface{}{
		"algorithm": alg.String(),
		"match":     res.IsMatch,
	}).Debugln("verification complete")

	if err := writeVerification(cmd.OutOrStdout(), format, res); err != nil {
		return err
	}
	if !res.IsMatch {
		return ErrMismatch
	}
	return nil
}
