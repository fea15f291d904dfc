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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/hashsuite/hashsuite/cmd/hashsuite/cli/options"
)

// New returns the root hashsuite command with every subcommand attached.
func New() *cobra.Command {
	ro := &options.RootOptions{}

	cmd := &cobra.Command{
		Use:               "hashsuite",
		Short:             "Compute and verify SHA-256, SHA-512, SHA3-256 and BLAKE2b digests.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ro.LogOutput = cmd.ErrOrStderr()
			return withExitCode(ro.Load(cmd))
		},
	}
	ro.AddFlags(cmd)
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Add sub-commands.
	cmd.AddCommand(Digest(ro))
	cmd.AddCommand(Verify(ro))
	cmd.AddCommand(Algorithms(ro))
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}

// normalizeFlagName accepts underscores in place of dashes, so --log_level
// is --log-level.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
