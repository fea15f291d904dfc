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
	"github.com/spf13/cobra"

	"github.com/hashsuite/hashsuite/cmd/hashsuite/cli/options"
	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
)

// Algorithms creates the algorithms command, which lists the catalogue.
func Algorithms(ro *options.RootOptions) *cobra.Command {
	o := &options.AlgorithmsOptions{}

	cmd := &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algs"},
		Short:   "List the supported digest algorithms.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := o.OutputFlags.Resolve(ro)
			if err != nil {
				return withExitCode(err)
			}
			return writeCatalogue(cmd.OutOrStdout(), format, algorithms.Catalogue())
		},
	}

	o.AddFlags(cmd)
	return cmd
}
