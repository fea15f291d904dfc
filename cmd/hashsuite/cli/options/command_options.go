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

package options

import (
	"github.com/spf13/cobra"
)

// DigestOptions are the flags of the digest command.
type DigestOptions struct {
	InputFlags
	AlgorithmFlags
	OutputFlags
	All bool // --all
}

var _ Interface = (*DigestOptions)(nil)

func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.InputFlags, &o.AlgorithmFlags, &o.OutputFlags)
	cmd.Flags().BoolVar(&o.All, "all", false, "Compute the digest with every supported algorithm.")
	cmd.MarkFlagsMutuallyExclusive("all", "algorithm")
}

// VerifyOptions are the flags of the verify command.
type VerifyOptions struct {
	InputFlags
	AlgorithmFlags
	OutputFlags
	Digest string // --digest HEX (required)
}

var _ Interface = (*VerifyOptions)(nil)

func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.InputFlags, &o.AlgorithmFlags, &o.OutputFlags)
	cmd.Flags().StringVarP(&o.Digest, "digest", "d", "", "Expected digest in hex. Case and surrounding whitespace are ignored.")
	_ = cmd.MarkFlagRequired("digest")
}

// AlgorithmsOptions are the flags of the algorithms command.
type AlgorithmsOptions struct {
	OutputFlags
}

var _ Interface = (*AlgorithmsOptions)(nil)

func (o *AlgorithmsOptions) AddFlags(cmd *cobra.Command) {
	o.OutputFlags.AddFlags(cmd)
}
