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
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

// Interface is implemented by every option set that registers flags.
type Interface interface {
	AddFlags(cmd *cobra.Command)
}

// FlagAdder is implemented by any flag group that can register itself to a cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// AddAllFlags is a helper function to register multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}

// SourceKind says where the bytes to hash come from.
type SourceKind string

const (
	SourceText  SourceKind = "text"
	SourceFile  SourceKind = "file"
	SourceStdin SourceKind = "stdin"
)

// StdinPath is the --file value that selects standard input.
const StdinPath = "-"

// Source is a resolved input.
type Source struct {
	Kind SourceKind
	// Text is set for SourceText.
	Text string
	// Path is set for SourceFile.
	Path string
}

// InputFlags selects the input of digest and verify.
type InputFlags struct {
	// Text is the literal text to hash.
	Text string
	// File is a path to hash, or "-" for stdin.
	File string
}

// AddFlags adds input flags to the cobra command.
func (o *InputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Text, "text", "", "Text to hash. May also be given as the positional argument.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "File to hash, or - for stdin.")
	_ = cmd.MarkFlagFilename("file")
}

// Resolve picks the input from the flags and the optional positional argument.
func (o *InputFlags) Resolve(args []string) (Source, error) {
	hasArg := len(args) > 0
	hasText := o.Text != ""

	if hasArg && hasText {
		return Source{}, hashsuite.NewValidationError("input", "give text either as an argument or with --text, not both")
	}
	if o.File != "" {
		if hasArg || hasText {
			return Source{}, hashsuite.NewValidationError("input", "--file cannot be combined with text input")
		}
		if o.File == StdinPath {
			return Source{Kind: SourceStdin}, nil
		}
		return Source{Kind: SourceFile, Path: o.File}, nil
	}

	text := o.Text
	if hasArg {
		text = args[0]
	}
	return Source{Kind: SourceText, Text: text}, nil
}

// AlgorithmFlags selects the digest algorithm.
type AlgorithmFlags struct {
	Algorithm string
}

// AddFlags adds the algorithm flag with shell completion of the known names.
func (o *AlgorithmFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", algorithms.Default.String(),
		fmt.Sprintf("Digest algorithm (%s).", strings.Join(algorithms.Names(), ", ")))
	_ = cmd.RegisterFlagCompletionFunc("algorithm", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return algorithms.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve returns the algorithm after flag, environment and config file
// precedence has been applied.
func (o *AlgorithmFlags) Resolve(ro *RootOptions) (algorithms.ID, error) {
	name := ro.Value("algorithm")
	if name == "" {
		name = o.Algorithm
	}
	id, err := algorithms.Parse(name)
	if err != nil {
		return "", hashsuite.NewValidationError("algorithm", err.Error())
	}
	return id, nil
}

// ValidOutputFormats lists the valid --output values.
var ValidOutputFormats = []string{"text", "json"}

// OutputFlags selects how results are printed.
type OutputFlags struct {
	Output string
}

// AddFlags adds the output format flag.
func (o *OutputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "text", "Output format (text, json).")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ValidOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve returns the output format after flag, environment and config file
// precedence has been applied.
func (o *OutputFlags) Resolve(ro *RootOptions) (string, error) {
	format := strings.ToLower(ro.Value("output"))
	if format == "" {
		format = o.Output
	}
	if !slices.Contains(ValidOutputFormats, format) {
		return "", hashsuite.NewValidationError("output",
			fmt.Sprintf("%q is not one of %s", format, strings.Join(ValidOutputFormats, ", ")))
	}
	return format, nil
}
