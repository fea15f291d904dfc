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
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/hashsuite/hashsuite/pkg/hashing/algorithms"
	"github.com/hashsuite/hashsuite/pkg/hashsuite"
)

const outputJSON = "json"

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeDigests prints a single digest as bare hex so it can be piped, and
// several as an algorithm/digest table.
func writeDigests(w io.Writer, format string, results []hashsuite.DigestResult, many bool) error {
	if format == outputJSON {
		if !many && len(results) == 1 {
			return writeJSON(w, results[0])
		}
		return writeJSON(w, results)
	}

	if !many && len(results) == 1 {
		_, err := fmt.Fprintln(w, results[0].HexDigest)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Algorithm, r.HexDigest)
	}
	return tw.Flush()
}

func writeVerification(w io.Writer, format string, v hashsuite.VerificationResult) error {
	if format == outputJSON {
		return writeJSON(w, v)
	}

	if v.IsMatch {
		_, err := fmt.Fprintf(w, "OK: %s digest matches\n", v.Algorithm)
		return err
	}
	_, err := fmt.Fprintf(w, "MISMATCH: %s\n  provided: %s\n  computed: %s\n",
		v.Algorithm, v.NormalizedProvidedDigest, v.ComputedDigest)
	return err
}

func writeCatalogue(w io.Writer, format string, infos []algorithms.Info) error {
	if format == outputJSON {
		return writeJSON(w, infos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBITS\tSECURITY\tUSE CASE")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", info.ID, info.OutputBits, info.SecurityLevel, info.UseCase)
	}
	return tw.Flush()
}
