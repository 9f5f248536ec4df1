// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/afele/liberty/pkg/liberty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd validates one or more Liberty files without producing any
// output beyond diagnostics, suitable for CI use.
var checkCmd = &cobra.Command{
	Use:   "check [flags] liberty_file(s)",
	Short: "validate Liberty file(s), exiting non-zero on error.",
	Long:  "Parse one or more Liberty (.lib) files and exit non-zero if any structural error (or, with --strict, any diagnostic) is found.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		strict := GetFlag(cmd, "strict")
		cfg := parseConfigFromFlags(cmd)
		failed := false

		for _, path := range args {
			_, diags, err := liberty.ParseFileWithConfig(path, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
				failed = true

				continue
			}

			printDiagnostics(path, diags)

			if diags.HasStructural() || (strict && !diags.IsEmpty()) {
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "fail on any diagnostic, not just structural errors")
}
