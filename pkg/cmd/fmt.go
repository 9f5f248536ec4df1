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

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] liberty_file",
	Short: "canonically reformat a Liberty file.",
	Long:  "Parse a Liberty (.lib) file and re-emit it in canonical form (spec.md §4.8), either to stdout or in place.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		path := args[0]
		cfg := parseConfigFromFlags(cmd)

		lib, diags, err := liberty.ParseFileWithConfig(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
			os.Exit(1)
		}

		printDiagnostics(path, diags)

		if diags.HasStructural() {
			os.Exit(1)
		}

		out := liberty.String(lib)

		if GetFlag(cmd, "write") {
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
				os.Exit(1)
			}

			return
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolP("write", "w", false, "write the reformatted output back to the input file")
}
