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

var parseCmd = &cobra.Command{
	Use:   "parse [flags] liberty_file(s)",
	Short: "parse Liberty file(s) and report any diagnostics.",
	Long:  "Parse one or more Liberty (.lib) files, reporting every accumulated diagnostic and a per-file cell count.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		cfg := parseConfigFromFlags(cmd)
		failed := false

		for _, path := range args {
			lib, diags, err := liberty.ParseFileWithConfig(path, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
				failed = true

				continue
			}

			printDiagnostics(path, diags)

			if diags.HasStructural() {
				failed = true
			}

			fmt.Printf("%s: library %q, %d cell(s)\n", path, lib.Name, lib.Cells.Len())
		}

		if failed {
			os.Exit(1)
		}
	},
}

func parseConfigFromFlags(cmd *cobra.Command) liberty.ParseConfig {
	cfg := liberty.DefaultConfig()
	cfg.LegacyStarComment = !GetFlag(cmd, "no-legacy-star-comment")
	cfg.WarnOnOverwrite = GetFlag(cmd, "warn-on-overwrite")

	return cfg
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
