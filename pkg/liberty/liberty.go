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

// Package liberty is the top-level "parse then act" entry point (spec.md
// §1): it wires pkg/synt's parser to pkg/model's builder and pkg/format's
// writer, the way the teacher's pkg/cmd/compile.go wires its own
// lexer/parser stack to a CompilationConfig before ever calling a command.
package liberty

import (
	"os"

	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/model"
	"github.com/afele/liberty/pkg/synt"
	log "github.com/sirupsen/logrus"
)

// ParseConfig re-exports pkg/model's dialect flags so callers never need to
// import pkg/model directly just to configure a parse.
type ParseConfig = model.ParseConfig

// DefaultConfig returns the documented defaults for both Open Question
// flags (spec.md §9).
func DefaultConfig() ParseConfig {
	return model.DefaultConfig()
}

// Parse parses Liberty source text with the default dialect configuration.
func Parse(src string) (*model.Library, diag.Diagnostics) {
	return ParseWithConfig(src, DefaultConfig())
}

// ParseWithConfig parses Liberty source text, threading a single
// diag.Builder through the lexer/parser/model-build pipeline so every
// diagnostic — lexical, structural, or semantic — is reported in one
// ordered Diagnostics value.
func ParseWithConfig(src string, cfg ParseConfig) (*model.Library, diag.Diagnostics) {
	diags := diag.NewBuilder()
	parser := synt.NewParser(src, cfg.LegacyStarComment, diags)

	top, err := parser.ParseLibrary()
	if err != nil {
		log.Errorf("liberty: %s", err)
		diags.Report(diag.Span{}, diag.Structural, err.Error())

		return nil, diags.Build()
	}

	lib, buildDiags := model.Build(top, cfg)
	for _, e := range buildDiags.Entries() {
		diags.ReportErr(e)
	}

	return lib, diags.Build()
}

// ParseFile reads and parses a Liberty file from disk with the default
// dialect configuration.
func ParseFile(path string) (*model.Library, diag.Diagnostics, error) {
	return ParseFileWithConfig(path, DefaultConfig())
}

// ParseFileWithConfig reads and parses a Liberty file from disk.
func ParseFileWithConfig(path string, cfg ParseConfig) (*model.Library, diag.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Diagnostics{}, err
	}

	lib, diags := ParseWithConfig(string(data), cfg)

	return lib, diags, nil
}
