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
package format

import (
	"strconv"
	"strings"

	"github.com/afele/liberty/pkg/lex"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// quoteIfNeeded wraps s in double quotes when it is empty or contains any
// character the lexer can't read back as part of an unquoted word (anything
// but letters, digits, '_', '.', '/', '+' and '-'), and otherwise returns it
// verbatim.
func quoteIfNeeded(s string) string {
	if s == "" {
		return strconv.Quote(s)
	}

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '/', r == '+', r == '-':
		default:
			return strconv.Quote(s)
		}
	}

	return s
}

// valueText renders one parsed synt.Value back to source text, quoting it
// only if it was originally a quoted string -- preserving the author's
// choice rather than second-guessing it.
func valueText(v synt.Value) string {
	if v.Kind == lex.QuotedString {
		return strconv.Quote(v.Text)
	}

	return v.Text
}

func valueTexts(vs []synt.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = valueText(v)
	}

	return out
}

// formatFloat renders a value.Float with its shortest round-trip text,
// per spec.md §4.8.
func formatFloat(f value.Float) string {
	return f.Format()
}

func formatFloats(fs []value.Float) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}

	return strings.Join(parts, ", ")
}

func formatFloatSlice(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}
