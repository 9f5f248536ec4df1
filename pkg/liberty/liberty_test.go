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
package liberty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundTripMinimalLibrary covers spec.md §8 scenario S1: after parse
// and canonical format, the emitted text contains the pin Y function
// attribute quoted exactly as written.
func TestRoundTripMinimalLibrary(t *testing.T) {
	src := `library(demo) { delay_model : table_lookup; time_unit : "1ns"; ` +
		`cell(INV) { pin(A){direction:input;} pin(Y){direction:output; function:"!A";} } }`

	lib, diags := Parse(src)
	require.True(t, diags.IsEmpty())

	out := String(lib)
	require.Contains(t, out, `function : "!A" ;`)
	require.Contains(t, out, "library(demo) {")
	require.Contains(t, out, "cell(INV) {")
}

// TestReformattingIsIdempotent formats a library twice and requires the
// second pass to produce byte-identical output to the first, the
// canonical-formatter analogue of a fixed point.
func TestReformattingIsIdempotent(t *testing.T) {
	src := `library(demo) { time_unit : "1ns"; cell(BUF) { pin(A){direction:input;} ` +
		`pin(Y){direction:output; function:"A";} } }`

	lib, diags := Parse(src)
	require.True(t, diags.IsEmpty())

	first := String(lib)

	reparsed, diags := Parse(first)
	require.True(t, diags.IsEmpty())

	second := String(reparsed)
	require.Equal(t, first, second)
}

// TestRoundTripMultiValueTable covers spec.md §8 Property 1 for a real
// cell_rise table: index_1/index_2/values rows must survive a
// parse-format-reparse cycle with their numeric content unchanged, rather
// than being truncated to their first comma-separated token.
func TestRoundTripMultiValueTable(t *testing.T) {
	src := `library(demo) { time_unit : "1ns"; cell(INV) { pin(A){direction:input;} ` +
		`pin(Y){direction:output; function:"!A";` +
		`timing(){related_pin:"A"; cell_rise(){` +
		`index_1("1,2,3"); index_2("10,20"); values("1,2,3,4,5,6");} } } } }`

	lib, diags := Parse(src)
	require.True(t, diags.IsEmpty())

	out := String(lib)

	reparsed, diags := Parse(out)
	require.True(t, diags.IsEmpty())

	y, ok := reparsed.Cells.Get("INV")
	require.True(t, ok)

	pin, ok := y.Pins.Get("Y")
	require.True(t, ok)
	require.Equal(t, 1, pin.Timings.Len())

	timing := pin.Timings.InOrder()[0]
	require.NotNil(t, timing.CellRise)
	require.Equal(t, []float64{1, 2, 3}, timing.CellRise.Indices[0])
	require.Equal(t, []float64{10, 20}, timing.CellRise.Indices[1])
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, timing.CellRise.Values)
}

func TestParseWithConfigDisablesLegacyStarComment(t *testing.T) {
	src := "* a leading star comment\nlibrary(demo) {}\n"

	cfg := DefaultConfig()
	cfg.LegacyStarComment = false

	lib, diags := ParseWithConfig(src, cfg)
	require.Nil(t, lib)
	require.True(t, diags.HasStructural())
}

func TestParseFileReportsReadError(t *testing.T) {
	_, _, err := ParseFile("/nonexistent/path/does-not-exist.lib")
	require.Error(t, err)
}

func TestStringOmitsTrailingGarbage(t *testing.T) {
	lib, diags := Parse(`library(demo) {}`)
	require.True(t, diags.IsEmpty())

	out := String(lib)
	require.True(t, strings.HasSuffix(out, "}\n"))
}
