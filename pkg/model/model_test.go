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
package model

import (
	"testing"

	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
	"github.com/stretchr/testify/require"
)

func buildSrc(t *testing.T, src string) (*Library, diag.Diagnostics) {
	t.Helper()

	diags := diag.NewBuilder()
	p := synt.NewParser(src, true, diags)

	top, err := p.ParseLibrary()
	require.NoError(t, err)

	lib, buildDiags := Build(top, DefaultConfig())
	for _, e := range buildDiags.Entries() {
		diags.ReportErr(e)
	}

	return lib, diags.Build()
}

// TestUnknownAttributeSurvives covers spec.md §8 scenario S4: an unknown
// simple attribute on the library and an unknown complex attribute on a
// cell both survive into their owning Attributes bag verbatim, without
// any diagnostic beyond discoverability.
func TestUnknownAttributeSurvives(t *testing.T) {
	lib, diags := buildSrc(t, `library(x){ foo : 42; cell(y){ bar(1,2); } }`)

	require.True(t, diags.IsEmpty())

	vals, ok := lib.Attributes.Get("foo")
	require.True(t, ok)
	require.Len(t, vals, 1)
	require.Equal(t, "42", vals[0].RawSimple.Value.Text)

	cell, ok := lib.Cells.Get("y")
	require.True(t, ok)

	barVals, ok := cell.Attributes.Get("bar")
	require.True(t, ok)
	require.Len(t, barVals, 1)
	require.Equal(t, []string{"1", "2"}, valueTexts(barVals[0].RawComplex.Values))
}

// TestTypedValueErrorRecovers covers spec.md §8 scenario S5: a malformed
// time_unit still lets the parse succeed, records a TypedValue diagnostic,
// and keeps the raw text reachable via the fallback bag.
func TestTypedValueErrorRecovers(t *testing.T) {
	lib, diags := buildSrc(t, `library(x){ time_unit : "not_a_unit"; cell(y){} }`)

	require.False(t, diags.IsEmpty())
	require.Equal(t, diag.TypedValue, diags.Entries()[0].Kind())
	require.Equal(t, "", lib.Units.TimeUnit)

	vals, ok := lib.Attributes.Get("time_unit")
	require.True(t, ok)
	require.Equal(t, "not_a_unit", vals[0].RawSimple.Value.Text)
}

func TestValidTimeUnitIsAccepted(t *testing.T) {
	lib, diags := buildSrc(t, `library(x){ time_unit : "1ns"; }`)

	require.True(t, diags.IsEmpty())
	require.Equal(t, "1ns", lib.Units.TimeUnit)

	_, ok := lib.Attributes.Get("time_unit")
	require.False(t, ok)
}

// TestMinimalLibraryRoundTrips covers the parse half of spec.md §8 scenario
// S1: pin Y's boolean function resolves against the cell's node BDD and
// agrees with direct truth-table evaluation.
func TestMinimalLibraryRoundTrips(t *testing.T) {
	lib, diags := buildSrc(t, `library(demo) { delay_model : table_lookup; time_unit : "1ns"; `+
		`cell(INV) { pin(A){direction:input;} pin(Y){direction:output; function:"!A";} } }`)

	require.True(t, diags.IsEmpty())
	require.Equal(t, "demo", lib.Name)
	require.Equal(t, "table_lookup", lib.DelayModel)

	cell, ok := lib.Cells.Get("INV")
	require.True(t, ok)

	y, ok := cell.Pins.Get("Y")
	require.True(t, ok)
	require.NotNil(t, y.Function)

	table, ref := y.Function.BDD()
	_, ok = table.Var("A")
	require.True(t, ok)

	require.True(t, table.Eval(ref, []bool{false}))
	require.False(t, table.Eval(ref, []bool{true}))
	require.Equal(t, "!A", y.Function.String())
}

func valueTexts(vs []synt.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Text
	}

	return out
}
