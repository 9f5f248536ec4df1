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
package lut

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMultiRowComplexBuildsRowMajor covers spec.md §8 scenario S3: a
// 3x2-shaped table built from two index rows and one flat slice of six
// row-major values keeps that order, and a knot-point lookup returns the
// exact stored value.
func TestMultiRowComplexBuildsRowMajor(t *testing.T) {
	tbl := Build(nil, [][]float64{{1, 2, 3}, {10, 20}}, []float64{1, 2, 3, 4, 5, 6})

	require.True(t, tbl.Valid)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, tbl.Values)

	got, err := tbl.Lookup(2, 10)
	require.NoError(t, err)
	require.InDelta(t, 3, got, 1e-9)
}

func TestLookupInterpolatesBetweenKnots(t *testing.T) {
	tbl := Build(nil, [][]float64{{0, 10}}, []float64{0, 100})

	got, err := tbl.Lookup(5)
	require.NoError(t, err)
	require.InDelta(t, 50, got, 1e-9)
}

func TestLookupExtrapolatesBeyondKnots(t *testing.T) {
	tbl := Build(nil, [][]float64{{0, 10}}, []float64{0, 100})

	got, err := tbl.Lookup(20)
	require.NoError(t, err)
	require.InDelta(t, 200, got, 1e-9)
}

func TestBuildInvalidWhenShapeMismatched(t *testing.T) {
	tbl := Build(nil, [][]float64{{1, 2, 3}}, []float64{1, 2})

	require.False(t, tbl.Valid)
	require.Error(t, tbl.Validate())
}

func TestTemplateSuppliesDefaultIndicesUnlessOverridden(t *testing.T) {
	tmpl := &Template{
		Name:           "delay_template_3x2",
		GroupName:      "lu_table_template",
		Variables:      []Variable{InputNetTransition, TotalOutputNetCapacitance},
		DefaultIndices: [][]float64{{1, 2, 3}, {10, 20}},
	}

	tbl := Build(tmpl, nil, []float64{1, 2, 3, 4, 5, 6})

	require.True(t, tbl.Valid)
	require.Equal(t, tmpl.DefaultIndices, tbl.Indices)

	overridden := Build(tmpl, [][]float64{nil, {100, 200}}, []float64{1, 2, 3, 4, 5, 6})
	require.True(t, overridden.Valid)
	require.Equal(t, [][]float64{{1, 2, 3}, {100, 200}}, overridden.Indices)
}

func TestRegistryKeepsFirstOnDuplicateName(t *testing.T) {
	r := NewRegistry()
	first := &Template{Name: "t1", Variables: []Variable{InputNetTransition}}
	second := &Template{Name: "t1", Variables: []Variable{TotalOutputNetCapacitance}}

	require.True(t, r.Add(first))
	require.False(t, r.Add(second))

	got, ok := r.Resolve("t1")
	require.True(t, ok)
	require.Same(t, first, got)
}
