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
	"fmt"
	"sort"
)

// Lookup performs per-axis locate-and-interpolate: where xs[i] lies between
// two knots of Indices[i], linear interpolation is used on that axis; at
// the boundaries, linear extrapolation from the last two knots is used
// instead. The combined result is the tensor-product interpolation over all
// axes (spec.md §4.5).
func (t TableLookUp) Lookup(xs ...float64) (float64, error) {
	if !t.Valid {
		return 0, fmt.Errorf("table is invalid: %v", t.Validate())
	}

	if len(xs) != len(t.Indices) {
		return 0, fmt.Errorf("expected %d coordinates, got %d", len(t.Indices), len(xs))
	}

	return t.interpolate(0, xs, nil)
}

// interpolate recursively fixes one axis at a time, accumulating the
// remaining axes' flat-array strides in `fixed` (one resolved integer index
// per already-bound axis, outermost first).
func (t TableLookUp) interpolate(axis int, xs []float64, fixed []int) (float64, error) {
	if axis == len(t.Indices) {
		return t.valueAt(fixed)
	}

	knots := t.Indices[axis]
	if len(knots) == 0 {
		return 0, fmt.Errorf("axis %d has no index knots", axis)
	}

	if len(knots) == 1 {
		return t.interpolate(axis+1, xs, append(fixed, 0))
	}

	lo, hi, frac := locate(knots, xs[axis])

	loVal, err := t.interpolate(axis+1, xs, append(append([]int{}, fixed...), lo))
	if err != nil {
		return 0, err
	}

	hiVal, err := t.interpolate(axis+1, xs, append(append([]int{}, fixed...), hi))
	if err != nil {
		return 0, err
	}

	return loVal + frac*(hiVal-loVal), nil
}

// locate finds the bracketing knot indices for x and the fractional
// position between them. Values at or beyond the ends extrapolate linearly
// using the outermost two knots.
func locate(knots []float64, x float64) (lo, hi int, frac float64) {
	n := len(knots)

	i := sort.SearchFloat64s(knots, x)

	switch {
	case i <= 0:
		lo, hi = 0, 1
	case i >= n:
		lo, hi = n-2, n-1
	default:
		lo, hi = i-1, i
	}

	span := knots[hi] - knots[lo]
	if span == 0 {
		return lo, hi, 0
	}

	return lo, hi, (x - knots[lo]) / span
}

// valueAt returns the value at the fully-resolved multi-index, computing
// the row-major flat offset from the table's shape.
func (t TableLookUp) valueAt(idx []int) (float64, error) {
	offset := 0

	for axis, i := range idx {
		offset = offset*len(t.Indices[axis]) + i
	}

	if offset < 0 || offset >= len(t.Values) {
		return 0, fmt.Errorf("computed offset %d out of range [0,%d)", offset, len(t.Values))
	}

	return t.Values[offset], nil
}
