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

// Package value holds the Liberty scalar value model: a non-NaN float
// newtype with IEEE-bit equality/hashing, integers, booleans, and the small
// closed enumerations (edges, timing sense/type, voltage units, side tags)
// that appear throughout the group data model.
package value

import (
	"errors"
	"math"
	"strconv"
)

// Float wraps a float64 that is guaranteed not to be NaN, so it can
// implement value equality (and be used as a map key) via its IEEE bit
// pattern rather than IEEE comparison semantics (where NaN != NaN).
type Float struct {
	bits uint64
}

// ErrNaN is returned by NewFloat when given a NaN value.
var ErrNaN = errors.New("liberty: NaN is not a valid Liberty scalar")

// NewFloat constructs a Float, rejecting NaN.
func NewFloat(f float64) (Float, error) {
	if math.IsNaN(f) {
		return Float{}, ErrNaN
	}

	return Float{math.Float64bits(f)}, nil
}

// MustFloat is NewFloat but panics on NaN; used for compile-time constants.
func MustFloat(f float64) Float {
	v, err := NewFloat(f)
	if err != nil {
		panic(err)
	}

	return v
}

// Value returns the underlying float64.
func (f Float) Value() float64 {
	return math.Float64frombits(f.bits)
}

// Equal compares two Floats by IEEE bit pattern, so +0.0 and -0.0 compare
// unequal but repeated parses of the same literal always compare equal.
func (f Float) Equal(g Float) bool {
	return f.bits == g.bits
}

// Hash returns a value suitable for use as (part of) a map/hash key.
func (f Float) Hash() uint64 {
	return f.bits
}

// ParseFloat parses Liberty numeric syntax (decimal or scientific) into a
// Float.
func ParseFloat(s string) (Float, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}, err
	}

	return NewFloat(v)
}

// Format renders the float using the shortest round-trip representation, so
// repeated parse/format cycles stabilize after one pass (spec.md §8
// property 1).
func (f Float) Format() string {
	return strconv.FormatFloat(f.Value(), 'g', -1, 64)
}

// String implements fmt.Stringer.
func (f Float) String() string {
	return f.Format()
}
