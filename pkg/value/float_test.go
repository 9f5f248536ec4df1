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
package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFloatRejectsNaN(t *testing.T) {
	_, err := NewFloat(nan())
	require.ErrorIs(t, err, ErrNaN)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestFloatEqualityByBitPattern(t *testing.T) {
	a := MustFloat(0.1)
	b := MustFloat(0.1)
	require.True(t, a.Equal(b))

	pos := MustFloat(0)
	neg := MustFloat(math.Copysign(0, -1)) // a distinct IEEE bit pattern from +0.0

	require.NotEqual(t, pos.Hash(), neg.Hash())
}

// TestFormatRoundTripsToShortestRepresentation covers spec.md §8 property
// 1: repeated parse/format cycles stabilize after one pass.
func TestFormatRoundTripsToShortestRepresentation(t *testing.T) {
	f, err := ParseFloat("1.5")
	require.NoError(t, err)
	require.Equal(t, "1.5", f.Format())

	reparsed, err := ParseFloat(f.Format())
	require.NoError(t, err)
	require.True(t, f.Equal(reparsed))
}

func TestParseTimeUnitAcceptsKnownSuffixes(t *testing.T) {
	for _, ok := range []string{"1ns", "10ps", "1PS", "100fs"} {
		require.NoError(t, ParseTimeUnit(ok), ok)
	}
}

func TestParseTimeUnitRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"not_a_unit", "", "ns", "1"} {
		require.Error(t, ParseTimeUnit(bad), bad)
	}
}

func TestParseVoltageUnit(t *testing.T) {
	v, err := ParseVoltageUnit("1mV")
	require.NoError(t, err)
	require.Equal(t, MilliVolt, v)

	_, err = ParseVoltageUnit("not_a_unit")
	require.Error(t, err)
}
