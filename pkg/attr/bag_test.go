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
package attr

import (
	"testing"

	"github.com/afele/liberty/pkg/synt"
	"github.com/stretchr/testify/require"
)

func TestBagPreservesFirstSeenNameOrderAndPerNameSourceOrder(t *testing.T) {
	bag := NewBag()
	bag.Add("b", BagValue{Kind: BagInt, Int: 1})
	bag.Add("a", BagValue{Kind: BagInt, Int: 2})
	bag.Add("b", BagValue{Kind: BagInt, Int: 3})

	require.Equal(t, []string{"b", "a"}, bag.Names())

	vals, ok := bag.Get("b")
	require.True(t, ok)
	require.Len(t, vals, 2)
	require.Equal(t, int64(1), vals[0].Int)
	require.Equal(t, int64(3), vals[1].Int)
}

func TestStashUnknownRoutesByNodeShape(t *testing.T) {
	bag := NewBag()

	simple := &synt.Simple{Name: "foo", Value: synt.Value{Text: "42"}}
	complex := &synt.Complex{Name: "bar", Values: []synt.Value{{Text: "1"}, {Text: "2"}}}
	group := &synt.Group{Name: "baz"}

	StashUnknown(bag, simple, nil, "cell")
	StashUnknown(bag, complex, nil, "cell")
	StashUnknown(bag, group, nil, "cell")

	fooVals, ok := bag.Get("foo")
	require.True(t, ok)
	require.Equal(t, BagRawSimple, fooVals[0].Kind)
	require.Same(t, simple, fooVals[0].RawSimple)

	barVals, ok := bag.Get("bar")
	require.True(t, ok)
	require.Equal(t, BagRawComplex, barVals[0].Kind)
	require.Same(t, complex, barVals[0].RawComplex)

	bazVals, ok := bag.Get("baz")
	require.True(t, ok)
	require.Equal(t, BagRawGroup, bazVals[0].Kind)
	require.Same(t, group, bazVals[0].RawGroup)
}

// TestStashUnknownUsesDeclaredDefineType covers spec.md §4.2's `define()`
// typed-fallback seam: a simple attribute with a declared type parses into
// that type's Bag slot instead of falling back to BagRawSimple.
func TestStashUnknownUsesDeclaredDefineType(t *testing.T) {
	bag := NewBag()
	defines := NewDefines()
	defines.Declare("cell", "my_flag", BagBool)

	StashUnknown(bag, &synt.Simple{Name: "my_flag", Value: synt.Value{Text: "true"}}, defines, "cell")

	vals, ok := bag.Get("my_flag")
	require.True(t, ok)
	require.Equal(t, BagBool, vals[0].Kind)
	require.True(t, vals[0].Bool)
}

func TestStashUnknownRecordsTypedErrOnBadDefineValue(t *testing.T) {
	bag := NewBag()
	defines := NewDefines()
	defines.Declare("cell", "my_count", BagInt)

	StashUnknown(bag, &synt.Simple{Name: "my_count", Value: synt.Value{Text: "not_a_number"}}, defines, "cell")

	vals, ok := bag.Get("my_count")
	require.True(t, ok)
	require.Equal(t, BagRawSimple, vals[0].Kind)
	require.Error(t, vals[0].TypedErr)
}
