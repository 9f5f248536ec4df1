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
	"strconv"

	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// BagKind classifies one fallback value's representation. Per spec.md §9,
// this is the one dynamic-typing seam in an otherwise compile-time-schema
// model.
type BagKind uint8

const (
	// BagBool is a `define`-declared Boolean attribute's parsed value.
	BagBool BagKind = iota
	// BagInt is a `define`-declared Integer attribute's parsed value.
	BagInt
	// BagFloat is a `define`-declared Float attribute's parsed value.
	BagFloat
	// BagString is a `define`-declared String attribute's parsed value.
	BagString
	// BagRawSimple is an unrecognized simple attribute, kept verbatim.
	BagRawSimple
	// BagRawComplex is an unrecognized complex attribute, kept verbatim.
	BagRawComplex
	// BagRawGroup is an unrecognized group attribute, kept verbatim.
	BagRawGroup
)

// BagValue is one instance of a fallback attribute. Exactly one field is
// meaningful, selected by Kind; TypedErr is set when a `define`-declared
// attribute's value failed to parse as its declared type (spec.md §7
// TypedValueError), in which
// case Kind is always BagRawSimple and the original text is preserved.
type BagValue struct {
	Kind       BagKind
	Bool       bool
	Int        int64
	Float      value.Float
	Str        string
	RawSimple  *synt.Simple
	RawComplex *synt.Complex
	RawGroup   *synt.Group
	TypedErr   error
}

// Bag is the per-group fallback container keyed by attribute name,
// preserving first-seen name order and, per name, every instance in
// source order (spec.md §3.1 "Attributes").
type Bag struct {
	order   []string
	entries map[string][]BagValue
}

// NewBag constructs an empty Bag.
func NewBag() *Bag {
	return &Bag{entries: make(map[string][]BagValue)}
}

// Add appends one value under name, recording the name's first-seen
// position if new.
func (b *Bag) Add(name string, v BagValue) {
	if _, ok := b.entries[name]; !ok {
		b.order = append(b.order, name)
	}

	b.entries[name] = append(b.entries[name], v)
}

// Get returns all values recorded under name, in source order.
func (b *Bag) Get(name string) ([]BagValue, bool) {
	v, ok := b.entries[name]
	return v, ok
}

// Names returns every distinct attribute name in first-seen order.
func (b *Bag) Names() []string {
	return append([]string(nil), b.order...)
}

// IsEmpty reports whether the bag holds nothing.
func (b *Bag) IsEmpty() bool {
	return len(b.order) == 0
}

// Defines records `define` statements: per-group declarations that an
// otherwise-unknown simple attribute name should be parsed into a typed Bag
// slot (Boolean/Integer/Float/String) rather than kept as a raw wrapper
// (spec.md §4.2).
type Defines struct {
	byKey map[string]BagKind
}

// NewDefines constructs an empty declaration table.
func NewDefines() *Defines {
	return &Defines{byKey: make(map[string]BagKind)}
}

// Declare records that, within groupName, attribute name has the given
// declared type.
func (d *Defines) Declare(groupName, name string, kind BagKind) {
	d.byKey[groupName+"/"+name] = kind
}

// Lookup returns the declared type for name within groupName, if any.
func (d *Defines) Lookup(groupName, name string) (BagKind, bool) {
	k, ok := d.byKey[groupName+"/"+name]
	return k, ok
}

// StashUnknown routes one untyped grammar node into bag: a `define`-known
// simple name is parsed into its declared typed slot (with TypedErr set on
// failure so the raw text still survives), anything else is kept as a raw
// wrapper. This is the generic half of the dispatcher: per-group parsers
// call it for every node whose name the group's Schema does not claim.
func StashUnknown(bag *Bag, node synt.Node, defines *Defines, groupName string) {
	switch n := node.(type) {
	case *synt.Simple:
		if defines != nil {
			if kind, ok := defines.Lookup(groupName, n.Name); ok {
				bag.Add(n.Name, typedBagValue(kind, n))
				return
			}
		}

		bag.Add(n.Name, BagValue{Kind: BagRawSimple, RawSimple: n})
	case *synt.Complex:
		bag.Add(n.Name, BagValue{Kind: BagRawComplex, RawComplex: n})
	case *synt.Group:
		bag.Add(n.Name, BagValue{Kind: BagRawGroup, RawGroup: n})
	}
}

func typedBagValue(kind BagKind, n *synt.Simple) BagValue {
	text := n.Value.Text

	switch kind {
	case BagBool:
		switch text {
		case "true", "1":
			return BagValue{Kind: BagBool, Bool: true}
		case "false", "0":
			return BagValue{Kind: BagBool, Bool: false}
		default:
			return BagValue{Kind: BagRawSimple, RawSimple: n, TypedErr: strconvErr("bool", text)}
		}
	case BagInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return BagValue{Kind: BagRawSimple, RawSimple: n, TypedErr: err}
		}

		return BagValue{Kind: BagInt, Int: i}
	case BagFloat:
		f, err := value.ParseFloat(text)
		if err != nil {
			return BagValue{Kind: BagRawSimple, RawSimple: n, TypedErr: err}
		}

		return BagValue{Kind: BagFloat, Float: f}
	default:
		return BagValue{Kind: BagString, Str: text}
	}
}

func strconvErr(want, got string) error {
	return &strconv.NumError{Func: "parse" + want, Num: got, Err: strconv.ErrSyntax}
}
