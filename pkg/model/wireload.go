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
	"strconv"

	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// FanoutLengthEntry is one row of a wire_load model's `fanout_length`
// complex attribute: a fanout count and the corresponding wire length.
type FanoutLengthEntry struct {
	Fanout int
	Length value.Float
}

// WireLoad is a library-level `wire_load` group, referenced by name from
// cells and from the library's default wire-load selection (spec.md §3.1).
type WireLoad struct {
	Name          string
	Resistance    value.Float
	Capacitance   value.Float
	Slope         value.Float
	FanoutLengths []FanoutLengthEntry

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (w *WireLoad) Id() string { return w.Name }

var wireLoadSchema = attr.Schema{Rules: []attr.Rule{
	{Name: "resistance", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "capacitance", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "slope", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "fanout_length", Kind: attr.Complex, Slot: attr.SlotVec},
}}

func buildWireLoad(g *synt.Group, diags *diag.Builder) *WireLoad {
	wl := &WireLoad{Name: titleString(g), Attributes: attr.NewBag()}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			switch n.Name {
			case "resistance":
				wl.Resistance = parseFloatAttr(n, diags)
			case "capacitance":
				wl.Capacitance = parseFloatAttr(n, diags)
			case "slope":
				wl.Slope = parseFloatAttr(n, diags)
			default:
				attr.StashUnknown(wl.Attributes, n, nil, "wire_load")
			}
		case *synt.Complex:
			if n.Name == "fanout_length" {
				wl.FanoutLengths = append(wl.FanoutLengths, buildFanoutLength(n, diags))
			} else {
				attr.StashUnknown(wl.Attributes, n, nil, "wire_load")
			}
		default:
			attr.StashUnknown(wl.Attributes, node, nil, "wire_load")
		}
	}

	return wl
}

func buildFanoutLength(c *synt.Complex, diags *diag.Builder) FanoutLengthEntry {
	var e FanoutLengthEntry

	if len(c.Values) > 0 {
		if n, err := strconv.Atoi(c.Values[0].Text); err == nil {
			e.Fanout = n
		} else {
			diags.Report(diag.NewSpan(c.Line), diag.TypedValue, "invalid fanout in fanout_length")
		}
	}

	if len(c.Values) > 1 {
		if f, err := value.ParseFloat(c.Values[1].Text); err == nil {
			e.Length = f
		} else {
			diags.Report(diag.NewSpan(c.Line), diag.TypedValue, "invalid length in fanout_length")
		}
	}

	return e
}
