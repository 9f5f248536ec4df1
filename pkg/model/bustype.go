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
)

// BusType is a library-level `type` group: the indexing schema a Bus
// refers to by name (spec.md §3.1: "every bus_type referenced by any Bus
// must exist in the library's type table or be flagged unresolved").
type BusType struct {
	Name     string
	BaseType string
	DataType string
	BitWidth int
	BitFrom  int
	BitTo    int

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (t *BusType) Id() string { return t.Name }

var busTypeSchema = attr.Schema{Rules: []attr.Rule{
	{Name: "base_type", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "data_type", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "bit_width", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "bit_from", Kind: attr.Simple, Slot: attr.SlotDefault},
	{Name: "bit_to", Kind: attr.Simple, Slot: attr.SlotDefault},
}}

func buildBusType(g *synt.Group, diags *diag.Builder) *BusType {
	bt := &BusType{Name: titleString(g), Attributes: attr.NewBag()}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok || !busTypeSchema.Has(s.Name) {
			attr.StashUnknown(bt.Attributes, node, nil, "type")
			continue
		}

		switch s.Name {
		case "base_type":
			bt.BaseType = s.Value.Text
		case "data_type":
			bt.DataType = s.Value.Text
		case "bit_width":
			bt.BitWidth = parseIntAttr(s, diags)
		case "bit_from":
			bt.BitFrom = parseIntAttr(s, diags)
		case "bit_to":
			bt.BitTo = parseIntAttr(s, diags)
		}
	}

	return bt
}

func parseIntAttr(s *synt.Simple, diags *diag.Builder) int {
	v, err := strconv.Atoi(s.Value.Text)
	if err != nil {
		diags.Report(diag.NewSpan(s.Line), diag.TypedValue,
			"invalid integer for "+quote(s.Name)+": "+quote(s.Value.Text))

		return 0
	}

	return v
}
