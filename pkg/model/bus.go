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
	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/collection"
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
)

// Bus is an indexed family of pins sharing a bus_type (spec.md §3.1).
// BusType is resolved against the library's `type` table at build() time;
// an unresolved name is kept (BusTypeName) with Type left nil and a
// diag.Reference recorded.
type Bus struct {
	Name        string
	BusTypeName string
	Type        *BusType
	Pins        *collection.GroupSet[*Pin, string]

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (b *Bus) Id() string { return b.Name }

func buildBus(g *synt.Group, cell *CellScope, scope *BuildScope) *Bus {
	b := &Bus{
		Name:       titleString(g),
		Pins:       collection.NewGroupSet[*Pin, string](),
		Attributes: attr.NewBag(),
	}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			if n.Name == "bus_type" {
				b.BusTypeName = n.Value.Text
				b.Type, _ = scope.ResolveBusType(n.Value.Text, diag.NewSpan(n.Line))
			} else {
				attr.StashUnknown(b.Attributes, n, scope.Defines, "bus")
			}
		case *synt.Group:
			if n.Name == "pin" {
				p := buildPin(n, cell, scope)
				if !b.Pins.Insert(p) {
					scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate pin "+quote(p.Name)+" in bus")
				}
			} else {
				attr.StashUnknown(b.Attributes, n, scope.Defines, "bus")
			}
		default:
			attr.StashUnknown(b.Attributes, node, scope.Defines, "bus")
		}
	}

	return b
}
