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
	"github.com/afele/liberty/pkg/synt"
)

// PgPin is a cell's power/ground terminal (`pg_pin`): it joins the cell's
// power BDD variable set (spec.md §3.1's "one over power/ground nodes")
// rather than the signal set.
type PgPin struct {
	Name        string
	PgType      string
	VoltageName string

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (p *PgPin) Id() string { return p.Name }

func buildPgPin(g *synt.Group, scope *BuildScope) *PgPin {
	p := &PgPin{Name: titleString(g), Attributes: attr.NewBag()}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(p.Attributes, node, scope.Defines, "pg_pin")
			continue
		}

		switch s.Name {
		case "pg_type":
			p.PgType = s.Value.Text
		case "voltage_name":
			p.VoltageName = s.Value.Text
		default:
			attr.StashUnknown(p.Attributes, s, scope.Defines, "pg_pin")
		}
	}

	return p
}

// pgPinNames returns the title of every pg_pin group directly beneath g, in
// source order, for populating a Cell's power BDD variable set during
// before_build.
func pgPinNames(g *synt.Group) map[string]bool {
	names := map[string]bool{}

	for _, sub := range groupsNamed(g, "pg_pin") {
		if n := titleString(sub); n != "" {
			names[n] = true
		}
	}

	return names
}
