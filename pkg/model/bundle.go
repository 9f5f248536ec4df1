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
	"strings"

	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/synt"
)

// Bundle is a named, unordered set of member pin names (spec.md §3.1),
// distinct from a Bus in that members need not share a regular indexing
// scheme.
type Bundle struct {
	Name    string
	Members []string

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (b *Bundle) Id() string { return b.Name }

func buildBundle(g *synt.Group, scope *BuildScope) *Bundle {
	b := &Bundle{Name: titleString(g), Attributes: attr.NewBag()}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(b.Attributes, node, scope.Defines, "bundle")
			continue
		}

		if s.Name == "members" {
			b.Members = append(b.Members, strings.Split(s.Value.Text, ",")...)
		} else {
			attr.StashUnknown(b.Attributes, s, scope.Defines, "bundle")
		}
	}

	return b
}
