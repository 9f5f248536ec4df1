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
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// OperatingConditions is a library-level `operating_conditions` group:
// process/voltage/temperature corner plus the wire-load tree selection
// Liberty attaches to it.
type OperatingConditions struct {
	Name        string
	Process     value.Float
	Voltage     value.Float
	Temperature value.Float
	TreeType    string

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (o *OperatingConditions) Id() string { return o.Name }

func buildOperatingConditions(g *synt.Group, diags *diag.Builder) *OperatingConditions {
	oc := &OperatingConditions{Name: titleString(g), Attributes: attr.NewBag()}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(oc.Attributes, node, nil, "operating_conditions")
			continue
		}

		switch s.Name {
		case "process":
			oc.Process = parseFloatAttr(s, diags)
		case "voltage":
			oc.Voltage = parseFloatAttr(s, diags)
		case "temperature":
			oc.Temperature = parseFloatAttr(s, diags)
		case "tree_type":
			oc.TreeType = s.Value.Text
		default:
			attr.StashUnknown(oc.Attributes, s, nil, "operating_conditions")
		}
	}

	return oc
}
