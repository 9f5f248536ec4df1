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
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// titleString returns a group's first title, unquoted — the common case of
// a single-name group like `cell(INV)` or `type(bus4)`.
func titleString(g *synt.Group) string {
	if len(g.Titles) == 0 {
		return ""
	}

	return g.Titles[0].Text
}

func parseFloatAttr(s *synt.Simple, diags *diag.Builder) value.Float {
	f, err := value.ParseFloat(s.Value.Text)
	if err != nil {
		diags.Report(diag.NewSpan(s.Line), diag.TypedValue,
			"invalid float for "+quote(s.Name)+": "+quote(s.Value.Text))

		return value.Float{}
	}

	return f
}

// groupsNamed returns every nested *synt.Group directly beneath g whose
// name is one of names, in source order.
func groupsNamed(g *synt.Group, names ...string) []*synt.Group {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []*synt.Group

	for _, node := range g.Body {
		if sub, ok := node.(*synt.Group); ok && want[sub.Name] {
			out = append(out, sub)
		}
	}

	return out
}
