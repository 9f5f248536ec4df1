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

// Package synt implements the grammar combinator: it composes pkg/lex's
// token stream into the three Liberty attribute shapes (simple, complex,
// group) and produces an untyped, line-annotated tree. Nothing here knows
// about cell/pin/timing semantics — that belongs to pkg/attr and pkg/model,
// which walk this tree via a per-group dispatch schema.
package synt

import "github.com/afele/liberty/pkg/lex"

// Node is any of Simple, Complex or Group. It mirrors the teacher's
// SExp/List/Symbol split: a closed, three-member sum type rather than an
// open interface hierarchy.
type Node interface {
	IsSimple() bool
	IsComplex() bool
	IsGroup() bool
	Loc() int
}

// Value is one scalar appearing in a value_list or title_list: an unquoted
// word, a quoted string, or a number (numbers are a lexical subclass of
// word, see pkg/lex).
type Value struct {
	Kind lex.Kind
	Text string
}

// Simple is `key : value ;`.
type Simple struct {
	Name  string
	Value Value
	Line  int
}

// IsSimple implements Node.
func (*Simple) IsSimple() bool { return true }

// IsComplex implements Node.
func (*Simple) IsComplex() bool { return false }

// IsGroup implements Node.
func (*Simple) IsGroup() bool { return false }

// Loc implements Node.
func (s *Simple) Loc() int { return s.Line }

// Complex is `key ( v1, v2, … ) ;`. A table's second matrix row, when
// written as a sibling attribute of the same key, simply appears as another
// *Complex with the same Name later in the enclosing group's Body.
type Complex struct {
	Name   string
	Values []Value
	Line   int
}

// IsSimple implements Node.
func (*Complex) IsSimple() bool { return false }

// IsComplex implements Node.
func (*Complex) IsComplex() bool { return true }

// IsGroup implements Node.
func (*Complex) IsGroup() bool { return false }

// Loc implements Node.
func (c *Complex) Loc() int { return c.Line }

// Group is `key ( title1, title2, … ) { … }`.
type Group struct {
	Name   string
	Titles []Value
	Body   []Node
	Line   int
}

// IsSimple implements Node.
func (*Group) IsSimple() bool { return false }

// IsComplex implements Node.
func (*Group) IsComplex() bool { return false }

// IsGroup implements Node.
func (*Group) IsGroup() bool { return true }

// Loc implements Node.
func (g *Group) Loc() int { return g.Line }

// TitleStrings extracts the title list as plain strings, unwrapping quotes.
func (g *Group) TitleStrings() []string {
	out := make([]string, len(g.Titles))
	for i, t := range g.Titles {
		out[i] = t.Text
	}

	return out
}
