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
	"github.com/afele/liberty/pkg/expr"
	"github.com/afele/liberty/pkg/synt"
)

// FF declares a cell's flip-flop state variable pair (its group title is
// `(IQ, IQN)`) and the boolean functions governing its clocked behavior.
// Both state-variable names join the cell's signal node set before any
// boolean-expression field in the cell is resolved (spec.md §3.1's Cell
// invariant, §4.7's before_build).
type FF struct {
	StateVar, StateVarN string
	ClockedOn           *expr.BooleanExpression
	NextState           *expr.BooleanExpression
	Clear               *expr.BooleanExpression
	Preset              *expr.BooleanExpression
	Sensitize           []Sensitization

	Attributes *attr.Bag
}

func buildFF(g *synt.Group, cell *CellScope, scope *BuildScope) *FF {
	f := &FF{Attributes: attr.NewBag()}

	if len(g.Titles) > 0 {
		f.StateVar = g.Titles[0].Text
	}

	if len(g.Titles) > 1 {
		f.StateVarN = g.Titles[1].Text
	}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(f.Attributes, node, scope.Defines, "ff")
			continue
		}

		dst := ffSlot(f, s.Name)
		if dst == nil {
			attr.StashUnknown(f.Attributes, s, scope.Defines, "ff")
			continue
		}

		if e, err := expr.Parse(s.Value.Text, cell.Signal); err == nil {
			*dst = &e
		} else {
			scope.Diags.Report(diag.NewSpan(s.Line), diag.InvariantViolation, "ff "+s.Name+": "+err.Error())
			attr.StashUnknown(f.Attributes, s, scope.Defines, "ff")
		}
	}

	if f.ClockedOn != nil {
		f.Sensitize = sensitize(f.ClockedOn.AST())
	}

	return f
}

func ffSlot(f *FF, name string) **expr.BooleanExpression {
	switch name {
	case "clocked_on":
		return &f.ClockedOn
	case "next_state":
		return &f.NextState
	case "clear":
		return &f.Clear
	case "preset":
		return &f.Preset
	default:
		return nil
	}
}

// Latch declares a cell's level-sensitive state variable pair and its
// governing functions, the Latch counterpart of FF.
type Latch struct {
	StateVar, StateVarN string
	EnableOn            *expr.BooleanExpression
	DataIn              *expr.BooleanExpression
	Clear               *expr.BooleanExpression
	Preset              *expr.BooleanExpression
	Sensitize           []Sensitization

	Attributes *attr.Bag
}

func buildLatch(g *synt.Group, cell *CellScope, scope *BuildScope) *Latch {
	l := &Latch{Attributes: attr.NewBag()}

	if len(g.Titles) > 0 {
		l.StateVar = g.Titles[0].Text
	}

	if len(g.Titles) > 1 {
		l.StateVarN = g.Titles[1].Text
	}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(l.Attributes, node, scope.Defines, "latch")
			continue
		}

		dst := latchSlot(l, s.Name)
		if dst == nil {
			attr.StashUnknown(l.Attributes, s, scope.Defines, "latch")
			continue
		}

		if e, err := expr.Parse(s.Value.Text, cell.Signal); err == nil {
			*dst = &e
		} else {
			scope.Diags.Report(diag.NewSpan(s.Line), diag.InvariantViolation, "latch "+s.Name+": "+err.Error())
			attr.StashUnknown(l.Attributes, s, scope.Defines, "latch")
		}
	}

	if l.EnableOn != nil {
		l.Sensitize = sensitize(l.EnableOn.AST())
	}

	return l
}

func latchSlot(l *Latch, name string) **expr.BooleanExpression {
	switch name {
	case "enable_on":
		return &l.EnableOn
	case "data_in":
		return &l.DataIn
	case "clear":
		return &l.Clear
	case "preset":
		return &l.Preset
	default:
		return nil
	}
}
