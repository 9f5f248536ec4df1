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

// Package bdd implements a reduced, ordered binary decision diagram over a
// fixed variable order. It is the canonical identity used for boolean
// expression equality and hashing (spec.md §3.1, §4.4): two
// BooleanExpressions are equal iff their BDDs, built under the same
// variable order, are equal.
package bdd

// Ref is an opaque, hash-consed reference to a BDD node. Two Refs compare
// equal (by ==) iff they denote the same boolean function under the owning
// Table's variable order — this is the "BDD is the identity" property the
// spec requires.
type Ref uint32

const (
	// False is the constant-0 terminal.
	False Ref = 0
	// True is the constant-1 terminal.
	True Ref = 1
)

type node struct {
	varIdx   int
	lo, hi   Ref
}

// Table is a shared, hash-consed node table. Every BooleanExpression built
// under the same Table (i.e. the same cell's variable set, per spec.md
// §3.1) can be compared for equality with a simple Ref comparison.
type Table struct {
	vars  []string
	index map[string]int
	nodes []node
	cache map[node]Ref
	// memoization for binary Apply, cleared per top-level call.
}

// NewTable constructs a BDD table over the given variable order. The order
// must already be the lexicographically sorted node-name set per spec.md
// §4.4 ("a BDD is built with a variable order taken from the lexicographic
// sort of the node name set").
func NewTable(order []string) *Table {
	t := &Table{
		vars:  append([]string(nil), order...),
		index: make(map[string]int, len(order)),
		nodes: []node{{}, {}}, // slots 0,1 reserved for False/True terminals
		cache: make(map[node]Ref),
	}

	for i, v := range order {
		t.index[v] = i
	}

	return t
}

// Vars returns the variable order this table was built with.
func (t *Table) Vars() []string {
	return append([]string(nil), t.vars...)
}

func (t *Table) varIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// mk returns the canonical (hash-consed, reduced) node for (var, lo, hi),
// collapsing redundant nodes where lo == hi.
func (t *Table) mk(v int, lo, hi Ref) Ref {
	if lo == hi {
		return lo
	}

	key := node{v, lo, hi}
	if r, ok := t.cache[key]; ok {
		return r
	}

	t.nodes = append(t.nodes, key)
	r := Ref(len(t.nodes) - 1)
	t.cache[key] = r

	return r
}

// Var constructs the BDD for a single named variable. The variable must
// have been part of the table's order; callers that encounter an unknown
// variable should treat it as a diag.Reference error before calling this.
func (t *Table) Var(name string) (Ref, bool) {
	i, ok := t.varIndex(name)
	if !ok {
		return False, false
	}

	return t.mk(i, False, True), true
}

// Const constructs a constant BDD.
func (t *Table) Const(b bool) Ref {
	if b {
		return True
	}

	return False
}

// Not negates a BDD via the standard "swap terminals" Apply walk.
func (t *Table) Not(a Ref) Ref {
	return t.ite(a, False, True)
}

// And computes the conjunction of two BDDs.
func (t *Table) And(a, b Ref) Ref {
	return t.apply(a, b, func(x, y bool) bool { return x && y })
}

// Or computes the disjunction of two BDDs.
func (t *Table) Or(a, b Ref) Ref {
	return t.apply(a, b, func(x, y bool) bool { return x || y })
}

// Xor computes the exclusive-or of two BDDs.
func (t *Table) Xor(a, b Ref) Ref {
	return t.apply(a, b, func(x, y bool) bool { return x != y })
}

// Eval evaluates the BDD at a given assignment (one bool per table
// variable, indexed by varIndex).
func (t *Table) Eval(r Ref, assignment []bool) bool {
	for {
		if r == False {
			return false
		}

		if r == True {
			return true
		}

		n := t.nodes[r]
		if assignment[n.varIdx] {
			r = n.hi
		} else {
			r = n.lo
		}
	}
}

func isTerminal(r Ref) bool { return r == False || r == True }

func (t *Table) varOf(r Ref) int {
	if isTerminal(r) {
		return len(t.vars)
	}

	return t.nodes[r].varIdx
}

func (t *Table) children(r Ref, v int) (lo, hi Ref) {
	if isTerminal(r) || t.nodes[r].varIdx != v {
		return r, r
	}

	return t.nodes[r].lo, t.nodes[r].hi
}

// apply implements the Bryant "Apply" algorithm generically over any binary
// boolean operator, memoized per call via a map keyed by the (a,b) ref
// pair, avoiding redundant recursion on shared subgraphs.
func (t *Table) apply(a, b Ref, op func(bool, bool) bool) Ref {
	memo := make(map[[2]Ref]Ref)

	var rec func(a, b Ref) Ref

	rec = func(a, b Ref) Ref {
		if isTerminal(a) && isTerminal(b) {
			return t.Const(op(a == True, b == True))
		}

		key := [2]Ref{a, b}
		if r, ok := memo[key]; ok {
			return r
		}

		v := t.varOf(a)
		if bv := t.varOf(b); bv < v {
			v = bv
		}

		aLo, aHi := t.children(a, v)
		bLo, bHi := t.children(b, v)
		lo := rec(aLo, bLo)
		hi := rec(aHi, bHi)
		r := t.mk(v, lo, hi)
		memo[key] = r

		return r
	}

	return rec(a, b)
}

// ite builds if-then-else(cond, then, els), used to implement Not as
// ite(a, False, True).
func (t *Table) ite(cond, then, els Ref) Ref {
	if cond == True {
		return then
	}

	if cond == False {
		return els
	}

	memo := make(map[[3]Ref]Ref)

	var rec func(c, th, el Ref) Ref

	rec = func(c, th, el Ref) Ref {
		if c == True {
			return th
		}

		if c == False {
			return el
		}

		if th == True && el == False {
			return c
		}

		key := [3]Ref{c, th, el}
		if r, ok := memo[key]; ok {
			return r
		}

		v := t.varOf(c)
		if x := t.varOf(th); x < v {
			v = x
		}

		if x := t.varOf(el); x < v {
			v = x
		}

		cLo, cHi := t.children(c, v)
		thLo, thHi := t.children(th, v)
		elLo, elHi := t.children(el, v)
		lo := rec(cLo, thLo, elLo)
		hi := rec(cHi, thHi, elHi)
		r := t.mk(v, lo, hi)
		memo[key] = r

		return r
	}

	return rec(cond, then, els)
}
