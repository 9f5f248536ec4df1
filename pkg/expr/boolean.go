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
package expr

import (
	"fmt"

	"github.com/afele/liberty/pkg/bdd"
)

// BooleanExpression is the {ast, bdd} pair of spec.md §3.1: the AST
// preserves source shape for formatting, while the BDD (built over the
// enclosing cell's variable set) provides canonical equality and hashing.
type BooleanExpression struct {
	ast   *AST
	table *bdd.Table
	ref   bdd.Ref
}

// AST returns the syntax tree, for formatting or inspection.
func (b BooleanExpression) AST() *AST { return b.ast }

// BDD returns the underlying BDD reference together with its table, so
// callers can compare against another expression built from the same
// table.
func (b BooleanExpression) BDD() (*bdd.Table, bdd.Ref) { return b.table, b.ref }

// Equal reports whether two boolean expressions are semantically equal,
// i.e. their BDDs agree under a shared variable-set table. Expressions
// built from different tables are never considered equal even if their ASTs
// match textually, since spec.md ties equality to "the governing variable
// set."
func (b BooleanExpression) Equal(o BooleanExpression) bool {
	return b.table == o.table && b.ref == o.ref
}

// String renders the canonical formatted text of the expression's AST.
func (b BooleanExpression) String() string {
	return Format(b.ast)
}

// Parse parses a cell-function/condition string and builds its BDD against
// the given variable table (typically the enclosing Cell's logic-node
// BDD table, per spec.md §3.1). It is an error (diag.Reference, the
// caller's responsibility to surface as a non-fatal diagnostic) if the
// expression references a name outside the table's variable set.
func Parse(s string, table *bdd.Table) (BooleanExpression, error) {
	ast, err := ParseAST(s)
	if err != nil {
		return BooleanExpression{}, err
	}

	ref, err := buildBDD(ast, table)
	if err != nil {
		return BooleanExpression{}, err
	}

	return BooleanExpression{ast: ast, table: table, ref: ref}, nil
}

func buildBDD(n *AST, t *bdd.Table) (bdd.Ref, error) {
	switch n.Kind {
	case KindVar:
		r, ok := t.Var(n.Name)
		if !ok {
			return bdd.False, fmt.Errorf("undeclared node %q referenced in boolean expression", n.Name)
		}

		return r, nil
	case KindConst:
		return t.Const(n.Const), nil
	case KindNot:
		a, err := buildBDD(n.Arg, t)
		if err != nil {
			return bdd.False, err
		}

		return t.Not(a), nil
	case KindAnd:
		l, err := buildBDD(n.Left, t)
		if err != nil {
			return bdd.False, err
		}

		r, err := buildBDD(n.Right, t)
		if err != nil {
			return bdd.False, err
		}

		return t.And(l, r), nil
	case KindOr:
		l, err := buildBDD(n.Left, t)
		if err != nil {
			return bdd.False, err
		}

		r, err := buildBDD(n.Right, t)
		if err != nil {
			return bdd.False, err
		}

		return t.Or(l, r), nil
	case KindXor:
		l, err := buildBDD(n.Left, t)
		if err != nil {
			return bdd.False, err
		}

		r, err := buildBDD(n.Right, t)
		if err != nil {
			return bdd.False, err
		}

		return t.Xor(l, r), nil
	default:
		return bdd.False, fmt.Errorf("invalid expression node")
	}
}
