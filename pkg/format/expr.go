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
package format

import (
	"github.com/afele/liberty/pkg/expr"
	"github.com/afele/liberty/pkg/formula"
)

func writeBooleanAttr(w *Writer, name string, e *expr.BooleanExpression) {
	if e == nil {
		return
	}

	w.Simple(name, quoteIfNeeded(e.String()))
}

// whenText prefers re-formatting the parsed condition AST (so a
// semantically-unchanged `when` stabilizes after one format pass), falling
// back to the raw source text when parsing it previously failed.
func whenText(raw string, ast *formula.AST) string {
	if ast != nil {
		return formula.Format(ast)
	}

	return raw
}
