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
	"strings"
	"testing"

	"github.com/afele/liberty/pkg/bdd"
	"github.com/afele/liberty/pkg/expr"
	"github.com/stretchr/testify/require"
)

// TestWriteBooleanAttrQuotesParenthesizedExpression guards against the
// regression where a boolean expression whose canonical text needs
// parentheses (to preserve precedence) was emitted unquoted as a simple
// attribute value -- parentheses aren't readable back as a single token
// by the grammar, so the value must be quoted.
func TestWriteBooleanAttrQuotesParenthesizedExpression(t *testing.T) {
	table := bdd.NewTable([]string{"A", "B", "C"})
	e, err := expr.Parse("(A+B)*C", table)
	require.NoError(t, err)

	var sb strings.Builder
	w := NewWriter(&sb)
	writeBooleanAttr(w, "function", &e)
	require.NoError(t, w.Flush())

	require.Contains(t, sb.String(), `function : "(A+B)*C" ;`)
}

func TestWriteBooleanAttrLeavesSingleTokenUnquoted(t *testing.T) {
	table := bdd.NewTable([]string{"A"})
	e, err := expr.Parse("A", table)
	require.NoError(t, err)

	var sb strings.Builder
	w := NewWriter(&sb)
	writeBooleanAttr(w, "function", &e)
	require.NoError(t, w.Flush())

	require.Equal(t, "function : A ;\n", sb.String())
}

func TestQuoteIfNeeded(t *testing.T) {
	require.Equal(t, "abc", quoteIfNeeded("abc"))
	require.Equal(t, `""`, quoteIfNeeded(""))
	require.Equal(t, `"a b"`, quoteIfNeeded("a b"))
	require.Equal(t, `"a,b"`, quoteIfNeeded("a,b"))
}

func TestWriterComplexRowsEmitsContinuations(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.ComplexRows("values", `"1,2,3"`, `"4,5,6"`)
	require.NoError(t, w.Flush())

	require.Equal(t, "values(\"1,2,3\", \\\n\"4,5,6\") ;\n", sb.String())
}

func TestWriterGroupIndentsBody(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.GroupOpen("cell", "INV")
	w.Simple("area", "1")
	w.GroupClose()
	require.NoError(t, w.Flush())

	require.Equal(t, "cell(INV) {\n    area : 1 ;\n}\n", sb.String())
}
