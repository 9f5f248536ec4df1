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
package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAtom(t *testing.T) {
	ast, err := Parse("VDD > 1.08")
	require.NoError(t, err)
	require.Equal(t, KindAtom, ast.Kind)
	require.Equal(t, "VDD", ast.Atom.Left)
	require.Equal(t, OpGT, ast.Atom.Op)
	require.Equal(t, "1.08", ast.Atom.Right)
}

func TestParseVoltageCall(t *testing.T) {
	ast, err := Parse("voltage(VDD) - voltage(VSS)>=1.08")
	require.NoError(t, err)
	require.Equal(t, KindAtom, ast.Kind)
	require.Equal(t, OpGE, ast.Atom.Op)
}

func TestParseAndOrNot(t *testing.T) {
	ast, err := Parse("!(A<B) && C>=D || E==F")
	require.NoError(t, err)
	require.Equal(t, KindOr, ast.Kind)
}

func TestFormatRoundTrip(t *testing.T) {
	ast, err := Parse("A<B && C>D")
	require.NoError(t, err)
	require.Equal(t, "A<B && C>D", Format(ast))
}
