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
package logic

// staticAnd, staticOr and staticXor are the totally-defined 4x4 tables over
// the static levels {L,H,X,Z}, with L dominant for AND, H dominant for OR,
// and the usual 4-state uninit-propagation convention (Z behaves as X once
// it meets a logic operator) for XOR and the mixed cases.
func staticAnd(a, b Static) Static {
	if a == L || b == L {
		return L
	}

	if a == H && b == H {
		return H
	}

	return X
}

func staticOr(a, b Static) Static {
	if a == H || b == H {
		return H
	}

	if a == L && b == L {
		return L
	}

	return X
}

func staticXor(a, b Static) Static {
	if a == L && b == L || a == H && b == H {
		return L
	}

	if a == L && b == H || a == H && b == L {
		return H
	}

	return X
}

func staticNot(a Static) Static {
	switch a {
	case L:
		return H
	case H:
		return L
	default:
		return X
	}
}

// CombineOp is the law-derived form: "Composition of two transitions under
// a binary operator is defined by combine_bgn_end(op(a.bgn, b.bgn),
// op(a.end, b.end))" (spec.md §4.6). It recomputes from first principles on
// every call.
func CombineOp(op func(Static, Static) Static, a, b State) State {
	return CombineBgnEnd(op(a.Bgn(), b.Bgn()), op(a.End(), b.End()))
}

// CombineAnd, CombineOr and CombineXor specialize CombineOp to the three
// binary operators.
func CombineAnd(a, b State) State { return CombineOp(staticAnd, a, b) }
func CombineOr(a, b State) State  { return CombineOp(staticOr, a, b) }
func CombineXor(a, b State) State { return CombineOp(staticXor, a, b) }

// CombineNot operates entrywise on bgn/end, per spec.md §4.6.
func CombineNot(a State) State {
	return CombineBgnEnd(staticNot(a.Bgn()), staticNot(a.End()))
}
