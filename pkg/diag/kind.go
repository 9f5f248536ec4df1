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
package diag

// Kind classifies a diagnostic. These correspond one-to-one with the error
// taxonomy: lexical and structural problems at the text level, unknown or
// mistyped attributes at the dispatch level, and unresolved references or
// invariant breaks discovered during build().
type Kind uint8

const (
	// Lexical covers malformed numbers, unterminated strings/comments.
	Lexical Kind = iota
	// Structural covers brace/paren/quote mismatches; aborts the enclosing group.
	Structural
	// UnknownAttribute is purely informational: a name with no schema entry.
	UnknownAttribute
	// TypedValue is a schema-known attribute whose value failed to parse.
	TypedValue
	// Reference is an unresolved named cross-reference at build() time.
	Reference
	// IdCollision is two entries competing for the same id in a set slot.
	IdCollision
	// InvariantViolation is a structural invariant broken on an otherwise well-formed node.
	InvariantViolation
)

// String renders the kind for diagnostic messages and logging.
func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Structural:
		return "structural"
	case UnknownAttribute:
		return "unknown-attribute"
	case TypedValue:
		return "typed-value"
	case Reference:
		return "reference"
	case IdCollision:
		return "id-collision"
	case InvariantViolation:
		return "invariant-violation"
	default:
		return "unknown"
	}
}
