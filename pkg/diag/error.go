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

import "fmt"

// SyntaxError is a structured diagnostic which retains the span of the
// original text it concerns, its kind, and a human-readable message. It
// implements the error interface so it can also be threaded through Go's
// ordinary error-handling, but the parser never lets one abort the whole
// file — it is collected into a Diagnostics set instead (see Builder).
type SyntaxError struct {
	span Span
	kind Kind
	msg  string
}

// NewSyntaxError constructs a new diagnostic.
func NewSyntaxError(span Span, kind Kind, msg string) *SyntaxError {
	return &SyntaxError{span, kind, msg}
}

// Span returns the span of text this diagnostic concerns.
func (e *SyntaxError) Span() Span { return e.span }

// Kind returns the diagnostic's classification.
func (e *SyntaxError) Kind() Kind { return e.kind }

// Message returns the human-readable diagnostic text.
func (e *SyntaxError) Message() string { return e.msg }

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s:%s", e.span.Start, e.span.End, e.kind, e.msg)
}
