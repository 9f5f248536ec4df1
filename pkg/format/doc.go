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

// Package format implements the canonical Liberty text emitter of spec.md
// §4.8: one attribute per line, schema-ordered within each group, vec slots
// in insertion order and set slots sorted by id, floats printed with their
// shortest round-trip representation. It walks pkg/model's group tree the
// same way pkg/model's builders walk pkg/synt's — one file per group kind —
// so the two are easy to read side by side.
package format
