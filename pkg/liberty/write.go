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
package liberty

import (
	"io"
	"strings"

	"github.com/afele/liberty/pkg/format"
	"github.com/afele/liberty/pkg/model"
)

// WriteTo serializes lib in canonical Liberty text form (spec.md §4.8) to
// dst.
func WriteTo(dst io.Writer, lib *model.Library) error {
	w := format.NewWriter(dst)
	format.WriteLibrary(w, lib)

	return w.Flush()
}

// String renders lib in canonical Liberty text form.
func String(lib *model.Library) string {
	var sb strings.Builder

	// WriteTo's only failure mode is the underlying writer's, and
	// strings.Builder never fails to write.
	_ = WriteTo(&sb, lib)

	return sb.String()
}
