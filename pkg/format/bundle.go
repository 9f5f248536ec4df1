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

	"github.com/afele/liberty/pkg/model"
)

// WriteBundle emits one `bundle` group: its `members` simple attribute,
// rejoined from the parsed member-name list.
func WriteBundle(w *Writer, b *model.Bundle) {
	w.GroupOpen("bundle", b.Name)

	if len(b.Members) > 0 {
		w.Simple("members", strings.Join(b.Members, ","))
	}

	WriteBag(w, b.Attributes)
	w.GroupClose()
}
