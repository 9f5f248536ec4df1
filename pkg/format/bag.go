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
	"strconv"

	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/synt"
)

// WriteBag re-emits every attribute a group's attr.Bag captured as
// unrecognized or define()-typed, in first-seen-name, then source, order
// (spec.md §3.1's fallback container and §7's survive-and-report policy:
// an attribute the schema doesn't know about still round-trips losslessly).
func WriteBag(w *Writer, bag *attr.Bag) {
	if bag == nil || bag.IsEmpty() {
		return
	}

	for _, name := range bag.Names() {
		values, _ := bag.Get(name)
		for _, v := range values {
			writeBagValue(w, name, v)
		}
	}
}

func writeBagValue(w *Writer, name string, v attr.BagValue) {
	switch v.Kind {
	case attr.BagBool:
		if v.Bool {
			w.Simple(name, "true")
		} else {
			w.Simple(name, "false")
		}
	case attr.BagInt:
		w.Simple(name, strconv.FormatInt(v.Int, 10))
	case attr.BagFloat:
		w.Simple(name, formatFloat(v.Float))
	case attr.BagString:
		w.Simple(name, quoteIfNeeded(v.Str))
	case attr.BagRawSimple:
		if v.RawSimple != nil {
			w.Simple(v.RawSimple.Name, valueText(v.RawSimple.Value))
		}
	case attr.BagRawComplex:
		if v.RawComplex != nil {
			w.Complex(v.RawComplex.Name, valueTexts(v.RawComplex.Values)...)
		}
	case attr.BagRawGroup:
		if v.RawGroup != nil {
			writeRawGroup(w, v.RawGroup)
		}
	}
}

// writeRawGroup re-emits a group whose shape was never understood by the
// model at all (a group name the per-type dispatcher didn't recognize),
// walking its raw synt tree directly rather than through any typed model.
func writeRawGroup(w *Writer, g *synt.Group) {
	w.GroupOpen(g.Name, valueTexts(g.Titles)...)

	for _, node := range g.Body {
		writeRawNode(w, node)
	}

	w.GroupClose()
}

func writeRawNode(w *Writer, node synt.Node) {
	switch n := node.(type) {
	case *synt.Simple:
		w.Simple(n.Name, valueText(n.Value))
	case *synt.Complex:
		w.Complex(n.Name, valueTexts(n.Values)...)
	case *synt.Group:
		writeRawGroup(w, n)
	}
}
