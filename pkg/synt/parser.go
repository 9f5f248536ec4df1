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
package synt

import (
	"fmt"

	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/lex"
	log "github.com/sirupsen/logrus"
)

// Parser composes pkg/lex tokens into the Node tree. It keeps a one-token
// pushback buffer, the way the teacher's sexp.Parser keeps a Lookahead
// helper, because distinguishing a complex attribute from a group requires
// peeking past the closing ')' for '{'.
type Parser struct {
	lx       *lex.Lexer
	buffered *lex.Token
	diags    *diag.Builder
}

// NewParser constructs a Parser over source text.
func NewParser(src string, legacyStarComment bool, diags *diag.Builder) *Parser {
	return &Parser{lx: lex.New(src, legacyStarComment), diags: diags}
}

func (p *Parser) next() (lex.Token, error) {
	if p.buffered != nil {
		t := *p.buffered
		p.buffered = nil

		return t, nil
	}

	return p.lx.Next()
}

func (p *Parser) pushback(t lex.Token) {
	p.buffered = &t
}

// ParseLibrary parses the single top-level group (per the grammar, "library
// = group") and returns it together with any diagnostics gathered along the
// way. It never returns a nil error for recoverable problems — only for an
// outright empty or fully malformed input is err non-nil.
func (p *Parser) ParseLibrary() (*Group, error) {
	tok, err := p.next()
	if err != nil {
		return nil, p.lexErr(err)
	}

	if tok.Kind == lex.EOF {
		return nil, fmt.Errorf("empty input: no top-level group found")
	}

	if tok.Kind != lex.Word {
		return nil, fmt.Errorf("line %d: expected top-level group name, found %s", tok.Line, tok.Kind)
	}

	g, err := p.parseGroupFrom(tok)
	if err != nil {
		return nil, err
	}

	// Trailing content after the top-level group is unusual but not fatal;
	// Liberty tools commonly ignore it.
	trailing, _ := p.next()
	if trailing.Kind != lex.EOF {
		p.diags.Report(diag.NewSpan(trailing.Line), diag.Structural, "unexpected content after top-level group")
	}

	return g, nil
}

// parseAttributes parses zero or more attributes until RBrace or EOF,
// implementing the non-fatal-unless-structural policy: a malformed nested
// group aborts only that group, and parsing resumes with the next sibling.
func (p *Parser) parseAttributes() ([]Node, error) {
	var nodes []Node

	for {
		tok, err := p.next()
		if err != nil {
			if le, ok := err.(*lex.LexicalError); ok {
				p.diags.Report(diag.NewSpan(le.Line), diag.Lexical, le.Msg)
				p.resync()

				continue
			}

			return nodes, nil
		}

		switch tok.Kind {
		case lex.RBrace, lex.EOF:
			p.pushback(tok)
			return nodes, nil
		case lex.Word:
			node, err := p.parseAttribute(tok)
			if err != nil {
				// Structural error: this attribute (and, transitively, any
				// group it was opening) is abandoned; resync at the next
				// plausible attribute boundary.
				log.Warnf("liberty/synt: %s", err)
				p.diags.Report(diag.NewSpan(tok.Line), diag.Structural, err.Error())
				p.resync()

				continue
			}

			nodes = append(nodes, node)
		default:
			p.diags.Report(diag.NewSpan(tok.Line), diag.Structural,
				fmt.Sprintf("unexpected token %s", tok.Kind))
			p.resync()
		}
	}
}

// resync skips tokens until a semicolon or closing brace, so a single
// malformed attribute doesn't cascade into an unparsable file.
func (p *Parser) resync() {
	depth := 0

	for {
		tok, err := p.next()
		if err != nil || tok.Kind == lex.EOF {
			return
		}

		switch tok.Kind {
		case lex.LBrace, lex.LParen:
			depth++
		case lex.RBrace:
			if depth == 0 {
				p.pushback(tok)
				return
			}

			depth--
		case lex.RParen:
			if depth > 0 {
				depth--
			}
		case lex.Semicolon:
			if depth == 0 {
				return
			}
		}
	}
}

// parseAttribute parses one simple/complex/group attribute whose name token
// has already been consumed.
func (p *Parser) parseAttribute(name lex.Token) (Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.Colon:
		return p.parseSimple(name)
	case lex.LParen:
		return p.parseComplexOrGroup(name)
	default:
		return nil, fmt.Errorf("line %d: expected ':' or '(' after %q, found %s", tok.Line, name.Text, tok.Kind)
	}
}

func (p *Parser) parseSimple(name lex.Token) (Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.Word && tok.Kind != lex.Number && tok.Kind != lex.QuotedString {
		return nil, fmt.Errorf("line %d: expected simple attribute value, found %s", tok.Line, tok.Kind)
	}

	val := Value{Kind: tok.Kind, Text: tok.Text}

	semi, err := p.next()
	if err != nil {
		return nil, err
	}

	if semi.Kind != lex.Semicolon {
		return nil, fmt.Errorf("line %d: expected ';' after simple attribute %q", semi.Line, name.Text)
	}

	return &Simple{Name: name.Text, Value: val, Line: name.Line}, nil
}

// parseComplexOrGroup reads the "( v1, v2, ... )" value/title list common to
// both complex attributes and groups, then decides which shape this is by
// looking at what follows the closing paren: '{' means group, ';' means
// complex.
func (p *Parser) parseComplexOrGroup(name lex.Token) (Node, error) {
	values, err := p.parseValueList()
	if err != nil {
		return nil, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.Semicolon:
		return &Complex{Name: name.Text, Values: values, Line: name.Line}, nil
	case lex.LBrace:
		body, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}

		closing, err := p.next()
		if err != nil {
			return nil, err
		}

		if closing.Kind != lex.RBrace {
			return nil, fmt.Errorf("line %d: expected '}' to close group %q", name.Line, name.Text)
		}

		return &Group{Name: name.Text, Titles: values, Body: body, Line: name.Line}, nil
	default:
		return nil, fmt.Errorf("line %d: expected ';' or '{' after %q(...)", tok.Line, name.Text)
	}
}

func (p *Parser) parseValueList() ([]Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	if tok.Kind == lex.RParen {
		return nil, nil
	}

	p.pushback(tok)

	var values []Value

	for {
		v, err := p.next()
		if err != nil {
			return nil, err
		}

		switch v.Kind {
		case lex.Word, lex.Number, lex.QuotedString:
			values = append(values, Value{Kind: v.Kind, Text: v.Text})
		default:
			return nil, fmt.Errorf("line %d: expected value in list, found %s", v.Line, v.Kind)
		}

		sep, err := p.next()
		if err != nil {
			return nil, err
		}

		switch sep.Kind {
		case lex.Comma:
			continue
		case lex.RParen:
			return values, nil
		default:
			return nil, fmt.Errorf("line %d: expected ',' or ')' in value list", sep.Line)
		}
	}
}

func (p *Parser) parseGroupFrom(name lex.Token) (*Group, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LParen {
		return nil, fmt.Errorf("line %d: expected '(' after top-level group name %q", tok.Line, name.Text)
	}

	node, err := p.parseComplexOrGroup(name)
	if err != nil {
		return nil, err
	}

	g, ok := node.(*Group)
	if !ok {
		return nil, fmt.Errorf("line %d: top-level attribute %q must be a group", name.Line, name.Text)
	}

	return g, nil
}

type structuralWrap struct{ inner *diag.SyntaxError }

func (s *structuralWrap) Error() string { return s.inner.Error() }

func (p *Parser) lexErr(err error) error {
	if le, ok := err.(*lex.LexicalError); ok {
		se := diag.NewSyntaxError(diag.NewSpan(le.Line), diag.Lexical, le.Msg)
		return &structuralWrap{se}
	}

	se := diag.NewSyntaxError(diag.Span{}, diag.Lexical, err.Error())

	return &structuralWrap{se}
}
