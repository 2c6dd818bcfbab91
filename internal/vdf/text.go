/*
 * stl-next: steam launch tinkering, the next one
 * Copyright © 2026 stl-next contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program. If not, see <https://www.gnu.org/licenses/>.
 */

package vdf

import (
	"unicode/utf8"
)

// ParseText parses a text-mode VDF document*, pair := string ( string | "{" map "}" ), with
// "// ..." line comments skipped at token boundaries).
func ParseText(src []byte) (*Map, error) {
	p := &textParser{src: src}
	p.skipWhitespaceAndComments()
	m, err := p.parseMap(false)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type textParser struct {
	src []byte
	pos int
}

func (p *textParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *textParser) peek() byte {
	return p.src[p.pos]
}

func (p *textParser) skipWhitespaceAndComments() {
	for !p.eof() {
		c := p.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for !p.eof() && p.peek() != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// parseMap consumes pairs until EOF (top-level) or a closing brace
// (nested). The brace itself is consumed by the caller that opened it.
func (p *textParser) parseMap(nested bool) (*Map, error) {
	m := NewEmptyMap()

	for {
		p.skipWhitespaceAndComments()
		if p.eof() {
			if nested {
				return nil, newErr(ErrMalformedText, p.pos, "unterminated map: expected '}'")
			}
			return m, nil
		}
		if p.peek() == '}' {
			if !nested {
				return nil, newErr(ErrMalformedText, p.pos, "unexpected '}' at top level")
			}
			p.pos++ // consume '}'
			return m, nil
		}
		if p.peek() != '"' {
			return nil, newErr(ErrMalformedText, p.pos, "expected key string")
		}

		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipWhitespaceAndComments()
		if p.eof() {
			return nil, newErr(ErrMalformedText, p.pos, "unexpected eof after key")
		}

		switch p.peek() {
		case '"':
			val, err := p.parseString()
			if err != nil {
				return nil, err
			}
			m.Set(key, NewString(val))
		case '{':
			p.pos++ // consume '{'
			sub, err := p.parseMap(true)
			if err != nil {
				return nil, err
			}
			m.Set(key, NewMap(sub))
		default:
			return nil, newErr(ErrMalformedText, p.pos, "expected string or '{' after key")
		}
	}
}

// parseString consumes a double-quoted string with escapes \" \\ \n \t,
// returning its decoded contents. The caller must be positioned on the
// opening quote.
func (p *textParser) parseString() (string, error) {
	start := p.pos
	p.pos++ // consume opening quote

	var buf []byte
	for {
		if p.eof() {
			return "", newErr(ErrMalformedText, start, "unterminated string")
		}
		c := p.src[p.pos]
		if c == '"' {
			p.pos++
			break
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return "", newErr(ErrMalformedText, start, "unterminated escape")
			}
			esc := p.src[p.pos]
			switch esc {
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			default:
				// Unknown escape: pass both bytes through literally,
				// matching how lenient Steam VDF readers behave.
				buf = append(buf, '\\', esc)
			}
			p.pos++
			continue
		}
		buf = append(buf, c)
		p.pos++
	}

	if !utf8.Valid(buf) {
		return "", newErr(ErrEncoding, start, "string is not valid utf-8")
	}
	return string(buf), nil
}
