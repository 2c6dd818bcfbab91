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

package nxm

import "strings"

// EncodeForHost renders raw in the form safe to hand to a Wine-hosted
// helper: the nxm:// scheme is kept verbatim and every forward-slash,
// space, and quote in the tail is percent-encoded so a command parser
// that splits on '/' cannot misread the URI as multiple arguments.
// All other bytes pass through unchanged. Parse(EncodeForHost(u))
// recovers the same fields as Parse(u).
func EncodeForHost(raw string) (string, error) {
	if !strings.HasPrefix(raw, scheme) {
		return "", errsInvalidScheme(raw)
	}
	tail := strings.TrimPrefix(raw, scheme)

	var b strings.Builder
	b.Grow(len(tail))
	for _, r := range tail {
		switch r {
		case '/':
			b.WriteString("%2F")
		case ' ':
			b.WriteString("%20")
		case '"':
			b.WriteString("%22")
		default:
			b.WriteRune(r)
		}
	}
	return scheme + b.String(), nil
}

func errsInvalidScheme(raw string) error {
	_, err := Parse(raw)
	return err
}
