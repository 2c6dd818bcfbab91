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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextSimple(t *testing.T) {
	src := []byte(`"AppState"
{
	"appid"		"413150"
	"name"		"Stardew Valley"
}
`)
	m, err := ParseText(src)
	require.NoError(t, err)

	appState, ok := m.Get("AppState")
	require.True(t, ok)
	sub, ok := appState.Map()
	require.True(t, ok)

	appid, ok := sub.Get("appid")
	require.True(t, ok)
	s, ok := appid.String()
	require.True(t, ok)
	assert.Equal(t, "413150", s)
}

func TestParseTextComments(t *testing.T) {
	src := []byte(`"libraryfolders"
{
	// a comment
	"0"
	{
		"path"		"/mnt/games"
	}
}
`)
	m, err := ParseText(src)
	require.NoError(t, err)

	lf, ok := m.Get("libraryfolders")
	require.True(t, ok)
	sub, _ := lf.Map()
	zero, ok := sub.Get("0")
	require.True(t, ok)
	zm, _ := zero.Map()
	path, ok := zm.Get("path")
	require.True(t, ok)
	s, _ := path.String()
	assert.Equal(t, "/mnt/games", s)
}

func TestParseTextEscapes(t *testing.T) {
	src := []byte(`"k" "a\"b\\c\nd\te"`)
	m, err := ParseText(src)
	require.NoError(t, err)
	v, ok := m.Get("k")
	require.True(t, ok)
	s, _ := v.String()
	assert.Equal(t, "a\"b\\c\nd\te", s)
}

func TestParseTextDuplicateKeyOverwrites(t *testing.T) {
	src := []byte(`"k" "first" "k" "second"`)
	m, err := ParseText(src)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	v, _ := m.Get("k")
	s, _ := v.String()
	assert.Equal(t, "second", s)
}

func TestParseTextUnterminatedString(t *testing.T) {
	_, err := ParseText([]byte(`"k" "unterminated`))
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrMalformedText, pe.Kind)
}

func TestParseTextMissingKey(t *testing.T) {
	_, err := ParseText([]byte(`123`))
	require.Error(t, err)
}

func TestLookupDottedPath(t *testing.T) {
	src := []byte(`"appinfo" { "common" { "name" "Stardew Valley" } "config" { "installdir" "Stardew Valley" } }`)
	m, err := ParseText(src)
	require.NoError(t, err)

	v, ok := m.Lookup("appinfo.common.name")
	require.True(t, ok)
	s, _ := v.String()
	assert.Equal(t, "Stardew Valley", s)

	_, ok = m.Lookup("appinfo.common.missing")
	assert.False(t, ok)

	_, ok = m.Lookup("appinfo.common.name.nope")
	assert.False(t, ok)
}

// Round-trip invariant: re-serializing with canonical spacing
// and re-parsing yields a structurally equal value.
func TestTextRoundTrip(t *testing.T) {
	src := []byte(`"AppState" { "appid" "100" "inner" { "a" "1" "b" "2" } }`)
	m, err := ParseText(src)
	require.NoError(t, err)

	canon := canonicalRenderBody(m)
	m2, err := ParseText([]byte(canon))
	require.NoError(t, err)

	assert.Equal(t, mapKeys(m), mapKeys(m2))
}

func canonicalRenderBody(m *Map) string {
	out := ""
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out += `"` + k + `" `
		if sub, ok := v.Map(); ok {
			out += "{" + canonicalRenderBody(sub) + "} "
		} else {
			out += `"` + v.AsString() + `" `
		}
	}
	return out
}

func mapKeys(m *Map) []string {
	// Deep key signature used only to assert structural equality in
	// TestTextRoundTrip.
	var out []string
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		if sub, ok := v.Map(); ok {
			out = append(out, k+"{")
			out = append(out, mapKeys(sub)...)
			out = append(out, "}")
		} else {
			out = append(out, k+"="+v.AsString())
		}
	}
	return out
}
