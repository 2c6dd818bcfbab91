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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cstr(s string) []byte {
	return append([]byte(s), 0x00)
}

// buildBinaryFixture writes:
//
//	map     "common" -> { string "name" -> "Stardew Valley" }
//	int32   "count"  -> 3
//	map-end
func buildBinaryFixture() []byte {
	var buf bytes.Buffer

	buf.WriteByte(tagMapStart)
	buf.Write(cstr("common"))
	buf.WriteByte(tagString)
	buf.Write(cstr("name"))
	buf.Write(cstr("Stardew Valley"))
	buf.WriteByte(tagMapEnd)

	buf.WriteByte(tagInt32)
	buf.Write(cstr("count"))
	b4 := make([]byte, 4)
	binary.LittleEndian.PutUint32(b4, 3)
	buf.Write(b4)

	buf.WriteByte(tagMapEnd)

	return buf.Bytes()
}

func TestDecodeBinaryNestedMap(t *testing.T) {
	data := buildBinaryFixture()
	m, err := DecodeBinary(bytes.NewReader(data))
	require.NoError(t, err)

	common, ok := m.Get("common")
	require.True(t, ok)
	sub, ok := common.Map()
	require.True(t, ok)
	name, ok := sub.Get("name")
	require.True(t, ok)
	s, _ := name.String()
	assert.Equal(t, "Stardew Valley", s)

	count, ok := m.Get("count")
	require.True(t, ok)
	i, ok := count.Int32()
	require.True(t, ok)
	assert.Equal(t, int32(3), i)
}

func TestDecodeBinaryUnknownTag(t *testing.T) {
	data := []byte{0xFF, 'k', 0x00, 0x08}
	_, err := DecodeBinary(bytes.NewReader(data))
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownTag, pe.Kind)
}

func TestDecodeBinaryTruncated(t *testing.T) {
	data := []byte{tagInt32, 'k', 0x00, 0x01, 0x02} // only 2 of 4 bytes
	_, err := DecodeBinary(bytes.NewReader(data))
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrTruncated, pe.Kind)
}

func TestDecodeBinaryUint64AndInt64(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(tagUint64)
	buf.Write(cstr("u"))
	b8 := make([]byte, 8)
	binary.LittleEndian.PutUint64(b8, 18446744073709551615)
	buf.Write(b8)

	buf.WriteByte(tagInt64)
	buf.Write(cstr("i"))
	b8b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b8b, uint64(int64(-1)))
	buf.Write(b8b)

	buf.WriteByte(tagMapEnd)

	m, err := DecodeBinary(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	u, ok := m.Get("u")
	require.True(t, ok)
	uv, _ := u.Uint64()
	assert.Equal(t, uint64(18446744073709551615), uv)

	i, ok := m.Get("i")
	require.True(t, ok)
	iv, _ := i.Int64()
	assert.Equal(t, int64(-1), iv)
}
