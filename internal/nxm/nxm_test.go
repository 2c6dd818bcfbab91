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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicModURL(t *testing.T) {
	u, err := Parse("nxm://stardewvalley/mods/12345/files/67890")
	require.NoError(t, err)
	assert.Equal(t, KindMod, u.Kind)
	assert.Equal(t, "stardewvalley", u.GameDomain)
	assert.EqualValues(t, 12345, u.ModID)
	require.True(t, u.HasFileID)
	assert.EqualValues(t, 67890, u.FileID)
	assert.False(t, u.HasExpires)
	assert.Empty(t, u.DownloadKey)
}

func TestParseModURLCompatFileIdForm(t *testing.T) {
	u, err := Parse("nxm://skyrimspecialedition/mods/266/67890")
	require.NoError(t, err)
	require.True(t, u.HasFileID)
	assert.EqualValues(t, 67890, u.FileID)
}

func TestParseModURLWithoutFileId(t *testing.T) {
	u, err := Parse("nxm://skyrimspecialedition/mods/266")
	require.NoError(t, err)
	assert.False(t, u.HasFileID)
	assert.True(t, u.Valid())
}

func TestParseCollectionWithRevision(t *testing.T) {
	u, err := Parse("nxm://stardewvalley/collections/tckf0m/revisions/100")
	require.NoError(t, err)
	assert.Equal(t, KindCollection, u.Kind)
	assert.Equal(t, "stardewvalley", u.GameDomain)
	assert.Equal(t, "tckf0m", u.CollectionSlug)
	require.True(t, u.HasRevisionID)
	assert.EqualValues(t, 100, u.RevisionID)
	assert.False(t, u.Incomplete())
}

func TestParseCollectionWithoutRevisionIsIncomplete(t *testing.T) {
	u, err := Parse("nxm://stardewvalley/collections/tckf0m")
	require.NoError(t, err)
	assert.True(t, u.Valid())
	assert.True(t, u.Incomplete())
}

func TestParseQueryKeyAndExpires(t *testing.T) {
	u, err := Parse("nxm://stardewvalley/mods/1/files/2?key=abc123&expires=1700000000&unused=x")
	require.NoError(t, err)
	assert.Equal(t, "abc123", u.DownloadKey)
	require.True(t, u.HasExpires)
	assert.EqualValues(t, 1700000000, u.ExpiresAt)
}

func TestParseEmptyURL(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestParseTooLong(t *testing.T) {
	raw := scheme + "a/mods/1/" + strings.Repeat("x", MaxURLBytes)
	_, err := Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestParseInvalidModId(t *testing.T) {
	_, err := Parse("nxm://stardewvalley/mods/notanumber")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidModId)
}

func TestParseInvalidFileId(t *testing.T) {
	_, err := Parse("nxm://stardewvalley/mods/1/files/notanumber")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFileId)
}

func TestParseInvalidRevisionId(t *testing.T) {
	_, err := Parse("nxm://stardewvalley/collections/slug/revisions/notanumber")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRevisionId)
}

func TestParseInvalidLinkType(t *testing.T) {
	_, err := Parse("nxm://stardewvalley/somethingelse/1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLinkType)
}

func TestEncodeForHostRoundTrip(t *testing.T) {
	original := "nxm://stardewvalley/collections/tckf0m/revisions/100"
	encoded, err := EncodeForHost(original)
	require.NoError(t, err)
	assert.Equal(t, "nxm://stardewvalley%2Fcollections%2Ftckf0m%2Frevisions%2F100", encoded)

	reparsed, err := Parse(encoded)
	require.NoError(t, err)
	originalParsed, err := Parse(original)
	require.NoError(t, err)
	assert.Equal(t, originalParsed, reparsed)
}

func TestEncodeForHostEscapesSpaceAndQuote(t *testing.T) {
	encoded, err := EncodeForHost(`nxm://some game/mods/1"x/files/2`)
	require.NoError(t, err)
	assert.Contains(t, encoded, "%20")
	assert.Contains(t, encoded, "%22")
	assert.True(t, strings.HasPrefix(encoded, scheme))
}

func TestParseAcceptsExactly2048Bytes(t *testing.T) {
	prefix := scheme + "a/mods/1?key="
	padding := strings.Repeat("x", MaxURLBytes-len(prefix))
	raw := prefix + padding
	require.Len(t, raw, MaxURLBytes)

	_, err := Parse(raw)
	require.NoError(t, err)

	_, err = Parse(raw + "y")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLong)
}
