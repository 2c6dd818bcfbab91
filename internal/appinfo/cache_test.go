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

package appinfo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreAndLookup(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Lookup(ctx, "/fake/appinfo.vdf", 123)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Store(ctx, "/fake/appinfo.vdf", 1700000000, 123, 4096, 9, "Some Game"))

	entry, ok, err := cache.Lookup(ctx, "/fake/appinfo.vdf", 123)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 4096, entry.ByteOffset)
	assert.EqualValues(t, 9, entry.ChangeNumber)
	assert.Equal(t, "Some Game", entry.DisplayName)
}

func TestCacheStoreOverwritesOnConflict(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Store(ctx, "/db", 1, 1, 100, 1, "Old"))
	require.NoError(t, cache.Store(ctx, "/db", 2, 1, 200, 2, "New"))

	entry, ok, err := cache.Lookup(ctx, "/db", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 200, entry.ByteOffset)
	assert.EqualValues(t, 2, entry.ChangeNumber)
	assert.Equal(t, "New", entry.DisplayName)
}
