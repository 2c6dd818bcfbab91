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

package steamlocate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryFoldersOldStyle(t *testing.T) {
	root := t.TempDir()
	steamapps := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(steamapps, 0o755))

	other := t.TempDir()
	content := `"libraryfolders"
{
	"0"		"` + other + `"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "libraryfolders.vdf"), []byte(content), 0o644))

	libs, warnings := LibraryFolders(root)
	assert.Empty(t, warnings)
	assert.Contains(t, libs, root)
	assert.Contains(t, libs, filepath.Clean(other))
}

func TestLibraryFoldersNewStyle(t *testing.T) {
	root := t.TempDir()
	steamapps := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(steamapps, 0o755))

	other := t.TempDir()
	content := `"libraryfolders"
{
	"0"
	{
		"path"		"` + other + `"
		"label"		""
	}
}
`
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "libraryfolders.vdf"), []byte(content), 0o644))

	libs, warnings := LibraryFolders(root)
	assert.Empty(t, warnings)
	assert.Contains(t, libs, filepath.Clean(other))
}

func TestLibraryFoldersMissingFileIsNonFatal(t *testing.T) {
	root := t.TempDir()
	libs, warnings := LibraryFolders(root)
	assert.Equal(t, []string{root}, libs)
	assert.Empty(t, warnings)
}

func TestLibraryFoldersMalformedIsWarningOnly(t *testing.T) {
	root := t.TempDir()
	steamapps := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(steamapps, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "libraryfolders.vdf"), []byte(`"unterminated`), 0o644))

	libs, warnings := LibraryFolders(root)
	assert.Equal(t, []string{root}, libs)
	assert.NotEmpty(t, warnings)
}

func TestListInstalledGames(t *testing.T) {
	lib := t.TempDir()
	steamapps := filepath.Join(lib, "steamapps")
	require.NoError(t, os.MkdirAll(steamapps, 0o755))

	manifest := `"AppState"
{
	"appid"		"413150"
	"name"		"Stardew Valley"
	"installdir"	"Stardew Valley"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "appmanifest_413150.acf"), []byte(manifest), 0o644))

	games, warnings := ListInstalledGames([]string{lib})
	assert.Empty(t, warnings)
	require.Len(t, games, 1)
	assert.Equal(t, 413150, games[0].AppID)
	assert.Equal(t, "Stardew Valley", games[0].Name)
	assert.Equal(t, filepath.Join(lib, "steamapps", "common", "Stardew Valley"), games[0].InstallPath())
}

func TestListInstalledGamesSkipsBadManifest(t *testing.T) {
	lib := t.TempDir()
	steamapps := filepath.Join(lib, "steamapps")
	require.NoError(t, os.MkdirAll(steamapps, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "appmanifest_1.acf"), []byte(`"unterminated`), 0o644))

	games, warnings := ListInstalledGames([]string{lib})
	assert.Empty(t, games)
	assert.NotEmpty(t, warnings)
}

func TestFindActiveUserMostRecent(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(root, "config")
	require.NoError(t, os.MkdirAll(cfg, 0o755))

	content := `"users"
{
	"76561190000000001"
	{
		"AccountName"		"olduser"
		"PersonaName"		"Old"
		"MostRecent"		"0"
	}
	"76561190000000002"
	{
		"AccountName"		"newuser"
		"PersonaName"		"New"
		"MostRecent"		"1"
	}
}
`
	require.NoError(t, os.WriteFile(filepath.Join(cfg, "loginusers.vdf"), []byte(content), 0o644))

	u, ok, warn := FindActiveUser(root)
	require.True(t, ok)
	assert.Empty(t, warn)
	assert.Equal(t, "76561190000000002", u.SteamID)
	assert.Equal(t, "newuser", u.AccountName)
}

func TestFindActiveUserNoneMarked(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(root, "config")
	require.NoError(t, os.MkdirAll(cfg, 0o755))
	content := `"users" { "1" { "AccountName" "a" "MostRecent" "0" } }`
	require.NoError(t, os.WriteFile(filepath.Join(cfg, "loginusers.vdf"), []byte(content), 0o644))

	_, ok, warn := FindActiveUser(root)
	assert.False(t, ok)
	assert.Empty(t, warn)
}

func TestFindActiveUserMissingFile(t *testing.T) {
	root := t.TempDir()
	_, ok, warn := FindActiveUser(root)
	assert.False(t, ok)
	assert.Empty(t, warn)
}
