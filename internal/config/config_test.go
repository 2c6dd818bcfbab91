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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPriorityEnvVar(t *testing.T) {
	t.Setenv("STL_CONFIG_DIR", "/custom/config")
	d, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config", d)
}

func TestLoadGameConfigMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	gc, warning := LoadGameConfig(dir, 413150)
	assert.Empty(t, warning)
	assert.Equal(t, 413150, gc.AppID)
	assert.False(t, gc.PreferNative)
	assert.Empty(t, gc.RuntimeOverride)
}

func TestSaveAndLoadGameConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	gc := GameConfig{
		AppID:                413150,
		PreferNative:         true,
		RuntimeOverride:      "GE-Proton9-10",
		ExtraLaunchArguments: "-windowed -novid",
		TinkerSettings:       map[string]interface{}{"overlay": map[string]interface{}{"enabled": true}},
	}
	require.NoError(t, SaveGameConfig(dir, gc))

	loaded, warning := LoadGameConfig(dir, 413150)
	assert.Empty(t, warning)
	assert.Equal(t, 413150, loaded.AppID)
	assert.True(t, loaded.PreferNative)
	assert.Equal(t, "GE-Proton9-10", loaded.RuntimeOverride)
	assert.Equal(t, "-windowed -novid", loaded.ExtraLaunchArguments)
}

func TestLoadGameConfigTooLarge(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(GamesDir(dir), 0o755))
	path := gamePath(dir, 1)
	big := strings.Repeat("a", (1<<20)+1)
	require.NoError(t, os.WriteFile(path, []byte(`extra_launch_arguments = "`+big+`"`), 0o644))

	gc, warning := LoadGameConfig(dir, 1)
	assert.NotEmpty(t, warning)
	assert.Equal(t, 1, gc.AppID)
	assert.Empty(t, gc.ExtraLaunchArguments)
}

func TestLoadGameConfigMalformedDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(GamesDir(dir), 0o755))
	path := gamePath(dir, 2)
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	gc, warning := LoadGameConfig(dir, 2)
	assert.NotEmpty(t, warning)
	assert.Equal(t, 2, gc.AppID)
}

func TestNonSteamRegistryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	reg, warning := LoadNonSteamRegistry(dir)
	assert.Empty(t, warning)
	assert.Empty(t, reg.Games)

	id1 := AddNonSteamGame(&reg, "My Game", "/usr/bin/mygame", "")
	assert.Equal(t, -1000, id1)
	id2 := AddNonSteamGame(&reg, "Another", "/usr/bin/another", "--flag")
	assert.Equal(t, -1001, id2)

	require.NoError(t, SaveNonSteamRegistry(dir, reg))

	reloaded, warning := LoadNonSteamRegistry(dir)
	assert.Empty(t, warning)
	require.Len(t, reloaded.Games, 2)
	assert.Equal(t, "My Game", reloaded.Games[0].Name)
}

func TestNonSteamGameValidate(t *testing.T) {
	bad := NonSteamGame{AppID: 5, Name: "x", Executable: "y"}
	assert.Error(t, bad.Validate())

	good := NonSteamGame{AppID: -1000, Name: "x", Executable: "y"}
	assert.NoError(t, good.Validate())
}

func TestGamePathUsesAppIDStem(t *testing.T) {
	p := gamePath("/cfg", 413150)
	assert.Equal(t, filepath.Join("/cfg", "games", "413150.toml"), p)

	p2 := gamePath("/cfg", -1000)
	assert.Equal(t, filepath.Join("/cfg", "games", "-1000.toml"), p2)
}
