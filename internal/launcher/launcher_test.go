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

package launcher

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stl-next/stl-next/internal/tinker/builtin"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
func cstr(s string) []byte { return append([]byte(s), 0x00) }

// nativePayload builds an appinfo payload with one linux-native launch option.
func nativePayload(name, installDir, exe string) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0x00)
	buf.Write(cstr("appinfo"))

	buf.WriteByte(0x00)
	buf.Write(cstr("common"))
	buf.WriteByte(0x01)
	buf.Write(cstr("name"))
	buf.Write(cstr(name))
	buf.WriteByte(0x08)

	buf.WriteByte(0x00)
	buf.Write(cstr("config"))
	buf.WriteByte(0x01)
	buf.Write(cstr("installdir"))
	buf.Write(cstr(installDir))

	buf.WriteByte(0x00)
	buf.Write(cstr("launch"))
	buf.WriteByte(0x00)
	buf.Write(cstr("0"))
	buf.WriteByte(0x01)
	buf.Write(cstr("executable"))
	buf.Write(cstr(exe))
	buf.WriteByte(0x01)
	buf.Write(cstr("oslist"))
	buf.Write(cstr("linux"))
	buf.WriteByte(0x08) // end launch.0
	buf.WriteByte(0x08) // end launch
	buf.WriteByte(0x08) // end config
	buf.WriteByte(0x08) // end appinfo

	buf.WriteByte(0x08) // end outer
	return buf.Bytes()
}

// windowsPayload builds an appinfo payload with one windows-only launch option.
func windowsPayload(name, installDir, exe string) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0x00)
	buf.Write(cstr("appinfo"))

	buf.WriteByte(0x00)
	buf.Write(cstr("common"))
	buf.WriteByte(0x01)
	buf.Write(cstr("name"))
	buf.Write(cstr(name))
	buf.WriteByte(0x08)

	buf.WriteByte(0x00)
	buf.Write(cstr("config"))
	buf.WriteByte(0x01)
	buf.Write(cstr("installdir"))
	buf.Write(cstr(installDir))

	buf.WriteByte(0x00)
	buf.Write(cstr("launch"))
	buf.WriteByte(0x00)
	buf.Write(cstr("0"))
	buf.WriteByte(0x01)
	buf.Write(cstr("executable"))
	buf.Write(cstr(exe))
	buf.WriteByte(0x01)
	buf.Write(cstr("oslist"))
	buf.Write(cstr("windows"))
	buf.WriteByte(0x08) // end launch.0
	buf.WriteByte(0x08) // end launch
	buf.WriteByte(0x08) // end config
	buf.WriteByte(0x08) // end appinfo

	buf.WriteByte(0x08) // end outer
	return buf.Bytes()
}

func writeAppinfoDB(t *testing.T, path string, appID int, payload []byte) {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(u32le(0x07564428))
	buf.Write(u32le(1))

	buf.Write(u32le(uint32(appID)))
	buf.Write(u32le(uint32(len(payload))))
	buf.Write(u32le(1))
	buf.Write(u32le(1700000000))
	buf.Write(u64le(1))
	buf.Write(make([]byte, 20))
	buf.Write(u32le(1))
	buf.Write(payload)

	buf.Write(u32le(0))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestLaunchDryRunNative(t *testing.T) {
	steamRoot := t.TempDir()
	lib := steamRoot
	steamapps := filepath.Join(lib, "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(steamapps, "common", "MyGame"), 0o755))

	manifest := `"AppState" { "appid" "100" "name" "My Game" "installdir" "MyGame" }`
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "appmanifest_100.acf"), []byte(manifest), 0o644))

	appinfoPath := filepath.Join(t.TempDir(), "appinfo.vdf")
	writeAppinfoDB(t, appinfoPath, 100, nativePayload("My Game", "MyGame", "game.bin"))

	configDir := t.TempDir()

	deps := Deps{
		SteamRoot:   steamRoot,
		Libraries:   []string{lib},
		AppInfoPath: appinfoPath,
		ConfigDir:   configDir,
		Registry:    builtin.Registry(),
	}

	report, err := Launch(context.Background(), Request{AppID: 100, DryRun: true}, deps)
	require.NoError(t, err)
	require.NotEmpty(t, report.Argv)
	assert.Contains(t, report.Argv[0], "game.bin")
	assert.Equal(t, 0, report.PID)
}

func TestLaunchUnknownAppFails(t *testing.T) {
	steamRoot := t.TempDir()
	appinfoPath := filepath.Join(t.TempDir(), "appinfo.vdf")
	writeAppinfoDB(t, appinfoPath, 1, nativePayload("A", "A", "a.bin"))

	deps := Deps{
		SteamRoot:   steamRoot,
		Libraries:   []string{steamRoot},
		AppInfoPath: appinfoPath,
		ConfigDir:   t.TempDir(),
	}

	_, err := Launch(context.Background(), Request{AppID: 999, DryRun: true}, deps)
	require.Error(t, err)
}

func TestLaunchDryRunProtonWhenNoNativeOption(t *testing.T) {
	steamRoot := t.TempDir()
	lib := steamRoot
	steamapps := filepath.Join(lib, "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(steamapps, "common", "MyGame"), 0o755))

	manifest := `"AppState" { "appid" "200" "name" "My Game" "installdir" "MyGame" }`
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "appmanifest_200.acf"), []byte(manifest), 0o644))

	protonDir := filepath.Join(steamRoot, "compatibilitytools.d", "Proton Experimental")
	require.NoError(t, os.MkdirAll(protonDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(protonDir, "proton"), []byte("#!/bin/sh\n"), 0o755))

	appinfoPath := filepath.Join(t.TempDir(), "appinfo.vdf")
	writeAppinfoDB(t, appinfoPath, 200, windowsPayload("My Game", "MyGame", "game.exe"))

	deps := Deps{
		SteamRoot:   steamRoot,
		Libraries:   []string{lib},
		AppInfoPath: appinfoPath,
		ConfigDir:   t.TempDir(),
	}

	report, err := Launch(context.Background(), Request{AppID: 200, DryRun: true}, deps)
	require.NoError(t, err)
	require.NotEmpty(t, report.Argv)
	assert.Contains(t, report.Argv[0], "proton")
	assert.Contains(t, report.Argv[len(report.Argv)-1], "game.exe")
}

func TestFindProtonMissing(t *testing.T) {
	steamRoot := t.TempDir()
	_, err := FindProton(steamRoot, "", nil)
	require.Error(t, err)
}

func TestFindProtonCompatibilityTools(t *testing.T) {
	steamRoot := t.TempDir()
	dir := filepath.Join(steamRoot, "compatibilitytools.d", "GE-Proton9-10")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proton"), []byte("#!/bin/sh\n"), 0o755))

	path, err := FindProton(steamRoot, "GE-Proton9-10", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "proton"), path)
}
