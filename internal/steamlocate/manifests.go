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
	"strconv"
	"strings"

	"github.com/stl-next/stl-next/internal/vdf"
)

// AppManifest is the subset of an appmanifest_<id>.acf that stl-next
// needs to resolve a game's on-disk location.
type AppManifest struct {
	AppID       int
	Name        string
	InstallDir  string
	LibraryPath string
}

// InstallPath is the directory containing the game's files:
// <library>/steamapps/common/<InstallDir>.
func (m AppManifest) InstallPath() string {
	return filepath.Join(m.LibraryPath, "steamapps", "common", m.InstallDir)
}

// ListInstalledGames enumerates appmanifest_*.acf across every library
// folder. Order is deterministic (library order, then filename order
// within a library) but otherwise arbitrary; callers must not depend on
// it matching Steam's own ordering. A manifest that fails to parse is
// skipped with a warning, not fatal to the overall scan.
func ListInstalledGames(libraries []string) (manifests []AppManifest, warnings []string) {
	for _, lib := range libraries {
		dir := filepath.Join(lib, "steamapps")
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				warnings = append(warnings, "read "+dir+": "+err.Error())
			}
			continue
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			n := e.Name()
			if !e.IsDir() && strings.HasPrefix(n, "appmanifest_") && strings.HasSuffix(n, ".acf") {
				names = append(names, n)
			}
		}

		for _, n := range names {
			path := filepath.Join(dir, n)
			am, warn, err := parseAppManifest(path, lib)
			if err != nil {
				warnings = append(warnings, "parse "+path+": "+err.Error())
				continue
			}
			if warn != "" {
				warnings = append(warnings, warn)
			}
			manifests = append(manifests, am)
		}
	}

	return manifests, warnings
}

func parseAppManifest(path, libraryPath string) (AppManifest, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppManifest{}, "", err
	}

	m, err := vdf.ParseText(data)
	if err != nil {
		return AppManifest{}, "", err
	}

	top, ok := m.Get("AppState")
	if !ok {
		return AppManifest{}, "", nil
	}
	state, ok := top.Map()
	if !ok {
		return AppManifest{}, "", nil
	}

	var warn string
	var id int
	if v, ok := state.Get("appid"); ok {
		s := v.AsString()
		id, _ = strconv.Atoi(s)
	}
	if id == 0 {
		warn = path + ": missing or non-numeric appid"
	}

	name := ""
	if v, ok := state.Get("name"); ok {
		name = v.AsString()
	}

	installDir := ""
	if v, ok := state.Get("installdir"); ok {
		installDir = v.AsString()
	}

	return AppManifest{
		AppID:       id,
		Name:        name,
		InstallDir:  installDir,
		LibraryPath: libraryPath,
	}, warn, nil
}
