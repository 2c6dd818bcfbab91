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

// Package steamlocate discovers a Steam installation, its library
// folders and active user, and enumerates installed games.
//
// Grounded on modctl's internal/refresh.go: candidateSteamRoots,
// discoverSteamLibraries and parseAppManifest share this package's
// "probe fixed candidate roots, tolerate missing/malformed VDF as a
// warning, never fail the whole scan over one bad file" discipline.
package steamlocate

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/stl-next/stl-next/internal/errs"
)

// InstallClass tags how the discovered Steam root is packaged.
type InstallClass int

const (
	ClassUnknown InstallClass = iota
	ClassNative
	ClassFlatpak
	ClassSnap
)

func (c InstallClass) String() string {
	switch c {
	case ClassNative:
		return "native"
	case ClassFlatpak:
		return "flatpak"
	case ClassSnap:
		return "snap"
	default:
		return "unknown"
	}
}

// Root is a located Steam installation.
type Root struct {
	Path  string
	Class InstallClass
}

type candidateRoot struct {
	path  string
	class InstallClass
}

// candidateRoots returns the fixed set of probe locations relative to
// the invoker's home directory: native Steam, Flatpak data,
// Snap common.
func candidateRoots(home string) []candidateRoot {
	return []candidateRoot{
		{path: filepath.Join(home, ".local", "share", "Steam"), class: ClassNative},
		{path: filepath.Join(home, ".steam", "steam"), class: ClassNative},
		{path: filepath.Join(xdg.DataHome, "Steam"), class: ClassNative},
		{
			path:  filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam"),
			class: ClassFlatpak,
		},
		{
			path:  filepath.Join(home, "snap", "steam", "common", ".local", "share", "Steam"),
			class: ClassSnap,
		},
	}
}

// markerFile is the file whose presence confirms a candidate root is a
// real Steam installation, not just an empty directory.
const markerFile = "steam.sh"

// FindRoot probes the candidate roots in order and returns the first one
// containing the marker file. Returns an *errs.Error of KindEnvironment
// if none is found.
func FindRoot() (Root, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Root{}, errs.Wrap(errs.KindEnvironment, "resolve home directory", err)
	}

	for _, c := range candidateRoots(home) {
		marker := filepath.Join(c.path, markerFile)
		if info, statErr := os.Stat(marker); statErr == nil && !info.IsDir() {
			return Root{Path: c.path, Class: c.class}, nil
		}
	}

	return Root{}, errs.New(errs.KindEnvironment, "no Steam installation found")
}
