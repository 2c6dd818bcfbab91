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

// Package config resolves stl-next's configuration directory and loads
// per-app launch configuration plus the user-added (non-Steam) game
// registry.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"

	"github.com/stl-next/stl-next/internal/errs"
)

// Dir resolves the configuration directory in priority order:
//
//  1. STL_CONFIG_DIR environment variable (expected absolute)
//  2. $XDG_CONFIG_HOME/stl-next
//  3. $HOME/.config/stl-next
//
// Returns *errs.Error of KindEnvironment if none is resolvable.
func Dir() (string, error) {
	if d := os.Getenv("STL_CONFIG_DIR"); d != "" {
		return d, nil
	}

	if xdg.ConfigHome != "" {
		return filepath.Join(xdg.ConfigHome, "stl-next"), nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "stl-next"), nil
	}

	return "", errs.New(errs.KindEnvironment, "no config directory: set STL_CONFIG_DIR, XDG_CONFIG_HOME or HOME")
}

// GamesDir returns <config_dir>/games, the directory holding one TOML
// file per app.
func GamesDir(configDir string) string {
	return filepath.Join(configDir, "games")
}

// gamePath returns <config_dir>/games/<app_id>.toml.
func gamePath(configDir string, appID int) string {
	return filepath.Join(GamesDir(configDir), strconv.Itoa(appID)+".toml")
}
