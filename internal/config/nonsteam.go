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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// NonSteamGame is one user-added entry in the non-Steam game registry.
// AppID is negative, starting at -1000 and decreasing monotonically
//.
type NonSteamGame struct {
	AppID      int    `mapstructure:"app_id"`
	Name       string `mapstructure:"name"`
	Executable string `mapstructure:"executable"`
	Arguments  string `mapstructure:"arguments"`
}

// NonSteamRegistry is the full set of user-added games, persisted at
// <config_dir>/nonsteam.toml.
type NonSteamRegistry struct {
	Games []NonSteamGame `mapstructure:"games"`
}

const firstNonSteamAppID = -1000

func nonSteamPath(configDir string) string {
	return filepath.Join(configDir, "nonsteam.toml")
}

// LoadNonSteamRegistry returns the registry at <config_dir>/nonsteam.toml,
// or an empty registry if the file is absent or fails to parse.
func LoadNonSteamRegistry(configDir string) (NonSteamRegistry, string) {
	path := nonSteamPath(configDir)
	if _, err := os.Stat(path); err != nil {
		return NonSteamRegistry{}, ""
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return NonSteamRegistry{}, "parse non-steam registry, using empty set: " + err.Error()
	}

	var reg NonSteamRegistry
	if err := v.Unmarshal(&reg); err != nil {
		return NonSteamRegistry{}, "decode non-steam registry, using empty set: " + err.Error()
	}
	return reg, ""
}

// SaveNonSteamRegistry writes reg atomically, matching the same
// create-temp-then-rename shape used for the active-state file and
// per-app game configs.
func SaveNonSteamRegistry(configDir string, reg NonSteamRegistry) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("games", reg.Games)

	path := nonSteamPath(configDir)
	tmp := path + ".tmp"
	if err := v.WriteConfigAs(tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// NextNonSteamAppID returns the next free negative app id for reg: the
// lowest existing id minus one, or -1000 if reg is empty.
func NextNonSteamAppID(reg NonSteamRegistry) int {
	next := firstNonSteamAppID
	for _, g := range reg.Games {
		if g.AppID <= next {
			next = g.AppID - 1
		}
	}
	return next
}

// AddNonSteamGame appends a new entry with an auto-assigned AppID and
// returns the assigned id.
func AddNonSteamGame(reg *NonSteamRegistry, name, executable, arguments string) int {
	id := NextNonSteamAppID(*reg)
	reg.Games = append(reg.Games, NonSteamGame{
		AppID:      id,
		Name:       name,
		Executable: executable,
		Arguments:  arguments,
	})
	return id
}

// Validate reports a descriptive error if g's fields violate the
// registry's invariants (non-empty name/executable, negative id).
func (g NonSteamGame) Validate() error {
	if g.AppID >= 0 {
		return fmt.Errorf("non-steam game app id must be negative, got %d", g.AppID)
	}
	if g.Name == "" {
		return fmt.Errorf("non-steam game name must not be empty")
	}
	if g.Executable == "" {
		return fmt.Errorf("non-steam game executable must not be empty")
	}
	return nil
}
