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

	"github.com/stl-next/stl-next/internal/vdf"
)

// ActiveUser is the Steam account most recently used on this machine,
// resolved from loginusers.vdf.
type ActiveUser struct {
	SteamID     string
	AccountName string
	PersonaName string
}

// FindActiveUser parses <root>/config/loginusers.vdf and returns the
// entry with MostRecent == "1". If more than one entry claims
// MostRecent, the first encountered in file order wins. Returns
// ok == false if the file is absent, malformed, or no entry is marked
// most-recent — none of which are fatal to the caller.
func FindActiveUser(root string) (user ActiveUser, ok bool, warning string) {
	path := filepath.Join(root, "config", "loginusers.vdf")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return ActiveUser{}, false, "read " + path + ": " + err.Error()
		}
		return ActiveUser{}, false, ""
	}

	m, err := vdf.ParseText(data)
	if err != nil {
		return ActiveUser{}, false, "parse " + path + ": " + err.Error()
	}

	top, exists := m.Get("users")
	if !exists {
		return ActiveUser{}, false, ""
	}
	users, exists := top.Map()
	if !exists {
		return ActiveUser{}, false, ""
	}

	for _, steamID := range users.Keys() {
		entryVal, _ := users.Get(steamID)
		entry, isMap := entryVal.Map()
		if !isMap {
			continue
		}

		mostRecent, _ := entry.Get("MostRecent")
		if mostRecent.AsString() != "1" {
			continue
		}

		accountName := ""
		if v, has := entry.Get("AccountName"); has {
			accountName = v.AsString()
		}
		personaName := ""
		if v, has := entry.Get("PersonaName"); has {
			personaName = v.AsString()
		}

		return ActiveUser{
			SteamID:     steamID,
			AccountName: accountName,
			PersonaName: personaName,
		}, true, ""
	}

	return ActiveUser{}, false, ""
}
