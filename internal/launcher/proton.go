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
	"os"
	"path/filepath"

	"github.com/stl-next/stl-next/internal/errs"
)

// DefaultProtonName is used when GameConfig.RuntimeOverride is empty
//.
const DefaultProtonName = "Proton Experimental"

// FindProton locates a Proton binary by name: first under the Steam
// root's compatibilitytools.d (user-installed custom builds such as
// GE-Proton), then under each library folder's steamapps/common (the
// Steam-distributed builds). Returns *errs.Error of KindNotFound if
// absent from every candidate.
func FindProton(steamRoot, name string, libraries []string) (string, error) {
	if name == "" {
		name = DefaultProtonName
	}

	candidate := filepath.Join(steamRoot, "compatibilitytools.d", name, "proton")
	if isExecutableFile(candidate) {
		return candidate, nil
	}

	for _, lib := range libraries {
		candidate = filepath.Join(lib, "steamapps", "common", name, "proton")
		if isExecutableFile(candidate) {
			return candidate, nil
		}
	}

	return "", errs.New(errs.KindNotFound, "proton build not found: "+name)
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
