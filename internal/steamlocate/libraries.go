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
	"sort"
	"strconv"

	"github.com/stl-next/stl-next/internal/vdf"
)

// LibraryFolders parses <root>/steamapps/libraryfolders.vdf and returns
// the union of the root itself with every child library path,
// deduplicated. A missing file yields just the root with no warning;
// an unreadable or malformed file yields just the root plus a warning
// rather than a hard error.
func LibraryFolders(root string) (libs []string, warnings []string) {
	seen := map[string]struct{}{root: {}}
	libs = []string{root}

	path := filepath.Join(root, "steamapps", "libraryfolders.vdf")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, "read "+path+": "+err.Error())
		}
		return libs, warnings
	}

	m, err := vdf.ParseText(data)
	if err != nil {
		warnings = append(warnings, "parse "+path+": "+err.Error())
		return libs, warnings
	}

	top, ok := m.Get("libraryfolders")
	if !ok {
		warnings = append(warnings, path+": missing top-level \"libraryfolders\" key")
		return libs, warnings
	}
	lf, ok := top.Map()
	if !ok {
		warnings = append(warnings, path+": \"libraryfolders\" is not a map")
		return libs, warnings
	}

	for _, key := range lf.Keys() {
		// Library entries are numeric keys ("0", "1", ...); others
		// ("contentstatsid" and similar) are ignored.
		if _, convErr := strconv.Atoi(key); convErr != nil {
			continue
		}

		entry, _ := lf.Get(key)
		var p string
		switch entry.Kind() {
		case vdf.KindString:
			// Old-style format: "1" "/path/to/library"
			p, _ = entry.String()
		case vdf.KindMap:
			// New-style format: "1" { "path" "/path" ... }
			sub, _ := entry.Map()
			pv, ok := sub.Get("path")
			if !ok {
				continue
			}
			p, _ = pv.String()
		default:
			continue
		}

		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		libs = append(libs, clean)
	}

	sort.Strings(libs[1:])
	return libs, warnings
}
