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

package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/steamlocate"
)

// ProtonNames completes a --runtime flag value against every
// Proton build discoverable under the Steam root's compatibilitytools.d
// and each library's steamapps/common.
func ProtonNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	root, err := steamlocate.FindRoot()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	libs, _ := steamlocate.LibraryFolders(root.Path)

	seen := map[string]struct{}{}
	var names []string

	addFrom := func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, e.Name(), "proton")); err != nil {
				continue
			}
			if _, dup := seen[e.Name()]; dup {
				continue
			}
			seen[e.Name()] = struct{}{}
			names = append(names, e.Name())
		}
	}

	addFrom(filepath.Join(root.Path, "compatibilitytools.d"))
	for _, lib := range libs {
		addFrom(filepath.Join(lib, "steamapps", "common"))
	}

	sort.Strings(names)

	out := names[:0:0]
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), strings.ToLower(toComplete)) {
			out = append(out, n)
		}
	}

	return out, cobra.ShellCompDirectiveNoFileComp
}
