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

// Package completion holds shell-completion callbacks for cobra's
// ValidArgsFunction hook, one file per completable resource.
package completion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/steamlocate"
)

// AppIDs completes an <app_id> positional argument against every
// installed Steam game plus the user-added non-Steam registry.
// Candidates are returned in "app_id\tdisplay name" form.
func AppIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var root steamlocate.Root
	if r, err := steamlocate.FindRoot(); err == nil {
		root = r
	} else {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	libs, _ := steamlocate.LibraryFolders(root.Path)
	manifests, _ := steamlocate.ListInstalledGames(libs)

	out := make([]string, 0, len(manifests))
	for _, m := range manifests {
		if !strings.HasPrefix(strconv.Itoa(m.AppID), toComplete) {
			continue
		}
		out = append(out, fmt.Sprintf("%d\t%s", m.AppID, m.Name))
	}

	if configDir, err := config.Dir(); err == nil {
		reg, _ := config.LoadNonSteamRegistry(configDir)
		for _, g := range reg.Games {
			if !strings.HasPrefix(strconv.Itoa(g.AppID), toComplete) {
				continue
			}
			out = append(out, fmt.Sprintf("%d\t%s", g.AppID, g.Name))
		}
	}

	return out, cobra.ShellCompDirectiveNoFileComp
}
