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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var listProtonsCmd = &cobra.Command{
	Use:   "list-protons",
	Short: "Enumerate Proton/compatibility-tool builds findable by launch",
	Long: `Enumerate every Proton build FindProton (spec §4.6) would be able to
resolve: custom builds under compatibilitytools.d, then the
Steam-distributed builds under each library folder's steamapps/common.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := resolveSteamContext()
		if err != nil {
			return err
		}

		type row struct {
			name, source string
		}
		var rows []row
		seen := map[string]bool{}

		customDir := filepath.Join(sc.Root.Path, "compatibilitytools.d")
		if entries, err := os.ReadDir(customDir); err == nil {
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				if hasProtonBinary(filepath.Join(customDir, e.Name())) && !seen[e.Name()] {
					seen[e.Name()] = true
					rows = append(rows, row{name: e.Name(), source: "custom"})
				}
			}
		}

		for _, lib := range sc.Libraries {
			commonDir := filepath.Join(lib, "steamapps", "common")
			entries, err := os.ReadDir(commonDir)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if !e.IsDir() || !strings.HasPrefix(e.Name(), "Proton") {
					continue
				}
				if hasProtonBinary(filepath.Join(commonDir, e.Name())) && !seen[e.Name()] {
					seen[e.Name()] = true
					rows = append(rows, row{name: e.Name(), source: "steam"})
				}
			}
		}

		sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

		data := [][]string{}
		for _, r := range rows {
			data = append(data, []string{fmt.Sprintf(" %s ", r.name), fmt.Sprintf(" %s ", r.source)})
		}
		fmt.Println(table.New().Headers(" Name ", " Source ").Rows(data...))
		return nil
	},
}

func hasProtonBinary(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "proton"))
	return err == nil && !info.IsDir()
}

func init() {
	rootCmd.AddCommand(listProtonsCmd)
}
