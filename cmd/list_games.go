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

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/steamlocate"
)

var listGamesCmd = &cobra.Command{
	Use:   "list-games",
	Short: "Enumerate installed Steam (and user-added) games",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := resolveSteamContext()
		if err != nil {
			return err
		}

		manifests, warnings := steamlocate.ListInstalledGames(sc.Libraries)
		if verbose {
			for _, w := range warnings {
				fmt.Println("warning:", w)
			}
		}

		rows := [][]string{}
		for _, m := range manifests {
			rows = append(rows, []string{
				fmt.Sprintf(" %d ", m.AppID),
				fmt.Sprintf(" %s ", m.Name),
				fmt.Sprintf(" %s ", m.InstallDir),
			})
		}

		reg, _ := config.LoadNonSteamRegistry(sc.ConfigDir)
		for _, g := range reg.Games {
			rows = append(rows, []string{
				fmt.Sprintf(" %d ", g.AppID),
				fmt.Sprintf(" %s ", g.Name),
				fmt.Sprintf(" %s ", g.Executable),
			})
		}

		t := table.New().Headers(" App ID ", " Name ", " Install Dir / Executable ").Rows(rows...)
		fmt.Println(t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listGamesCmd)
}
