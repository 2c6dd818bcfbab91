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

// nonsteamCmd manages the user-added (non-Steam) game registry
// persisted at <config_dir>/nonsteam.toml (spec §6).
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
)

var nonsteamCmd = &cobra.Command{
	Use:   "nonsteam",
	Short: "Manage user-added (non-Steam) games",
}

var nonsteamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user-added games",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := config.Dir()
		if err != nil {
			return err
		}

		reg, warn := config.LoadNonSteamRegistry(configDir)
		if warn != "" {
			fmt.Println("warning:", warn)
		}

		rows := [][]string{}
		for _, g := range reg.Games {
			rows = append(rows, []string{
				fmt.Sprintf(" %d ", g.AppID),
				fmt.Sprintf(" %s ", g.Name),
				fmt.Sprintf(" %s ", g.Executable),
			})
		}
		fmt.Println(table.New().Headers(" App ID ", " Name ", " Executable ").Rows(rows...))
		return nil
	},
}

var nonsteamAddCmd = &cobra.Command{
	Use:   "add <name> <executable> [arguments]",
	Short: "Register a new non-Steam game and assign it a negative app id",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := config.Dir()
		if err != nil {
			return err
		}

		reg, _ := config.LoadNonSteamRegistry(configDir)

		arguments := ""
		if len(args) == 3 {
			arguments = args[2]
		}

		id := config.AddNonSteamGame(&reg, args[0], args[1], arguments)
		if err := reg.Games[len(reg.Games)-1].Validate(); err != nil {
			return errs.Wrap(errs.KindMalformed, "non-steam game", err)
		}

		if err := config.SaveNonSteamRegistry(configDir, reg); err != nil {
			return errs.Wrap(errs.KindIO, "save non-steam registry", err)
		}

		fmt.Printf("registered %q as app id %d\n", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nonsteamCmd)
	nonsteamCmd.AddCommand(nonsteamListCmd)
	nonsteamCmd.AddCommand(nonsteamAddCmd)
}
