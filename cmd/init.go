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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "initializes stl-next's configuration directory and appinfo cache",
	Long: `Initialize stl-next's local state.

Creates the configuration directory and its games/ subdirectory, and
opens (creating and migrating if absent) the binary appinfo database's
seek-offset cache. This command is safe to run multiple times and will
not overwrite existing data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		configDir, err := config.Dir()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return errs.Wrap(errs.KindIO, "create config directory", err)
		}

		if err := os.MkdirAll(config.GamesDir(configDir), 0o755); err != nil {
			return errs.Wrap(errs.KindIO, "create games directory", err)
		}

		cache, err := openAppInfoCache(ctx)
		if err != nil {
			return err
		}
		defer cache.Close()

		fmt.Println("initialized", configDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
