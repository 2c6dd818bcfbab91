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
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/launcher"
	"github.com/stl-next/stl-next/internal/steamlocate"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on stl-next's environment",
	Long: `Run a health check confirming stl-next can operate:

  - Steam installation discovery (root, library folders, active user)
  - Configuration directory resolution and writability
  - The binary appinfo database's presence
  - The offset cache's openability
  - A default Proton build's findability

Doctor does not modify Steam or your game installs. It does create the
configuration directory if missing, writes and removes a probe file
there, and creates and migrates the offset cache.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		run := func() error {
			if err := checkSteamRoot(); err != nil {
				return err
			}
			if err := checkConfigDir(); err != nil {
				return err
			}
			if err := checkAppInfoCache(); err != nil {
				return err
			}
			if err := checkDefaultProton(); err != nil {
				return err
			}
			return nil
		}

		if err := run(); err != nil {
			return err
		}
		return nil
	},
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func checkSteamRoot() error {
	fmt.Println(headerStyle.Render("Steam Discovery"))

	root, err := steamlocate.FindRoot()
	if err != nil {
		fmt.Println(errStyle.Render("  ✗ no Steam installation found"))
		fmt.Println(subtleStyle.Render("    " + err.Error()))
		fmt.Println()
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("  ✓ found Steam root (%s): %s", root.Class, root.Path)))

	libs, warnings := steamlocate.LibraryFolders(root.Path)
	fmt.Println(okStyle.Render(fmt.Sprintf("  ✓ %d library folder(s)", len(libs))))
	for _, w := range warnings {
		fmt.Println(warnStyle.Render("  ⚠ " + w))
	}

	if user, ok, warn := steamlocate.FindActiveUser(root.Path); ok {
		fmt.Println(okStyle.Render("  ✓ active user: " + user.PersonaName))
	} else if warn != "" {
		fmt.Println(warnStyle.Render("  ⚠ " + warn))
	} else {
		fmt.Println(warnStyle.Render("  ⚠ no active user found in loginusers.vdf"))
	}

	fmt.Println()
	return nil
}

func checkConfigDir() error {
	fmt.Println(headerStyle.Render("Configuration Directory"))

	sc, err := resolveSteamContext()
	if err != nil {
		fmt.Println(errStyle.Render("  ✗ " + err.Error()))
		fmt.Println()
		return err
	}

	testFile := sc.ConfigDir + "/.stl-next-doctor-write-test"
	if mkErr := os.MkdirAll(sc.ConfigDir, 0o755); mkErr != nil {
		fmt.Println(errStyle.Render("  ✗ cannot create config directory: " + mkErr.Error()))
		fmt.Println()
		return mkErr
	}
	if wErr := os.WriteFile(testFile, []byte("ok"), 0o600); wErr != nil {
		fmt.Println(errStyle.Render("  ✗ config directory not writable: " + wErr.Error()))
		fmt.Println()
		return wErr
	}
	_ = os.Remove(testFile)

	fmt.Println(okStyle.Render("  ✓ " + sc.ConfigDir + " exists and is writable"))
	fmt.Println()
	return nil
}

func checkAppInfoCache() error {
	fmt.Println(headerStyle.Render("App-info Database"))

	sc, err := resolveSteamContext()
	if err != nil {
		return err
	}

	path := appInfoPath(sc.Root)
	if info, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			fmt.Println(warnStyle.Render("  ⚠ appinfo database not found: " + path))
		} else {
			fmt.Println(errStyle.Render("  ✗ cannot stat appinfo database: " + statErr.Error()))
		}
	} else {
		fmt.Println(okStyle.Render(fmt.Sprintf("  ✓ appinfo database present (%d bytes)", info.Size())))
	}

	ctx := context.Background()
	cache, err := openAppInfoCache(ctx)
	if err != nil {
		fmt.Println(errStyle.Render("  ✗ cannot open offset cache: " + err.Error()))
		fmt.Println()
		return err
	}
	defer cache.Close()
	fmt.Println(okStyle.Render("  ✓ offset cache opened and migrated"))

	fmt.Println()
	return nil
}

func checkDefaultProton() error {
	fmt.Println(headerStyle.Render("Proton"))

	sc, err := resolveSteamContext()
	if err != nil {
		return err
	}

	path, err := launcher.FindProton(sc.Root.Path, "", sc.Libraries)
	if err != nil {
		fmt.Println(warnStyle.Render("  ⚠ " + launcher.DefaultProtonName + " not found: " + err.Error()))
		fmt.Println()
		return nil
	}
	fmt.Println(okStyle.Render("  ✓ " + launcher.DefaultProtonName + ": " + path))
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
