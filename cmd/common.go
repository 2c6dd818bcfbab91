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
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/stl-next/stl-next/internal/appinfo"
	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/state"
	"github.com/stl-next/stl-next/internal/steamlocate"
	"github.com/stl-next/stl-next/internal/tinker"
	"github.com/stl-next/stl-next/internal/tinker/builtin"
)

// steamContext bundles the discovery results every game-targeting
// command needs: the located root, its library folders, and the
// resolved configuration directory. Built once per invocation.
type steamContext struct {
	Root      steamlocate.Root
	Libraries []string
	ConfigDir string
	Warnings  []string
}

// resolveSteamContext runs C2 (spec §4.2) honoring the "steam_root"
// CLI-level override, then resolves C4's config directory (spec
// §4.4). Library-folder parse failures degrade to warnings, per spec;
// an unresolvable Steam root or config directory is fatal.
func resolveSteamContext() (steamContext, error) {
	var sc steamContext

	if override := viper.GetString("steam_root"); override != "" {
		sc.Root = steamlocate.Root{Path: override, Class: steamlocate.ClassUnknown}
	} else {
		root, err := steamlocate.FindRoot()
		if err != nil {
			return steamContext{}, err
		}
		sc.Root = root
	}

	libs, warnings := steamlocate.LibraryFolders(sc.Root.Path)
	sc.Libraries = libs
	sc.Warnings = append(sc.Warnings, warnings...)

	configDir, err := config.Dir()
	if err != nil {
		return steamContext{}, err
	}
	sc.ConfigDir = configDir

	return sc, nil
}

// appInfoPath returns the binary appinfo database's conventional
// location under a Steam root.
func appInfoPath(root steamlocate.Root) string {
	return filepath.Join(root.Path, "appcache", "appinfo.vdf")
}

// openAppInfoCache opens the seek-offset cache (DOMAIN STACK, C3) at
// its conventional XDG data location.
func openAppInfoCache(ctx context.Context) (*appinfo.Cache, error) {
	path, err := xdg.DataFile(filepath.Join("stl-next", "appinfo-cache.db"))
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, "resolve appinfo cache path", err)
	}
	return appinfo.OpenCache(ctx, path)
}

// builtinRegistry builds the stock C5 tinker registry.
func builtinRegistry() *tinker.Registry {
	return builtin.Registry()
}

// resolveAppID parses a CLI app-id argument, treating the literal
// "last" as a reference to the most recently launched app (internal/state).
func resolveAppID(arg string) (int, error) {
	if arg == "last" {
		a, err := state.LoadActive()
		if err != nil {
			return 0, errs.Wrap(errs.KindIO, "load last-launched state", err)
		}
		if a.AppID == 0 {
			return 0, errs.New(errs.KindNotFound, "no app has been launched yet")
		}
		return a.AppID, nil
	}

	appID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errs.Wrap(errs.KindMalformed, "app id", err)
	}
	return appID, nil
}
