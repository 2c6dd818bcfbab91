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

// Package launcher composes a game's environment and argument vector
// from Steam state, configuration and the tinker pipeline, then either
// reports the composition (dry run) or spawns it.
package launcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/stl-next/stl-next/internal/appinfo"
	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/pathutil"
	"github.com/stl-next/stl-next/internal/steamlocate"
	"github.com/stl-next/stl-next/internal/tinker"
)

// Deps are the collaborators a launch needs, assembled once by the
// caller (typically the cmd layer) and reused across invocations.
type Deps struct {
	SteamRoot   string
	Libraries   []string
	AppInfoPath string
	Cache       *appinfo.Cache
	ConfigDir   string
	Registry    *tinker.Registry
}

// Request is one launch invocation's inputs.
type Request struct {
	AppID     int
	ExtraArgs []string
	DryRun    bool
}

// LaunchReport summarizes a composed (and, unless DryRun, spawned)
// launch.
type LaunchReport struct {
	Argv        []string
	EnvVarCount int
	SetupTime   time.Duration
	PID         int // 0 when DryRun
	Warnings    []tinker.Warning
}

// Launch composes and, unless DryRun, spawns the game process.
func Launch(ctx context.Context, req Request, deps Deps) (*LaunchReport, error) {
	start := time.Now()

	gc, _ := config.LoadGameConfig(deps.ConfigDir, req.AppID)

	gi, err := appinfo.LookupGame(ctx, deps.AppInfoPath, req.AppID, deps.Cache, deps.Libraries)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, "resolve game info", err)
	}

	installPath, err := resolveInstallPath(deps.Libraries, req.AppID, gi.InstallDir)
	if err != nil {
		return nil, err
	}

	appIDStr := strconv.Itoa(req.AppID)
	prefixPath := filepath.Join(deps.SteamRoot, "steamapps", "compatdata", appIDStr, "pfx")
	scratchDir := filepath.Join(os.TempDir(), "stl-next", appIDStr)
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return nil, errs.Wrap(errs.KindIO, "create scratch directory", err)
	}

	env := tinker.NewEnvMap(os.Environ())
	env.Set("SteamAppId", appIDStr)
	env.Set("SteamGameId", appIDStr)
	env.Set("STEAM_COMPAT_DATA_PATH", prefixPath)

	argv, err := composePrimaryCommand(deps, gc, gi, installPath)
	if err != nil {
		return nil, err
	}

	argv.Append(req.ExtraArgs...)
	for _, tok := range strings.Fields(gc.ExtraLaunchArguments) {
		argv.Append(tok)
	}

	tctx := &tinker.Context{
		AppID:      req.AppID,
		GameName:   gi.DisplayName,
		InstallDir: installPath,
		PrefixPath: prefixPath,
		ScratchDir: scratchDir,
		ConfigDir:  deps.ConfigDir,
		Config:     &gc,
	}

	var warnings []tinker.Warning
	if deps.Registry != nil {
		warnings, err = tinker.Run(tctx, deps.Registry, env, argv)
		if err != nil {
			return nil, errs.Wrap(errs.KindTinker, "run tinker pipeline", err)
		}
	}

	report := &LaunchReport{
		Argv:        argv.Slice(),
		EnvVarCount: env.Len(),
		SetupTime:   time.Since(start),
		Warnings:    warnings,
	}

	if req.DryRun {
		return report, nil
	}

	argvSlice := argv.Slice()
	cmd := exec.Command(argvSlice[0], argvSlice[1:]...)
	cmd.Env = env.Pairs()
	cmd.Dir = installPath
	if err := cmd.Start(); err != nil {
		return nil, errs.Wrap(errs.KindIO, "spawn game process", err)
	}
	report.PID = cmd.Process.Pid

	return report, nil
}

// composePrimaryCommand determines the primary command:
// step 5: native execution when prefer_native is set or the appinfo
// entry has no Proton runtime hint; otherwise Proton.
func composePrimaryCommand(deps Deps, gc config.GameConfig, gi appinfo.GameInfo, installPath string) (*tinker.ArgVec, error) {
	nativePreferred := gc.PreferNative || gi.ProtonRuntimeHint == ""
	if nativePreferred && gi.PrimaryExecutable != "" {
		return tinker.NewArgVec(filepath.Join(installPath, gi.PrimaryExecutable)), nil
	}

	winExe := gi.ProtonRuntimeHint
	if winExe == "" {
		winExe = firstLaunchExecutable(gi)
	}
	if winExe == "" {
		return nil, errs.New(errs.KindNotFound, "no launch executable found in appinfo entry")
	}

	protonPath, err := FindProton(deps.SteamRoot, gc.RuntimeOverride, deps.Libraries)
	if err != nil {
		return nil, err
	}

	return tinker.NewArgVec(protonPath, "run", filepath.Join(installPath, winExe)), nil
}

func firstLaunchExecutable(gi appinfo.GameInfo) string {
	if len(gi.LaunchOptions) == 0 {
		return ""
	}
	return gi.LaunchOptions[0].Executable
}

// resolveInstallPath finds the absolute install directory for appID by
// matching it against the enumerated manifests across libraries.
func resolveInstallPath(libraries []string, appID int, installDir string) (string, error) {
	manifests, _ := steamlocate.ListInstalledGames(libraries)
	for _, m := range manifests {
		if m.AppID == appID {
			return m.InstallPath(), nil
		}
	}
	if len(libraries) > 0 && installDir != "" {
		// No manifest (e.g. a freshly indexed appinfo entry not yet
		// installed locally): fall back to the first library's common
		// directory joined with the appinfo-reported installdir.
		common := filepath.Join(libraries[0], "steamapps", "common")
		candidate := filepath.Join(common, installDir)
		if under, err := pathutil.IsUnderDir(candidate, common); err != nil || !under {
			return "", errs.New(errs.KindMalformed, "appinfo installdir escapes its library: "+installDir)
		}
		return candidate, nil
	}
	return "", errs.New(errs.KindNotFound, "app not found in any library folder")
}
