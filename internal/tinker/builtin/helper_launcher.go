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

package builtin

import (
	"os/exec"

	"github.com/stl-next/stl-next/internal/tinker"
)

// HelperAppLauncher starts a companion process (e.g. a controller
// mapper or a Discord rich-presence bridge) alongside the game,
// detached, without wrapping the game's own argv. Failure to start the
// helper never blocks the game itself.
type HelperAppLauncher struct{}

// ID implements tinker.Tinker.
func (HelperAppLauncher) ID() string { return "helper_app" }

// Priority implements tinker.Tinker.
func (HelperAppLauncher) Priority() int { return 50 }

// Applicable implements tinker.Tinker.
func (HelperAppLauncher) Applicable(ctx *tinker.Context) bool {
	return settingString(ctx, "helper_app", "executable") != ""
}

// Prepare implements tinker.Tinker.
func (HelperAppLauncher) Prepare(ctx *tinker.Context) error {
	exe := settingString(ctx, "helper_app", "executable")
	cmd := exec.Command(exe)
	if err := cmd.Start(); err != nil {
		return tinker.Warn("start helper app: " + err.Error())
	}
	return nil
}

// ModifyEnv implements tinker.Tinker.
func (HelperAppLauncher) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error { return nil }

// ModifyArgv implements tinker.Tinker.
func (HelperAppLauncher) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }
