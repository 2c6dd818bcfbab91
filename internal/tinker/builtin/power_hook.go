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

// PowerHook wraps the command with a CPU governor/power-profile
// helper (e.g. "powerprofilesctl launch --profile=performance --").
// Non-fatal if the helper is missing from PATH: the governor change is
// a nicety, not a launch requirement.
type PowerHook struct{}

// ID implements tinker.Tinker.
func (PowerHook) ID() string { return "power_hook" }

// Priority implements tinker.Tinker.
func (PowerHook) Priority() int { return 800 }

// Applicable implements tinker.Tinker.
func (PowerHook) Applicable(ctx *tinker.Context) bool {
	return settingEnabled(ctx, "power_hook")
}

// Prepare implements tinker.Tinker.
func (PowerHook) Prepare(ctx *tinker.Context) error {
	if _, err := exec.LookPath("powerprofilesctl"); err != nil {
		return tinker.Warn("powerprofilesctl not found: " + err.Error())
	}
	return nil
}

// ModifyEnv implements tinker.Tinker.
func (PowerHook) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error { return nil }

// ModifyArgv implements tinker.Tinker.
func (PowerHook) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error {
	profile := settingString(ctx, "power_hook", "profile")
	if profile == "" {
		profile = "performance"
	}
	argv.PushFront("powerprofilesctl", "launch", "--profile="+profile, "--")
	return nil
}
