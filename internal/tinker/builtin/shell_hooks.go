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

// PreLaunchHook runs an arbitrary user-supplied shell command before
// the game process is composed, synchronously, in Prepare. A non-zero
// exit is fatal only if the user opted into strict mode; otherwise it
// is a warning (their script, their call).
type PreLaunchHook struct{}

// ID implements tinker.Tinker.
func (PreLaunchHook) ID() string { return "pre_launch_hook" }

// Priority implements tinker.Tinker.
func (PreLaunchHook) Priority() int { return 10 }

// Applicable implements tinker.Tinker.
func (PreLaunchHook) Applicable(ctx *tinker.Context) bool {
	return settingString(ctx, "pre_launch_hook", "command") != ""
}

// Prepare implements tinker.Tinker.
func (PreLaunchHook) Prepare(ctx *tinker.Context) error {
	cmd := settingString(ctx, "pre_launch_hook", "command")
	if err := exec.Command("/bin/sh", "-c", cmd).Run(); err != nil {
		if settingEnabled(ctx, "pre_launch_hook") {
			return tinker.Fatal("pre-launch hook failed: " + err.Error())
		}
		return tinker.Warn("pre-launch hook failed: " + err.Error())
	}
	return nil
}

// ModifyEnv implements tinker.Tinker.
func (PreLaunchHook) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error { return nil }

// ModifyArgv implements tinker.Tinker.
func (PreLaunchHook) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }

// PostLaunchHook records a user-supplied command to run after the game
// exits. Since the launcher never waits on the child, this tinker only exports the command via environment variable
// for an external supervisor (e.g. the wait-requester daemon or a
// front-end) to invoke on process exit; it does not spawn anything
// itself.
type PostLaunchHook struct{}

// ID implements tinker.Tinker.
func (PostLaunchHook) ID() string { return "post_launch_hook" }

// Priority implements tinker.Tinker.
func (PostLaunchHook) Priority() int { return 990 }

// Applicable implements tinker.Tinker.
func (PostLaunchHook) Applicable(ctx *tinker.Context) bool {
	return settingString(ctx, "post_launch_hook", "command") != ""
}

// Prepare implements tinker.Tinker.
func (PostLaunchHook) Prepare(ctx *tinker.Context) error { return nil }

// ModifyEnv implements tinker.Tinker.
func (PostLaunchHook) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error {
	env.Set("STL_POST_LAUNCH_HOOK", settingString(ctx, "post_launch_hook", "command"))
	return nil
}

// ModifyArgv implements tinker.Tinker.
func (PostLaunchHook) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }
