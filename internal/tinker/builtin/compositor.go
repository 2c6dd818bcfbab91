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

import "github.com/stl-next/stl-next/internal/tinker"

// CompositorWrapper runs the game under gamescope, a nested Wayland
// compositor commonly used for borderless/fullscreen management. It
// wraps the whole command, so it must run after any inner wrapper
// (Proton itself is prepended by the launcher before the pipeline
// runs) — hence the high priority, which makes it the outermost
// PushFront in modify_argv.
type CompositorWrapper struct{}

// ID implements tinker.Tinker.
func (CompositorWrapper) ID() string { return "compositor" }

// Priority implements tinker.Tinker.
func (CompositorWrapper) Priority() int { return 900 }

// Applicable implements tinker.Tinker.
func (CompositorWrapper) Applicable(ctx *tinker.Context) bool {
	return settingEnabled(ctx, "compositor")
}

// Prepare implements tinker.Tinker.
func (CompositorWrapper) Prepare(ctx *tinker.Context) error { return nil }

// ModifyEnv implements tinker.Tinker.
func (CompositorWrapper) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error { return nil }

// ModifyArgv implements tinker.Tinker.
func (CompositorWrapper) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error {
	args := []string{"gamescope"}
	if w := settingString(ctx, "compositor", "width"); w != "" {
		args = append(args, "-W", w)
	}
	if h := settingString(ctx, "compositor", "height"); h != "" {
		args = append(args, "-H", h)
	}
	args = append(args, "--")
	argv.PushFront(args...)
	return nil
}
