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

// Package builtin holds stl-next's stock tinkers: small, independent
// effects applied to a launch's environment and argv.
package builtin

import "github.com/stl-next/stl-next/internal/tinker"

// Overlay enables the MangoHud performance overlay by exporting
// MANGOHUD=1, the documented way to opt an arbitrary Linux game binary
// into it without wrapping argv.
type Overlay struct{}

// ID implements tinker.Tinker.
func (Overlay) ID() string { return "overlay" }

// Priority implements tinker.Tinker.
func (Overlay) Priority() int { return 100 }

// Applicable implements tinker.Tinker.
func (Overlay) Applicable(ctx *tinker.Context) bool {
	return settingEnabled(ctx, "overlay")
}

// Prepare implements tinker.Tinker.
func (Overlay) Prepare(ctx *tinker.Context) error { return nil }

// ModifyEnv implements tinker.Tinker.
func (Overlay) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error {
	env.Set("MANGOHUD", "1")
	return nil
}

// ModifyArgv implements tinker.Tinker.
func (Overlay) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }
