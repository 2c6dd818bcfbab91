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

// WinLibs sets WINEDLLOVERRIDES so a Proton prefix loads
// native-or-builtin replacements for specific Windows DLLs (the same
// mechanism protontricks/winetricks use to install dxvk, vkd3d, or a
// user-supplied override such as a cracked launcher DLL).
type WinLibs struct{}

// ID implements tinker.Tinker.
func (WinLibs) ID() string { return "winlibs" }

// Priority implements tinker.Tinker.
func (WinLibs) Priority() int { return 200 }

// Applicable implements tinker.Tinker.
func (WinLibs) Applicable(ctx *tinker.Context) bool {
	return settingEnabled(ctx, "winlibs")
}

// Prepare implements tinker.Tinker.
func (WinLibs) Prepare(ctx *tinker.Context) error { return nil }

// ModifyEnv implements tinker.Tinker.
func (WinLibs) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error {
	overrides := settingString(ctx, "winlibs", "overrides")
	if overrides == "" {
		return nil
	}
	env.Set("WINEDLLOVERRIDES", overrides)
	return nil
}

// ModifyArgv implements tinker.Tinker.
func (WinLibs) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }
