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
	"os"

	"github.com/stl-next/stl-next/internal/tinker"
)

// ShaderInjector points DXVK/VKD3D's shader caches at a per-game
// scratch path (<scratch_dir>/shadercache), so
// per-title shader state doesn't collide across installs sharing one
// Proton prefix family.
type ShaderInjector struct{}

// ID implements tinker.Tinker.
func (ShaderInjector) ID() string { return "shader_injector" }

// Priority implements tinker.Tinker.
func (ShaderInjector) Priority() int { return 110 }

// Applicable implements tinker.Tinker.
func (ShaderInjector) Applicable(ctx *tinker.Context) bool {
	return settingEnabled(ctx, "shader_injector")
}

// Prepare implements tinker.Tinker.
func (ShaderInjector) Prepare(ctx *tinker.Context) error {
	if ctx.ScratchDir == "" {
		return nil
	}
	dir := ctx.ScratchDir + "/shadercache"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return tinker.Warn("create shader cache dir: " + err.Error())
	}
	return nil
}

// ModifyEnv implements tinker.Tinker.
func (ShaderInjector) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error {
	if ctx.ScratchDir == "" {
		return nil
	}
	env.Set("DXVK_STATE_CACHE_PATH", ctx.ScratchDir+"/shadercache")
	env.Set("VKD3D_SHADER_CACHE_PATH", ctx.ScratchDir+"/shadercache")
	return nil
}

// ModifyArgv implements tinker.Tinker.
func (ShaderInjector) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }
