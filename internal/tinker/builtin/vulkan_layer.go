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

// VulkanPostProcess enables a Vulkan layer chain (e.g. vkBasalt) via
// ENABLE_VKBASALT (plus VKBASALT_CONFIG_FILE when config_path is set),
// layered underneath MangoHud if
// both are enabled (lower priority than Overlay so it configures first
// without ordering conflicts between the two environment writes).
type VulkanPostProcess struct{}

// ID implements tinker.Tinker.
func (VulkanPostProcess) ID() string { return "vulkan_postprocess" }

// Priority implements tinker.Tinker.
func (VulkanPostProcess) Priority() int { return 90 }

// Applicable implements tinker.Tinker.
func (VulkanPostProcess) Applicable(ctx *tinker.Context) bool {
	return settingEnabled(ctx, "vulkan_postprocess")
}

// Prepare implements tinker.Tinker.
func (VulkanPostProcess) Prepare(ctx *tinker.Context) error { return nil }

// ModifyEnv implements tinker.Tinker.
func (VulkanPostProcess) ModifyEnv(ctx *tinker.Context, env *tinker.EnvMap) error {
	env.Set("ENABLE_VKBASALT", "1")
	if cfg := settingString(ctx, "vulkan_postprocess", "config_path"); cfg != "" {
		env.Set("VKBASALT_CONFIG_FILE", cfg)
	}
	return nil
}

// ModifyArgv implements tinker.Tinker.
func (VulkanPostProcess) ModifyArgv(ctx *tinker.Context, argv *tinker.ArgVec) error { return nil }
