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

// IDs lists every built-in tinker's stable identifier, in registration
// order (not priority order), for use where a fixed enumeration is
// needed independent of the registry (e.g. the daemon's tinker
// snapshot bitmap and the control protocol's per-tinker booleans).
var IDs = []string{
	"overlay",
	"compositor",
	"power_hook",
	"winlibs",
	"pre_launch_hook",
	"post_launch_hook",
	"vulkan_postprocess",
	"shader_injector",
	"helper_app",
}

// Registry builds the stock tinker.Registry containing every built-in.
func Registry() *tinker.Registry {
	return tinker.NewRegistry(
		Overlay{},
		CompositorWrapper{},
		PowerHook{},
		WinLibs{},
		PreLaunchHook{},
		PostLaunchHook{},
		VulkanPostProcess{},
		ShaderInjector{},
		HelperAppLauncher{},
	)
}
