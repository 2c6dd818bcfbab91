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

// settingsFor returns the per-tinker settings sub-map stored under
// GameConfig.TinkerSettings[id], or nil if absent.
func settingsFor(ctx *tinker.Context, id string) map[string]interface{} {
	if ctx.Config == nil || ctx.Config.TinkerSettings == nil {
		return nil
	}
	raw, ok := ctx.Config.TinkerSettings[id]
	if !ok {
		return nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	return m
}

// settingEnabled reports whether GameConfig.TinkerSettings[id].enabled
// is truthy. Absence means disabled, matching GameConfig's
// all-defaults-false invariant.
func settingEnabled(ctx *tinker.Context, id string) bool {
	m := settingsFor(ctx, id)
	if m == nil {
		return false
	}
	v, ok := m["enabled"]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// settingString returns GameConfig.TinkerSettings[id][key] as a
// string, or "" if absent or not a string.
func settingString(ctx *tinker.Context, id, key string) string {
	m := settingsFor(ctx, id)
	if m == nil {
		return ""
	}
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
