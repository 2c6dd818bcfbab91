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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/tinker"
)

func ctxWithSettings(settings map[string]interface{}) *tinker.Context {
	return &tinker.Context{
		Config: &config.GameConfig{TinkerSettings: settings},
	}
}

func TestOverlayNotApplicableByDefault(t *testing.T) {
	ov := Overlay{}
	assert.False(t, ov.Applicable(ctxWithSettings(nil)))
}

func TestOverlaySetsMangohud(t *testing.T) {
	ov := Overlay{}
	ctx := ctxWithSettings(map[string]interface{}{
		"overlay": map[string]interface{}{"enabled": true},
	})
	require.True(t, ov.Applicable(ctx))

	env := tinker.NewEnvMap(nil)
	require.NoError(t, ov.ModifyEnv(ctx, env))
	v, ok := env.Get("MANGOHUD")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestCompositorWrapsArgv(t *testing.T) {
	cw := CompositorWrapper{}
	ctx := ctxWithSettings(map[string]interface{}{
		"compositor": map[string]interface{}{"enabled": true, "width": "1920", "height": "1080"},
	})
	require.True(t, cw.Applicable(ctx))

	argv := tinker.NewArgVec("game")
	require.NoError(t, cw.ModifyArgv(ctx, argv))
	assert.Equal(t, []string{"gamescope", "-W", "1920", "-H", "1080", "--", "game"}, argv.Slice())
}

func TestShaderInjectorSetsCachePaths(t *testing.T) {
	si := ShaderInjector{}
	ctx := ctxWithSettings(map[string]interface{}{
		"shader_injector": map[string]interface{}{"enabled": true},
	})
	ctx.ScratchDir = "/tmp/stl-next/100"
	require.True(t, si.Applicable(ctx))

	env := tinker.NewEnvMap(nil)
	require.NoError(t, si.ModifyEnv(ctx, env))
	v, _ := env.Get("DXVK_STATE_CACHE_PATH")
	assert.Equal(t, "/tmp/stl-next/100/shadercache", v)
}

func TestRegistryContainsAllBuiltins(t *testing.T) {
	reg := Registry()
	assert.Len(t, reg.All(), len(IDs))
	for _, id := range IDs {
		_, ok := reg.ByID(id)
		assert.True(t, ok, "missing builtin %s", id)
	}
}
