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

package daemon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/protocol"
)

func TestDaemonSkipWaitGoesStraightToLaunching(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	configDir := t.TempDir()

	launched := false
	d := New(100, "My Game", configDir, config.GameConfig{AppID: 100, TinkerSettings: map[string]interface{}{}}, 5, true, func() (int, error) {
		launched = true
		return 4242, nil
	})

	err := d.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, launched)
	assert.Equal(t, StateRunning, d.State)
	assert.Equal(t, 4242, d.PID)
}

func TestDaemonCountdownReachesLaunching(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	configDir := t.TempDir()

	d := New(200, "Other Game", configDir, config.GameConfig{AppID: 200, TinkerSettings: map[string]interface{}{}}, 1, false, func() (int, error) {
		return 7, nil
	})

	start := time.Now()
	err := d.Run(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
	assert.Equal(t, StateRunning, d.State)
}

func TestDaemonServesStatusAndAbort(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	configDir := t.TempDir()

	d := New(300, "Third Game", configDir, config.GameConfig{AppID: 300, TinkerSettings: map[string]interface{}{}}, 3, false, func() (int, error) {
		return 1, nil
	})

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()

	// Give the loop time to bind before dialing.
	var path string
	for i := 0; i < 50; i++ {
		time.Sleep(20 * time.Millisecond)
		path = d.socketPath
		if path != "" {
			break
		}
	}
	require.NotEmpty(t, path)

	var resp protocol.Response
	var err error
	for i := 0; i < 20; i++ {
		resp, err = protocol.Call(path, protocol.Request{Action: protocol.ActionGetStatus})
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	assert.Equal(t, "Countdown", resp.State)
	assert.Equal(t, 300, resp.AppID)

	resp, err = protocol.Call(path, protocol.Request{Action: protocol.ActionAbort})
	require.NoError(t, err)
	assert.Equal(t, "Finished", resp.State)

	err = <-done
	require.NoError(t, err)
}

func TestDaemonToggleTinkerPersistsOnLaunch(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	configDir := t.TempDir()

	d := New(400, "Fourth Game", configDir, config.GameConfig{AppID: 400, TinkerSettings: map[string]interface{}{}}, 0, true, func() (int, error) {
		return 1, nil
	})

	enabled := true
	d.handle(protocol.Request{Action: protocol.ActionToggleTinker, TinkerID: "overlay", Enabled: &enabled})

	err := d.Run(context.Background())
	require.NoError(t, err)

	saved, warning := config.LoadGameConfig(configDir, 400)
	assert.Empty(t, warning)
	overlaySettings, ok := saved.TinkerSettings["overlay"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, overlaySettings["enabled"])
}
