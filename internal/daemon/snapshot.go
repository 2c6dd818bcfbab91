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

import "github.com/stl-next/stl-next/internal/tinker/builtin"

// tinkerSnapshot tracks the live enabled/disabled state of every
// built-in tinker for the lifetime of one daemon run, keyed over the
// fixed builtin.IDs enumeration so ToggleTinker requests never grow an
// unbounded map from client-supplied ids.
type tinkerSnapshot struct {
	enabled map[string]bool
}

func newTinkerSnapshot(initial map[string]bool) *tinkerSnapshot {
	s := &tinkerSnapshot{enabled: make(map[string]bool, len(builtin.IDs))}
	for _, id := range builtin.IDs {
		s.enabled[id] = initial[id]
	}
	return s
}

func (s *tinkerSnapshot) Enabled(id string) bool {
	return s.enabled[id]
}

// Toggle flips id's state, or sets it explicitly when want is non-nil.
// Unknown ids are ignored; the fixed enumeration is closed.
func (s *tinkerSnapshot) Toggle(id string, want *bool) {
	if _, known := s.enabled[id]; !known {
		return
	}
	if want != nil {
		s.enabled[id] = *want
		return
	}
	s.enabled[id] = !s.enabled[id]
}

// Snapshot returns a copy safe for a response payload.
func (s *tinkerSnapshot) Snapshot() map[string]bool {
	out := make(map[string]bool, len(s.enabled))
	for _, id := range builtin.IDs {
		out[id] = s.enabled[id]
	}
	return out
}

// ApplyTo merges the snapshot's per-tinker enabled flag into gc's
// tinker_settings map so a transition to Launching persists the
// user's in-session toggles into the launch it gates.
func (s *tinkerSnapshot) ApplyTo(tinkerSettings map[string]interface{}) map[string]interface{} {
	if tinkerSettings == nil {
		tinkerSettings = map[string]interface{}{}
	}
	for _, id := range builtin.IDs {
		sub, ok := tinkerSettings[id].(map[string]interface{})
		if !ok {
			sub = map[string]interface{}{}
		}
		sub["enabled"] = s.enabled[id]
		tinkerSettings[id] = sub
	}
	return tinkerSettings
}
