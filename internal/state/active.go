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

// Package state persists the single app id stl-next last launched, so
// "wait" and "ui" can be pointed at it without retyping an app id.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Active records the most recently launched app.
type Active struct {
	AppID     int    `json:"app_id"`
	GameName  string `json:"game_name,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func activeFile() (string, error) {
	return xdg.StateFile(filepath.Join("stl-next", "active.json"))
}

// LoadActive returns the zero Active{} if no launch has been recorded
// yet, or if the record is absent or unreadable -- neither is fatal to
// a caller that can fall back to requiring an explicit app id.
func LoadActive() (Active, error) {
	p, err := activeFile()
	if err != nil {
		return Active{}, err
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Active{}, nil
		}
		return Active{}, fmt.Errorf("read %s: %w", p, err)
	}

	var a Active
	if err := json.Unmarshal(b, &a); err != nil {
		return Active{}, fmt.Errorf("parse %s: %w", p, err)
	}
	return a, nil
}

// SaveActive records appID (and its display name, if known) as the
// most recently launched app.
func SaveActive(appID int, gameName string) error {
	p, err := activeFile()
	if err != nil {
		return err
	}

	a := Active{
		AppID:     appID,
		GameName:  gameName,
		UpdatedAt: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s -> %s: %w", tmp, p, err)
	}

	return nil
}
