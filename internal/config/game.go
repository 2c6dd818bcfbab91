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

package config

import (
	"bytes"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// maxConfigFileSize is the largest per-app config file accepted before
// reading; larger files are rejected without being parsed.
const maxConfigFileSize = 1 << 20 // 1 MiB

// ProtonAdvanced holds the fine-grained Proton knobs a user may pin,
// separate from the simple prefer_native/runtime_override fields.
type ProtonAdvanced struct {
	ForceSteamDeckDisplay bool   `mapstructure:"force_steamdeck_display"`
	EnableEsync           bool   `mapstructure:"enable_esync"`
	EnableFsync           bool   `mapstructure:"enable_fsync"`
	WineDebugChannels     string `mapstructure:"wine_debug_channels"`
}

// SteamGridDBSettings holds artwork-lookup preferences; stl-next never
// contacts the network itself but persists the user's
// chosen identifiers for front-ends that do.
type SteamGridDBSettings struct {
	GridID string `mapstructure:"grid_id"`
	HeroID string `mapstructure:"hero_id"`
	IconID string `mapstructure:"icon_id"`
}

// GPUPreference pins which GPU a multi-GPU system should launch on.
type GPUPreference struct {
	VendorHint string `mapstructure:"vendor_hint"` // e.g. "nvidia", "amd", ""
	DRMDevice  string `mapstructure:"drm_device"`  // e.g. "/dev/dri/card1"
}

// GameConfig is the per-app settings record. The zero value
// is the all-defaults instance returned whenever no file exists.
type GameConfig struct {
	AppID                 int                    `mapstructure:"-"`
	PreferNative          bool                   `mapstructure:"prefer_native"`
	RuntimeOverride       string                 `mapstructure:"runtime_override"`
	ExtraLaunchArguments  string                 `mapstructure:"extra_launch_arguments"`
	TinkerSettings        map[string]interface{} `mapstructure:"tinker_settings"`
	SteamGridDBSettings   SteamGridDBSettings    `mapstructure:"steamgriddb_settings"`
	ProtonAdvanced        ProtonAdvanced         `mapstructure:"proton_advanced"`
	GPUPreference         GPUPreference          `mapstructure:"gpu_preference"`
}

// LoadGameConfig returns appID's configuration from <configDir>/games,
// or the all-defaults instance if the file is absent, oversized, or
// fails to parse. It never returns an error for those three cases;
// ConfigFileTooLarge and malformed-file conditions are only ever
// surfaced as a warning string.
func LoadGameConfig(configDir string, appID int) (GameConfig, string) {
	defaults := GameConfig{AppID: appID, TinkerSettings: map[string]interface{}{}}

	path := gamePath(configDir, appID)
	fs := afero.NewOsFs()

	info, err := fs.Stat(path)
	if err != nil {
		return defaults, ""
	}
	if info.Size() > maxConfigFileSize {
		return defaults, "config file too large (> 1 MiB), using defaults: " + path
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return defaults, "read config file, using defaults: " + err.Error()
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return defaults, "parse config file, using defaults: " + err.Error()
	}

	var gc GameConfig
	if err := v.Unmarshal(&gc); err != nil {
		return defaults, "decode config file, using defaults: " + err.Error()
	}
	gc.AppID = appID
	if gc.TinkerSettings == nil {
		gc.TinkerSettings = map[string]interface{}{}
	}
	return gc, ""
}

// SaveGameConfig writes gc to <configDir>/games/<app_id>.toml,
// creating the games directory idempotently and writing atomically
// via create-truncate-then-rename, matching the pattern
// used for the active-state file.
func SaveGameConfig(configDir string, gc GameConfig) error {
	v := viper.New()
	v.SetConfigType("toml")
	v.Set("prefer_native", gc.PreferNative)
	v.Set("runtime_override", gc.RuntimeOverride)
	v.Set("extra_launch_arguments", gc.ExtraLaunchArguments)
	v.Set("tinker_settings", gc.TinkerSettings)
	v.Set("steamgriddb_settings", gc.SteamGridDBSettings)
	v.Set("proton_advanced", gc.ProtonAdvanced)
	v.Set("gpu_preference", gc.GPUPreference)

	gamesDir := GamesDir(configDir)
	if err := os.MkdirAll(gamesDir, 0o755); err != nil {
		return err
	}

	path := gamePath(configDir, gc.AppID)
	tmp := path + ".tmp"
	if err := v.WriteConfigAs(tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
