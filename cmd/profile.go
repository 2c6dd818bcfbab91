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

// profileCmd groups the "profile-*" verbs named in spec §6: reading
// and editing a single app's GameConfig (spec §3, §4.4).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/completion"
	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and edit a game's launch configuration",
}

var profileShowCmd = &cobra.Command{
	Use:               "show <app_id|last>",
	Short:             "Print an app's resolved GameConfig",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completion.AppIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appID, err := resolveAppID(args[0])
		if err != nil {
			return err
		}

		configDir, err := config.Dir()
		if err != nil {
			return err
		}

		gc, warn := config.LoadGameConfig(configDir, appID)
		if warn != "" {
			fmt.Println("warning:", warn)
		}

		fmt.Printf("app_id: %d\n", gc.AppID)
		fmt.Printf("prefer_native: %v\n", gc.PreferNative)
		fmt.Printf("runtime_override: %q\n", gc.RuntimeOverride)
		fmt.Printf("extra_launch_arguments: %q\n", gc.ExtraLaunchArguments)
		fmt.Printf("proton_advanced: %+v\n", gc.ProtonAdvanced)
		fmt.Printf("gpu_preference: %+v\n", gc.GPUPreference)
		fmt.Printf("steamgriddb_settings: %+v\n", gc.SteamGridDBSettings)
		for id, settings := range gc.TinkerSettings {
			fmt.Printf("tinker_settings.%s: %v\n", id, settings)
		}
		return nil
	},
}

var (
	profileSetPreferNative bool
	profileSetRuntime      string
	profileSetExtraArgs    string
)

var profileSetCmd = &cobra.Command{
	Use:               "set <app_id|last>",
	Short:             "Update an app's GameConfig and save it",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completion.AppIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appID, err := resolveAppID(args[0])
		if err != nil {
			return err
		}

		configDir, err := config.Dir()
		if err != nil {
			return err
		}

		gc, _ := config.LoadGameConfig(configDir, appID)

		if cmd.Flags().Changed("prefer-native") {
			gc.PreferNative = profileSetPreferNative
		}
		if cmd.Flags().Changed("runtime") {
			gc.RuntimeOverride = profileSetRuntime
		}
		if cmd.Flags().Changed("extra-args") {
			gc.ExtraLaunchArguments = profileSetExtraArgs
		}

		if err := config.SaveGameConfig(configDir, gc); err != nil {
			return errs.Wrap(errs.KindIO, "save game config", err)
		}
		fmt.Printf("saved %d.toml\n", appID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().BoolVar(&profileSetPreferNative, "prefer-native", false,
		"prefer the native Linux executable over Proton")
	profileSetCmd.Flags().StringVar(&profileSetRuntime, "runtime", "",
		"Proton build name override (empty = default)")
	profileSetCmd.Flags().StringVar(&profileSetExtraArgs, "extra-args", "",
		"extra launch arguments, split on whitespace at launch time")
	_ = profileSetCmd.RegisterFlagCompletionFunc("runtime", completion.ProtonNames)
}
