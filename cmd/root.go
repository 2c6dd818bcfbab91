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

// Package cmd implements stl-next's command-line surface: the verbs
// named in spec §6 (launch, info, list-games, list-protons, wait, ui,
// nxm, profile, doctor, init), wired against the internal/ packages
// that do the actual work. Help text, flag wiring and output
// formatting live here; none of the core algorithms do.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stl-next",
	Short: "steam launch tinkering, the next one",
	Long: `stl-next orchestrates the launch of Steam (and non-Steam) games with
auxiliary "tinker" behaviors: performance overlays, compositor wrappers,
power hooks, and mod-manager hand-off.

stl-next  Copyright © 2026  stl-next contributors
This program comes with ABSOLUTELY NO WARRANTY; This program is free
software, and you are welcome to redistribute it under certain conditions;
You should have received a copy of the GNU General Public License (version
3) along with this program. If not, see https://www.gnu.org/licenses/.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if e, ok := errs.As(err); ok {
			fmt.Fprintln(os.Stderr, e.Error())
		} else {
			fmt.Fprintln(os.Stderr, "runtime: "+err.Error())
		}
		os.Exit(errs.ExitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is $XDG_CONFIG_HOME/stl-next/config.toml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"enable verbose output",
	)
}

// initConfig reads the CLI-level settings file and environment
// variables, if set. This is distinct from the per-app GameConfig
// (spec §4.4): it only carries the handful of "where is Steam / where
// is Proton" overrides a user might want to pin globally.
func initConfig() {
	viper.SetDefault("steam_root", "")
	viper.SetDefault("proton", "")

	if cfgFile != "" {
		// User explicitly provided a config file: it must work.
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("toml")

		if err := viper.ReadInConfig(); err != nil {
			cobra.CheckErr(err)
		}

		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file: ", viper.ConfigFileUsed())
		}

		return
	}

	configDir, err := config.Dir()
	if err != nil {
		// No config directory resolvable yet: commands that need one
		// will surface the same *errs.Error themselves. The CLI-level
		// settings file is optional polish, not load-bearing.
		return
	}

	defaultPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(defaultPath); errors.Is(err, os.ErrNotExist) {
		return // default config file doesn't exist -- use defaults
	}

	viper.SetConfigFile(defaultPath)
	viper.SetConfigType("toml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
		cobra.CheckErr(err)
		return
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Using config file: ", viper.ConfigFileUsed())
	}
}
