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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/appinfo"
	"github.com/stl-next/stl-next/internal/completion"
	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/daemon"
	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/launcher"
	"github.com/stl-next/stl-next/internal/state"
)

var waitCountdown int

var waitCmd = &cobra.Command{
	Use:   "wait <app_id|last> [-- extra args]",
	Short: "Run the wait-requester daemon standalone, then launch",
	Long: `Bind the per-app control socket, run the countdown state machine
(spec §4.7) to completion -- honoring client Pause/Resume/Proceed/Abort
requests over it -- and invoke the same compose-and-spawn path launch
uses once the countdown reaches Launching.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completion.AppIDs,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		appID, err := resolveAppID(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sc, err := resolveSteamContext()
		if err != nil {
			return err
		}

		cache, err := openAppInfoCache(ctx)
		if err != nil {
			return err
		}
		defer cache.Close()

		deps := launcher.Deps{
			SteamRoot:   sc.Root.Path,
			Libraries:   sc.Libraries,
			AppInfoPath: appInfoPath(sc.Root),
			Cache:       cache,
			ConfigDir:   sc.ConfigDir,
			Registry:    builtinRegistry(),
		}
		req := launcher.Request{AppID: appID, ExtraArgs: args[1:]}

		gc, _ := config.LoadGameConfig(sc.ConfigDir, appID)
		gi, err := appinfo.LookupGame(ctx, deps.AppInfoPath, appID, cache, deps.Libraries)
		if err != nil {
			return err
		}

		var report *launcher.LaunchReport
		var launchErr error
		d := daemon.New(appID, gi.DisplayName, sc.ConfigDir, gc, waitCountdown, false, func() (int, error) {
			report, launchErr = launcher.Launch(ctx, req, deps)
			if launchErr != nil {
				return 0, launchErr
			}
			return report.PID, nil
		})

		fmt.Printf("stl-next wait: app=%d socket=%s countdown=%ds\n", appID, daemon.SocketPath(appID), d.Countdown)

		if err := d.Run(ctx); err != nil {
			return err
		}
		if d.State == daemon.StateError {
			return errs.New(errs.KindIO, "wait-requester daemon: "+d.ErrorMsg)
		}
		if launchErr != nil {
			return launchErr
		}
		if report != nil {
			if saveErr := state.SaveActive(appID, gi.DisplayName); saveErr != nil && verbose {
				fmt.Fprintln(os.Stderr, "warning: record last-launched app: "+saveErr.Error())
			}
			printLaunchReport(report)
		} else {
			fmt.Println("aborted before launch")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntVar(&waitCountdown, "countdown", 0,
		"countdown seconds (0 = STL_COUNTDOWN or the built-in default)")
}
