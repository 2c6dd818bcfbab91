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

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/appinfo"
	"github.com/stl-next/stl-next/internal/completion"
	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/daemon"
	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/launcher"
	"github.com/stl-next/stl-next/internal/state"
)

var (
	launchDryRun    bool
	launchWait      bool
	launchCountdown int
)

var launchCmd = &cobra.Command{
	Use:   "launch <app_id|last> [-- extra args]",
	Short: "Compose and spawn a game's launch command",
	Long: `Resolve an app id against Steam's on-disk state, load its
per-app configuration, run the tinker pipeline over the composed
environment and argument vector, and exec the game.

With --wait, a wait-requester daemon (spec §4.7) runs first: it owns a
control socket that front-ends can connect to while the countdown
ticks, and only invokes the launch once it reaches Launching.`,
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
		if verbose {
			for _, w := range sc.Warnings {
				fmt.Fprintln(os.Stderr, "warning: "+w)
			}
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
		req := launcher.Request{
			AppID:     appID,
			ExtraArgs: args[1:],
			DryRun:    launchDryRun,
		}

		var report *launcher.LaunchReport
		if launchWait {
			report, err = launchWithDaemon(ctx, appID, sc, deps, req)
		} else {
			report, err = launcher.Launch(ctx, req, deps)
		}
		if err != nil {
			return err
		}

		if !launchDryRun {
			if saveErr := state.SaveActive(appID, ""); saveErr != nil && verbose {
				fmt.Fprintln(os.Stderr, "warning: record last-launched app: "+saveErr.Error())
			}
		}

		printLaunchReport(report)
		return nil
	},
}

// launchWithDaemon runs the wait-requester (spec §4.7) ahead of the
// launch itself, handing it a LaunchFunc that performs the same
// compose-and-spawn Launch does once the daemon reaches Launching.
func launchWithDaemon(ctx context.Context, appID int, sc steamContext, deps launcher.Deps, req launcher.Request) (*launcher.LaunchReport, error) {
	gc, warn := config.LoadGameConfig(sc.ConfigDir, appID)
	if warn != "" && verbose {
		fmt.Fprintln(os.Stderr, "warning: "+warn)
	}

	gi, err := appinfo.LookupGame(ctx, deps.AppInfoPath, appID, deps.Cache, deps.Libraries)
	if err != nil {
		return nil, err
	}

	var report *launcher.LaunchReport
	var launchErr error
	d := daemon.New(appID, gi.DisplayName, sc.ConfigDir, gc, launchCountdown, false, func() (int, error) {
		report, launchErr = launcher.Launch(ctx, req, deps)
		if launchErr != nil {
			return 0, launchErr
		}
		return report.PID, nil
	})

	fmt.Printf("waiting %ds before launching %s (app %d) -- control socket: %s\n",
		d.Countdown, gi.DisplayName, appID, daemon.SocketPath(appID))

	if err := d.Run(ctx); err != nil {
		return nil, err
	}
	if d.State == daemon.StateError {
		return nil, errs.New(errs.KindIO, "wait-requester daemon: "+d.ErrorMsg)
	}
	if launchErr != nil {
		return nil, launchErr
	}
	return report, nil
}

func printLaunchReport(r *launcher.LaunchReport) {
	labelStyle := lipgloss.NewStyle().Bold(true)

	if r.PID != 0 {
		fmt.Println(labelStyle.Render("spawned:"), fmt.Sprintf("pid=%d", r.PID))
	} else {
		fmt.Println(labelStyle.Render("dry run:"), "no process spawned")
	}
	fmt.Println(labelStyle.Render("argv:"), r.Argv)
	fmt.Println(labelStyle.Render("env vars:"), r.EnvVarCount)
	fmt.Println(labelStyle.Render("setup time:"), r.SetupTime)

	for _, w := range r.Warnings {
		fmt.Fprintf(os.Stderr, "warning: tinker %s: %s\n", w.TinkerID, w.Message)
	}
}

func init() {
	rootCmd.AddCommand(launchCmd)

	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false,
		"compose the launch without spawning the game process")
	launchCmd.Flags().BoolVar(&launchWait, "wait", false,
		"run the pre-launch countdown daemon before launching")
	launchCmd.Flags().IntVar(&launchCountdown, "countdown", 0,
		"countdown seconds for --wait (0 = STL_COUNTDOWN or the built-in default)")
}
