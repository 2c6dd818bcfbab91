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

// This file is the thin terminal control-protocol client the core's
// interface is specified against (spec §1: "terminal and graphical
// front-ends" are out of scope). It deliberately does nothing beyond
// one round trip per invocation -- a full interactive front-end is an
// external collaborator.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/completion"
	"github.com/stl-next/stl-next/internal/daemon"
	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/protocol"
)

var uiAction string
var uiTinkerID string

var uiCmd = &cobra.Command{
	Use:   "ui <app_id|last>",
	Short: "Send one control request to a running wait-requester daemon",
	Long: `Connect to the per-app control socket (spec §4.8) and send a
single request, printing the response. Defaults to GetStatus. This is
the minimal client the daemon's protocol is specified against; richer
terminal or graphical front-ends are external collaborators (spec
§1).`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completion.AppIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appID, err := resolveAppID(args[0])
		if err != nil {
			return err
		}

		action := protocol.Action(uiAction)
		switch action {
		case protocol.ActionPauseLaunch, protocol.ActionResumeLaunch, protocol.ActionProceed,
			protocol.ActionAbort, protocol.ActionGetStatus, protocol.ActionGetGameInfo,
			protocol.ActionGetTinkers, protocol.ActionToggleTinker, protocol.ActionUpdateConfig:
		case "":
			action = protocol.ActionGetStatus
		default:
			return errs.New(errs.KindMalformed, "unrecognized action: "+uiAction)
		}

		req := protocol.Request{Action: action, TinkerID: uiTinkerID}
		resp, err := protocol.Call(daemon.SocketPath(appID), req)
		if err != nil {
			return err
		}

		printControlResponse(resp)
		return nil
	},
}

func printControlResponse(resp protocol.Response) {
	labelStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(labelStyle.Render("state:"), resp.State)
	fmt.Println(labelStyle.Render("countdown:"), resp.CountdownSeconds)
	fmt.Println(labelStyle.Render("game:"), fmt.Sprintf("%s (app %d)", resp.GameName, resp.AppID))
	if resp.ErrorMessage != "" {
		fmt.Println(labelStyle.Render("error:"), resp.ErrorMessage)
	}
	for id, enabled := range resp.TinkerEnabled {
		fmt.Printf("  %s: %v\n", id, enabled)
	}
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiAction, "action", "GetStatus",
		"control action to send (PauseLaunch, ResumeLaunch, Proceed, Abort, GetStatus, GetGameInfo, GetTinkers, ToggleTinker, UpdateConfig)")
	uiCmd.Flags().StringVar(&uiTinkerID, "tinker", "", "tinker id, required for ToggleTinker")
}
