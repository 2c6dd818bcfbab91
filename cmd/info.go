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
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/appinfo"
	"github.com/stl-next/stl-next/internal/completion"
	"github.com/stl-next/stl-next/internal/config"
)

var infoCmd = &cobra.Command{
	Use:               "info <app_id|last>",
	Short:             "Show what stl-next knows about an app id",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completion.AppIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appID, err := resolveAppID(args[0])
		if err != nil {
			return err
		}

		sc, err := resolveSteamContext()
		if err != nil {
			return err
		}

		ctx := context.Background()
		cache, err := openAppInfoCache(ctx)
		if err != nil {
			return err
		}
		defer cache.Close()

		gi, err := appinfo.LookupGame(ctx, appInfoPath(sc.Root), appID, cache, sc.Libraries)
		if err != nil {
			return err
		}

		gc, warn := config.LoadGameConfig(sc.ConfigDir, appID)

		fmt.Println(renderGameInfo(gi, gc, warn))
		return nil
	},
}

func renderGameInfo(gi appinfo.GameInfo, gc config.GameConfig, configWarning string) string {
	cardBorder := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Bold(true).MarginTop(1)
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	header := cardBorder.Render(titleStyle.Render(gi.DisplayName) + "\n" +
		subtleStyle.Render(fmt.Sprintf("app id %d", gi.AppID)))

	var b strings.Builder
	b.WriteString(header + "\n")

	b.WriteString(sectionStyle.Render("Install") + "\n")
	writeKV(&b, "Installed:", strconv.FormatBool(gi.IsInstalled))
	writeKV(&b, "Directory:", gi.InstallDir)
	writeKV(&b, "Primary exe:", gi.PrimaryExecutable)
	writeKV(&b, "Proton hint:", gi.ProtonRuntimeHint)

	b.WriteString(sectionStyle.Render("Launch options") + "\n")
	if len(gi.LaunchOptions) == 0 {
		b.WriteString("  (none)\n")
	} else {
		for _, lo := range gi.LaunchOptions {
			line := "  • " + lo.Executable
			if lo.Arguments != "" {
				line += " " + lo.Arguments
			}
			if lo.OSList != "" {
				line += "  [" + lo.OSList + "]"
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(sectionStyle.Render("Configuration") + "\n")
	writeKV(&b, "Prefer native:", strconv.FormatBool(gc.PreferNative))
	runtime := gc.RuntimeOverride
	if runtime == "" {
		runtime = "(default)"
	}
	writeKV(&b, "Runtime:", runtime)
	if configWarning != "" {
		b.WriteString("\n" + warnStyle.Render("⚠ "+configWarning) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeKV(b *strings.Builder, label, value string) {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(14)
	b.WriteString("  " + labelStyle.Render(label) + " " + value + "\n")
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
