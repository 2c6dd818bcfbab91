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
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stl-next/stl-next/internal/nxm"
)

var nxmEncodeOnly bool

var nxmCmd = &cobra.Command{
	Use:   "nxm <nxm-url>",
	Short: "Parse an nxm:// mod-download URL and print its fields",
	Long: `Decompose an nxm:// URI per the grammar in spec §4.9 and print its
fields, flagging a collection link with no pinned revision as valid but
incomplete. With --encode-only, print only the Wine-safe encoded form
(spec §4.9's encode_for_host) without parsing -- this is the literal
string a mod-manager forwarder should hand to the compatibility
runtime.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]

		if nxmEncodeOnly {
			encoded, err := nxm.EncodeForHost(raw)
			if err != nil {
				return err
			}
			fmt.Println(encoded)
			return nil
		}

		u, err := nxm.Parse(raw)
		if err != nil {
			return err
		}

		printNxmURL(u)

		encoded, err := nxm.EncodeForHost(raw)
		if err == nil {
			fmt.Println(lipgloss.NewStyle().Bold(true).Render("host-safe:"), encoded)
		}
		return nil
	},
}

func printNxmURL(u nxm.URL) {
	labelStyle := lipgloss.NewStyle().Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	fmt.Println(labelStyle.Render("kind:"), u.Kind)
	fmt.Println(labelStyle.Render("game domain:"), u.GameDomain)

	switch u.Kind {
	case nxm.KindMod:
		fmt.Println(labelStyle.Render("mod id:"), u.ModID)
		if u.HasFileID {
			fmt.Println(labelStyle.Render("file id:"), u.FileID)
		}
	case nxm.KindCollection:
		fmt.Println(labelStyle.Render("collection slug:"), u.CollectionSlug)
		if u.HasRevisionID {
			fmt.Println(labelStyle.Render("revision id:"), u.RevisionID)
		} else {
			fmt.Println(warnStyle.Render("⚠ valid but incomplete: no pinned revision"))
		}
	}

	if u.DownloadKey != "" {
		fmt.Println(labelStyle.Render("download key:"), u.DownloadKey)
	}
	if u.HasExpires {
		fmt.Println(labelStyle.Render("expires at:"), u.ExpiresAt)
	}
}

func init() {
	rootCmd.AddCommand(nxmCmd)
	nxmCmd.Flags().BoolVar(&nxmEncodeOnly, "encode-only", false,
		"print only the Wine-safe encoded form, without parsing")
}
