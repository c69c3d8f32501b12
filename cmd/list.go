// KitBox - Agent SDK Installer
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the SDKs in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := loadCatalog(cmd)
		if err != nil {
			ui.Errorf("Failed to load catalog: %v", err)
		}
		baseDir, _ := installBaseDir(cmd)

		ui.LogoSmall()
		fmt.Println()
		ui.Cecho("Available SDKs:", ui.Cyan)
		fmt.Println()
		fmt.Printf("  %-18s %-12s %-12s %s\n", "SDK", "LANGUAGE", "STATUS", "DESCRIPTION")
		fmt.Printf("  %-18s %-12s %-12s %s\n", "---", "--------", "------", "-----------")

		for _, e := range cat.AllKits() {
			statusText := "not cloned"
			statusColor := ui.Dim
			target := filepath.Join(baseDir, catalog.RepoDirName(e.Repo))
			if _, err := os.Stat(target); err == nil {
				statusText = "cloned"
				statusColor = ui.Green
			}

			fmt.Printf("  %-18s %-12s %s%-12s%s %s\n",
				e.Name, cat.DisplayName(e.LangKey),
				statusColor, statusText, ui.NC,
				e.Description)
		}

		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  kitbox                   Run the interactive installer")
		fmt.Println("  kitbox uninstall [sdk]   Remove installed SDK checkouts")
		fmt.Println("  kitbox info              Show system information")
		fmt.Println("  kitbox update            Update KitBox to the latest version")
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
