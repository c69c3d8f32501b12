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

	"github.com/cloud-exit/kitbox/internal/ui"
	"github.com/cloud-exit/kitbox/internal/update"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update KitBox to the latest version",
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate()
	},
}

func runUpdate() {
	fmt.Println("Checking for updates...")

	latest, err := update.GetLatestVersion()
	if err != nil {
		ui.Errorf("Failed to check for updates: %v", err)
	}

	if !update.IsNewer(Version, latest) {
		ui.Successf("KitBox is up to date (v%s)", Version)
		return
	}

	fmt.Printf("Updating KitBox: v%s → v%s...\n", Version, latest)

	spin := ui.NewSpinner("Downloading update")
	spin.Start()
	err = update.DownloadAndReplace(update.BinaryURL(latest))
	elapsed := spin.Stop()
	if err != nil {
		ui.Errorf("Update failed: %v", err)
	}

	ui.Successf("KitBox updated to v%s (%.1fs)", latest, elapsed.Seconds())
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
