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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/ui"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [sdk]",
	Short: "Uninstall KitBox or a specific SDK checkout",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := loadCatalog(cmd)
		if err != nil {
			ui.Errorf("Failed to load catalog: %v", err)
		}
		baseDir, _ := installBaseDir(cmd)

		if len(args) == 0 {
			// Full uninstall
			fmt.Println("This will UNINSTALL KITBOX COMPLETELY.")
			fmt.Println("Actions:")
			fmt.Printf("  - Remove all SDK checkouts under %s\n", baseDir)
			fmt.Println("  - Remove the KitBox configuration directory")
			fmt.Println()
			fmt.Print("Are you sure? [y/N] ")

			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(response)
			if !strings.EqualFold(response, "y") {
				ui.Info("Cancelled")
				return
			}

			for _, e := range cat.AllKits() {
				target := filepath.Join(baseDir, catalog.RepoDirName(e.Repo))
				if _, err := os.Stat(target); err != nil {
					continue
				}
				if err := os.RemoveAll(target); err != nil {
					ui.Warnf("Failed to remove %s: %v", target, err)
				}
			}

			_ = os.RemoveAll(catalog.Home)

			ui.Success("KitBox uninstalled successfully.")
			return
		}

		// Single SDK uninstall
		name := args[0]
		e, ok := cat.FindKit(name)
		if !ok {
			ui.Errorf("Unknown SDK: %s", name)
		}

		target := filepath.Join(baseDir, catalog.RepoDirName(e.Repo))
		if _, err := os.Stat(target); err != nil {
			ui.Warnf("%s is not installed", e.Name)
			return
		}

		fmt.Printf("This will remove the %s checkout at %s.\n", e.Name, target)
		fmt.Print("Are you sure? [y/N] ")

		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(response)
		if !strings.EqualFold(response, "y") {
			ui.Info("Cancelled")
			return
		}

		if err := os.RemoveAll(target); err != nil {
			ui.Errorf("Failed to remove %s: %v", target, err)
		}

		ui.Successf("%s completely uninstalled", e.Name)
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
