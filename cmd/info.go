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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/installer"
	"github.com/cloud-exit/kitbox/internal/platform"
	"github.com/cloud-exit/kitbox/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show system and catalog information",
	Run: func(cmd *cobra.Command, args []string) {
		cat, catErr := loadCatalog(cmd)
		baseDir, _ := installBaseDir(cmd)

		ui.LogoSmall()
		fmt.Println()
		ui.Cecho("System Information", ui.Cyan)
		fmt.Println()

		fmt.Printf("  %-20s %s\n", "Version:", Version)
		fmt.Printf("  %-20s %s\n", "Platform:", platform.GetPlatform())
		fmt.Printf("  %-20s %s\n", "Config dir:", catalog.Home)
		fmt.Printf("  %-20s %s\n", "Install dir:", baseDir)
		fmt.Println()

		ui.Cecho("Prerequisites", ui.Cyan)
		fmt.Println()

		if installer.GitAvailable() {
			fmt.Printf("  %-20s %savailable%s\n", "Git:", ui.Green, ui.NC)
		} else {
			fmt.Printf("  %-20s %snot found%s\n", "Git:", ui.Red, ui.NC)
			fmt.Println("  Install git to clone SDK repositories.")
		}
		fmt.Println()

		ui.Cecho("Catalog", ui.Cyan)
		fmt.Println()

		fmt.Printf("  %-20s %s\n", "Path:", catalogPath(cmd))
		if catErr != nil {
			fmt.Printf("  %-20s %s%v%s\n", "Status:", ui.Red, catErr, ui.NC)
			fmt.Println()
			return
		}
		fmt.Printf("  %-20s %d\n", "Languages:", len(cat.LanguageKeys()))
		fmt.Printf("  %-20s %d\n", "SDKs:", cat.TotalKits())
		fmt.Println()

		ui.Cecho("Installed SDKs", ui.Cyan)
		fmt.Println()

		found := false
		for _, e := range cat.AllKits() {
			target := filepath.Join(baseDir, catalog.RepoDirName(e.Repo))
			if _, err := os.Stat(target); err != nil {
				continue
			}
			found = true
			if size, err := dirSize(target); err == nil {
				fmt.Printf("  • %s (%s)\n", e.Name, formatBytes(size))
			} else {
				fmt.Printf("  • %s\n", e.Name)
			}
		}
		if !found {
			fmt.Println("  No SDKs installed. Run 'kitbox' to install one.")
		}
		fmt.Println()
	},
}

// catalogPath reports which catalog file the command is reading.
func catalogPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		return path
	}
	return catalog.CatalogFile()
}

// dirSize walks a directory tree and returns the total size of regular files.
func dirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(b int64) string {
	if b == 0 {
		return "0 B"
	}
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
