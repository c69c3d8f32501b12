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

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "1.2.0"

var rootCmd = &cobra.Command{
	Use:   "kitbox",
	Short: "Agent SDK Installer",
	Long:  "KitBox – Interactive installer for agent development SDKs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		installCmd.Run(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kitbox version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Path to an alternate SDK catalog file")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Installation directory (skips the prompt)")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("kitbox version {{.Version}}\n")
	rootCmd.Version = Version
}

// loadCatalog reads the SDK catalog. Without an explicit --catalog path
// the default catalog is seeded on first run; an explicit path is never
// written to.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path != "" {
		return catalog.LoadFrom(path)
	}

	catalog.EnsureDirs()
	if err := catalog.WriteDefault(); err != nil {
		return nil, err
	}
	return catalog.Load()
}

// installBaseDir resolves the installation directory flag, falling back
// to the default when unset.
func installBaseDir(cmd *cobra.Command) (string, bool) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		return catalog.DefaultInstallDir(), false
	}
	return expandHome(dir), true
}

// Execute runs the root command.
func Execute() {
	catalog.EnsureDirs()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
