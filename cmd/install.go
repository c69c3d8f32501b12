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
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/installer"
	"github.com/cloud-exit/kitbox/internal/selector"
	"github.com/cloud-exit/kitbox/internal/ui"
	"github.com/cloud-exit/kitbox/internal/update"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Interactively select and install agent SDKs",
	Long: `Walk through the interactive installation flow: pick one or more
languages, pick the SDKs to install for those languages, and clone and
set up each one under the installation directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		runInstall(cmd)
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Error("Interactive installation requires a terminal.")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		cancelled()
	}()

	cat, err := loadCatalog(cmd)
	if err != nil {
		ui.Errorf("Failed to load catalog: %v", err)
	}

	ui.Logo()

	updateCh := update.AsyncCheck(Version, 5*time.Second)

	in := bufio.NewReader(os.Stdin)
	baseDir := promptInstallDir(cmd, in)

	langKeys := chooseLanguages(cat, in, os.Stdout)
	selected := chooseKits(cat, langKeys, in, os.Stdout)
	if len(selected) == 0 {
		ui.Warn("No SDKs selected. Exiting.")
		return
	}

	names := make([]string, len(selected))
	for i, e := range selected {
		names[i] = e.Name
	}

	fmt.Printf("\n%sInstallation Summary%s\n", ui.Bold, ui.NC)
	fmt.Printf("Installation directory: %s%s%s\n", ui.Cyan, baseDir, ui.NC)
	fmt.Printf("SDKs to install: %s%s%s\n", ui.Cyan, strings.Join(names, ", "), ui.NC)
	fmt.Println()

	proceed, err := ui.PromptYesNo(in, os.Stdout, "Proceed with installation?", false)
	if err != nil {
		cancelled()
	}
	if !proceed {
		fmt.Println("Installation cancelled.")
		return
	}

	fmt.Printf("\n%sStarting Installation...%s\n", ui.Bold, ui.NC)

	inst := installer.New(baseDir, installer.NewRunner(), in, os.Stdout)
	outcomes, err := inst.InstallAll(cmd.Context(), selected)
	if err != nil {
		cancelled()
	}

	printReport(os.Stdout, outcomes, baseDir)

	select {
	case r := <-updateCh:
		if r.Available {
			ui.Infof("Update available: v%s → v%s (run 'kitbox update')", Version, r.Latest)
		}
	default:
	}
}

// promptInstallDir resolves the installation directory, asking only when
// no --dir flag was given, and makes sure it exists.
func promptInstallDir(cmd *cobra.Command, in *bufio.Reader) string {
	dir, explicit := installBaseDir(cmd)
	if !explicit {
		fmt.Printf("\n%sInstallation Directory Setup%s\n", ui.Bold, ui.NC)
		fmt.Printf("Default directory: %s%s%s\n", ui.Cyan, dir, ui.NC)
		fmt.Println()

		useDefault, err := ui.PromptYesNo(in, os.Stdout, "Use default directory?", true)
		if err != nil {
			cancelled()
		}
		if !useDefault {
			for {
				line, err := ui.PromptLine(in, os.Stdout, "Enter custom directory path", "")
				if err != nil {
					cancelled()
				}
				line = strings.TrimSpace(line)
				if line != "" {
					dir = expandHome(line)
					break
				}
				ui.ErrorNoExit("Directory path cannot be empty!")
			}
		}
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			ui.Errorf("Failed to create directory: %v", err)
		}
		ui.Successf("Created directory: %s", dir)
	} else {
		ui.Infof("Using existing directory: %s", dir)
	}
	return dir
}

// chooseLanguages runs the first selection stage over the catalog's
// languages and returns the chosen language keys.
func chooseLanguages(cat *catalog.Catalog, in *bufio.Reader, out io.Writer) []string {
	nameToKey := make(map[string]string)
	names := make([]string, 0, len(cat.Languages))
	for _, key := range cat.LanguageKeys() {
		name := cat.DisplayName(key)
		names = append(names, name)
		nameToKey[name] = key
	}
	sort.Strings(names)

	chosen, err := selector.New("Select Languages", names, in, out).Run()
	if err != nil {
		cancelled()
	}

	keys := make([]string, 0, len(chosen))
	for _, name := range chosen {
		keys = append(keys, nameToKey[name])
	}
	return keys
}

// chooseKits runs the second selection stage over the kits of the chosen
// languages and returns the chosen entries in menu order.
func chooseKits(cat *catalog.Catalog, langKeys []string, in *bufio.Reader, out io.Writer) []catalog.Entry {
	kits := cat.Kits(langKeys...)
	names := make([]string, len(kits))
	byName := make(map[string]catalog.Entry, len(kits))
	for i, e := range kits {
		names[i] = e.Name
		byName[e.Name] = e
	}

	chosen, err := selector.New("Select Agent SDKs to Install", names, in, out).Run()
	if err != nil {
		cancelled()
	}

	selected := make([]catalog.Entry, 0, len(chosen))
	for _, name := range chosen {
		selected = append(selected, byName[name])
	}
	return selected
}

// printReport summarizes install outcomes by kit name. Failures are
// reported without terminating: a partial install is still a result.
func printReport(w io.Writer, outcomes []installer.Outcome, baseDir string) {
	var succeeded, failed []string
	for _, o := range outcomes {
		if o.Succeeded() {
			succeeded = append(succeeded, o.Kit.Name)
		} else {
			failed = append(failed, o.Kit.Name)
		}
	}

	fmt.Fprintf(w, "\n%sInstallation Complete!%s\n", ui.Bold, ui.NC)
	if len(succeeded) > 0 {
		ui.Fsuccessf(w, "Successfully installed: %s", strings.Join(succeeded, ", "))
	}
	if len(failed) > 0 {
		ui.Ferrorf(w, "Failed to install: %s", strings.Join(failed, ", "))
	}
	fmt.Fprintf(w, "\nInstallation directory: %s%s%s\n", ui.Cyan, baseDir, ui.NC)
}

// cancelled reports user cancellation and exits. Shared by the SIGINT
// handler and the closed-stdin paths.
func cancelled() {
	fmt.Println()
	ui.Cecho("Installation cancelled by user.", ui.Yellow)
	os.Exit(1)
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
