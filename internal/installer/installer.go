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

// Package installer clones kit repositories and runs their declared
// install commands, one kit at a time.
package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/ui"
)

// Installer installs kits under BaseDir. When a checkout already
// exists it asks on In/Out whether to update it.
type Installer struct {
	BaseDir string
	Runner  Runner
	In      *bufio.Reader
	Out     io.Writer
}

// New returns an installer rooted at baseDir.
func New(baseDir string, r Runner, in *bufio.Reader, out io.Writer) *Installer {
	return &Installer{BaseDir: baseDir, Runner: r, In: in, Out: out}
}

// Outcome records the result of one kit installation.
type Outcome struct {
	Kit catalog.Entry
	Err error
}

// Succeeded reports whether the kit installed cleanly.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// TargetPath returns the checkout directory for a kit: the base dir
// joined with the repository's directory name.
func (inst *Installer) TargetPath(e catalog.Entry) string {
	return filepath.Join(inst.BaseDir, catalog.RepoDirName(e.Repo))
}

// Install clones or updates one kit's repository, then runs its
// install commands in order inside the checkout. The first failing
// step ends the kit with an error; later kits are unaffected.
func (inst *Installer) Install(ctx context.Context, e catalog.Entry) error {
	target := inst.TargetPath(e)

	if _, err := os.Stat(target); err == nil {
		ui.Fwarnf(inst.Out, "Repository already exists: %s", target)
		update, perr := ui.PromptYesNo(inst.In, inst.Out, "Update existing repository?", false)
		if perr != nil {
			return fmt.Errorf("reading update choice: %w", perr)
		}
		if !update {
			// An existing checkout left untouched counts as installed,
			// even if it is stale.
			ui.Finfof(inst.Out, "Keeping existing checkout: %s", target)
			return nil
		}
		if err := inst.Runner.Run(ctx, target, "git", "pull"); err != nil {
			return fmt.Errorf("updating %s: %w", e.Name, err)
		}
		ui.Fsuccessf(inst.Out, "Successfully updated %s", e.Name)
	} else {
		ui.Finfof(inst.Out, "Cloning repository: %s", e.Repo)
		if err := inst.Runner.Run(ctx, inst.BaseDir, "git", "clone", e.Repo); err != nil {
			return fmt.Errorf("cloning %s: %w", e.Repo, err)
		}
		ui.Fsuccessf(inst.Out, "Successfully cloned %s", e.Name)
	}

	if len(e.InstallCommands) == 0 {
		ui.Finfof(inst.Out, "%s cloned successfully (no additional installation required)", e.Name)
		return nil
	}

	for _, cmd := range e.InstallCommands {
		if strings.TrimSpace(cmd.Run) == "" {
			return fmt.Errorf("empty install command")
		}
		ui.Finfof(inst.Out, "Running: %s", cmd.Run)
		var err error
		if cmd.Shell {
			err = inst.Runner.Shell(ctx, target, cmd.Run)
		} else {
			fields := strings.Fields(cmd.Run)
			err = inst.Runner.Run(ctx, target, fields[0], fields[1:]...)
		}
		if err != nil {
			return fmt.Errorf("command %q: %w", cmd.Run, err)
		}
	}

	ui.Fsuccessf(inst.Out, "Successfully installed %s", e.Name)
	return nil
}

// InstallAll installs entries strictly in order, accumulating one
// outcome per kit. A kit's failure never stops the remaining kits;
// the run only aborts early when interactive input is exhausted
// mid-prompt, in which case the outcomes so far are returned along
// with the error.
func (inst *Installer) InstallAll(ctx context.Context, entries []catalog.Entry) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(entries))
	for _, e := range entries {
		fmt.Fprintf(inst.Out, "\n%sInstalling %s...%s\n", ui.Bold, e.Name, ui.NC)

		err := inst.Install(ctx, e)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return outcomes, err
			}
			ui.Ferrorf(inst.Out, "Failed to install %s: %v", e.Name, err)
		}
		outcomes = append(outcomes, Outcome{Kit: e, Err: err})
	}
	return outcomes, nil
}
