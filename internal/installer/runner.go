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

package installer

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/cloud-exit/kitbox/internal/ui"
)

// Runner executes the external processes the installer drives: the
// git client and each kit's install commands.
type Runner interface {
	// Run executes a program directly with args, in dir.
	Run(ctx context.Context, dir, name string, args ...string) error
	// Shell runs a command line through "sh -c", in dir.
	Shell(ctx context.Context, dir, command string) error
}

// execRunner implements Runner by spawning processes with inherited
// stdio, so command output streams straight to the user's terminal.
type execRunner struct{}

// NewRunner returns a Runner backed by the host's process execution.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	ui.Debugf("Exec in %s: %s %s", dir, name, strings.Join(args, " "))
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func (r *execRunner) Shell(ctx context.Context, dir, command string) error {
	return r.Run(ctx, dir, "sh", "-c", command)
}

// GitAvailable reports whether a git client is on PATH.
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
