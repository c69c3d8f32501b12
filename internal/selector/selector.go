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

// Package selector implements the line-oriented multi-select menus of
// the install flow.
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cloud-exit/kitbox/internal/ui"
)

// ErrCancelled is returned when input ends before the user confirms a
// selection.
var ErrCancelled = errors.New("selection cancelled")

// Menu is a multi-select over a fixed, ordered item list. Selection is
// keyed by item name rather than position, so an index always toggles
// the item it displayed next to.
type Menu struct {
	Title string
	Items []string
	in    *bufio.Reader
	out   io.Writer
}

// New returns a menu over items, reading one choice per line from in
// and rendering to out.
func New(title string, items []string, in *bufio.Reader, out io.Writer) *Menu {
	return &Menu{Title: title, Items: items, in: in, out: out}
}

// Run drives the selection loop: toggle by number, 'a' selects all,
// 'n' clears, 'done' confirms. Confirming an empty selection warns and
// keeps looping. The returned slice preserves menu order. An empty
// item list returns immediately with no selection; ErrCancelled is
// returned when input ends mid-loop.
func (m *Menu) Run() ([]string, error) {
	if len(m.Items) == 0 {
		return nil, nil
	}

	fmt.Fprintf(m.out, "\n%s%s%s\n", ui.Bold, m.Title, ui.NC)
	fmt.Fprintf(m.out, "Enter numbers to toggle selection with asterisk [*] markers\n\n")

	selected := make(map[string]bool)
	for {
		m.render(selected)
		fmt.Fprintf(m.out, "%sYour choice: %s", ui.Bold, ui.NC)

		line, err := m.in.ReadString('\n')
		if err != nil && line == "" {
			return nil, ErrCancelled
		}
		choice := strings.ToLower(strings.TrimSpace(line))

		switch {
		case choice == "done":
			if len(selected) == 0 {
				ui.Fwarnf(m.out, "Nothing selected! Please select at least one item.")
				fmt.Fprintln(m.out)
				continue
			}
			return m.chosen(selected), nil
		case choice == "a":
			for _, item := range m.Items {
				selected[item] = true
			}
			ui.Fsuccessf(m.out, "All items selected")
		case choice == "n":
			selected = make(map[string]bool)
			ui.Fsuccessf(m.out, "All selections cleared")
		case isNumber(choice):
			i, _ := strconv.Atoi(choice)
			if i >= 1 && i <= len(m.Items) {
				item := m.Items[i-1]
				if selected[item] {
					delete(selected, item)
					ui.Fsuccessf(m.out, "Deselected: %s", item)
				} else {
					selected[item] = true
					ui.Fsuccessf(m.out, "Selected: %s", item)
				}
			} else {
				ui.Ferrorf(m.out, "Invalid selection number")
			}
		default:
			ui.Ferrorf(m.out, "Invalid choice")
		}

		fmt.Fprintf(m.out, "\n%s\n", strings.Repeat("=", 50))
	}
}

// render draws the item list with selection markers, the running
// selection summary, and the command help line.
func (m *Menu) render(selected map[string]bool) {
	for i, item := range m.Items {
		marker := "[ ]"
		if selected[item] {
			marker = ui.Green + "[*]" + ui.NC
		}
		fmt.Fprintf(m.out, "%2d. %s %s%s%s\n", i+1, marker, ui.Bold, item, ui.NC)
	}

	if len(selected) > 0 {
		names := m.chosen(selected)
		fmt.Fprintf(m.out, "\n%sSelected: %s%s%s\n", ui.Yellow, ui.Green, strings.Join(names, ", "), ui.NC)
	} else {
		fmt.Fprintf(m.out, "\n%sNothing selected%s\n", ui.Yellow, ui.NC)
	}

	fmt.Fprintf(m.out, "\n%sCommands:%s (1-%d) to toggle, 'a'=all, 'n'=none, 'done'=confirm\n", ui.Bold, ui.NC, len(m.Items))
}

// chosen returns the selected items in menu order.
func (m *Menu) chosen(selected map[string]bool) []string {
	var out []string
	for _, item := range m.Items {
		if selected[item] {
			out = append(out, item)
		}
	}
	return out
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
