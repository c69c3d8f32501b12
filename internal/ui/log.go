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

package ui

import (
	"fmt"
	"io"
	"os"
)

// Verbose enables Debug output when set.
var Verbose bool

// Finfof prints an informational message to w.
func Finfof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%sℹ%s %s\n", Blue, NC, fmt.Sprintf(format, args...))
}

// Fsuccessf prints a success message to w.
func Fsuccessf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✓%s %s\n", Green, NC, fmt.Sprintf(format, args...))
}

// Fwarnf prints a warning message to w.
func Fwarnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s⚠%s %s\n", Yellow, NC, fmt.Sprintf(format, args...))
}

// Ferrorf prints an error message to w.
func Ferrorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✗%s %s\n", Red, NC, fmt.Sprintf(format, args...))
}

// Info prints an informational message to stdout.
func Info(msg string) {
	Finfof(os.Stdout, "%s", msg)
}

// Infof prints a formatted informational message to stdout.
func Infof(format string, args ...any) {
	Finfof(os.Stdout, format, args...)
}

// Success prints a success message to stdout.
func Success(msg string) {
	Fsuccessf(os.Stdout, "%s", msg)
}

// Successf prints a formatted success message to stdout.
func Successf(format string, args ...any) {
	Fsuccessf(os.Stdout, format, args...)
}

// Warn prints a warning message to stderr.
func Warn(msg string) {
	Fwarnf(os.Stderr, "%s", msg)
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, args ...any) {
	Fwarnf(os.Stderr, format, args...)
}

// Error prints an error message to stderr and exits with status 1.
func Error(msg string) {
	Ferrorf(os.Stderr, "%s", msg)
	os.Exit(1)
}

// Errorf prints a formatted error message to stderr and exits with status 1.
func Errorf(format string, args ...any) {
	Ferrorf(os.Stderr, format, args...)
	os.Exit(1)
}

// ErrorNoExit prints an error message to stderr without exiting.
func ErrorNoExit(msg string) {
	Ferrorf(os.Stderr, "%s", msg)
}

// Debug prints a debug message to stderr when Verbose is enabled.
func Debug(msg string) {
	Debugf("%s", msg)
}

// Debugf prints a formatted debug message to stderr when Verbose is enabled.
func Debugf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "%s[DEBUG]%s %s\n", Dim, NC, fmt.Sprintf(format, args...))
}

// Cecho prints a message in the given color to stdout.
func Cecho(msg, color string) {
	fmt.Printf("%s%s%s\n", color, msg, NC)
}
