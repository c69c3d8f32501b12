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

package catalog

import "os"

// EnsureDirs creates the kitbox configuration directory if it doesn't exist.
func EnsureDirs() {
	os.MkdirAll(Home, 0755)
}

// Exists returns true if catalog.yaml exists.
func Exists() bool {
	_, err := os.Stat(CatalogFile())
	return err == nil
}

// WriteDefault writes the built-in default catalog if none exists.
func WriteDefault() error {
	if Exists() {
		return nil
	}
	return Save(Default())
}
