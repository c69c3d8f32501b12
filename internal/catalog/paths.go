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

import (
	"os"
	"path/filepath"
	"runtime"
)

// Home is the kitbox configuration directory (~/.config/kitbox).
var Home string

func init() {
	Home = filepath.Join(xdgConfig(), "kitbox")
}

func xdgConfig() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("APPDATA"); v != "" {
			return v
		}
	}
	return filepath.Join(homeDir(), ".config")
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// CatalogFile returns the path to catalog.yaml.
func CatalogFile() string {
	return filepath.Join(Home, "catalog.yaml")
}

// DefaultInstallDir returns the default base directory SDK checkouts
// go under (~/agents/sdks).
func DefaultInstallDir() string {
	return filepath.Join(homeDir(), "agents", "sdks")
}
