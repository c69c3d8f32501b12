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
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses catalog.yaml from the default location.
func Load() (*Catalog, error) {
	return LoadFrom(CatalogFile())
}

// LoadFrom reads a catalog from a specific path. The document must
// decode fully into the catalog shape; there is no partial load.
func LoadFrom(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &c, nil
}

// Save writes the catalog to catalog.yaml.
func Save(c *Catalog) error {
	return SaveTo(c, CatalogFile())
}

// SaveTo writes the catalog to a specific path.
func SaveTo(c *Catalog, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// rawCommand is the explicit map form of an install command.
type rawCommand struct {
	Run   string `yaml:"run"`
	Shell bool   `yaml:"shell"`
}

// UnmarshalYAML accepts an install command either as a bare string,
// whose shell dispatch is derived with NeedsShell, or as a {run,
// shell} mapping with the dispatch stated explicitly.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var run string
		if err := value.Decode(&run); err != nil {
			return err
		}
		c.Run = run
		c.Shell = NeedsShell(run)
		return nil
	}
	if value.Kind == yaml.MappingNode {
		// value.Decode does not inherit the outer decoder's
		// KnownFields, so unknown keys are checked by hand.
		for i := 0; i < len(value.Content); i += 2 {
			if key := value.Content[i].Value; key != "run" && key != "shell" {
				return fmt.Errorf("line %d: unknown field %q in install command", value.Content[i].Line, key)
			}
		}
	}
	var raw rawCommand
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.Run = raw.Run
	c.Shell = raw.Shell
	return nil
}

// MarshalYAML emits the bare-string form when the shell flag matches
// what NeedsShell would derive, and the explicit mapping otherwise.
func (c Command) MarshalYAML() (any, error) {
	if c.Shell == NeedsShell(c.Run) {
		return c.Run, nil
	}
	return rawCommand{Run: c.Run, Shell: c.Shell}, nil
}
