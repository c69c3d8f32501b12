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
	"fmt"
	"path"
	"sort"
	"strings"
)

// Catalog is the top-level kit registry (catalog.yaml).
type Catalog struct {
	Version   int                 `yaml:"version"`
	Languages map[string]Language `yaml:"languages"`
}

// Language groups the kits of one language under a display name.
type Language struct {
	Name string         `yaml:"name"`
	SDKs map[string]Kit `yaml:"sdks"`
}

// Kit holds one SDK's repository and ordered install steps. The kit's
// name is its key in the language's sdks mapping.
type Kit struct {
	Repo            string    `yaml:"repo"`
	Description     string    `yaml:"description,omitempty"`
	InstallCommands []Command `yaml:"install_commands,omitempty"`
}

// Command is a single install step. Shell selects execution through
// "sh -c"; otherwise the line is split into argv and exec'd directly.
type Command struct {
	Run   string
	Shell bool
}

// NeedsShell reports whether a bare command line relies on shell
// features (command chaining or environment activation). Bare-string
// commands from older catalogs are normalized with it at load time;
// commands written in map form carry an explicit shell flag instead.
func NeedsShell(run string) bool {
	return strings.Contains(run, "&&") || strings.Contains(run, "source")
}

// Entry is a kit paired with the identity its catalog position gives
// it: the sdks mapping key becomes Name, the languages key LangKey.
type Entry struct {
	Name    string
	LangKey string
	Kit
}

// RepoDirName derives the checkout directory name from a repository
// URL: the final path segment with any ".git" suffix stripped.
func RepoDirName(repoURL string) string {
	return strings.TrimSuffix(path.Base(repoURL), ".git")
}

// LanguageKeys returns the catalog's language keys, sorted.
func (c *Catalog) LanguageKeys() []string {
	keys := make([]string, 0, len(c.Languages))
	for k := range c.Languages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayName returns the display name for a language key, falling
// back to the key itself.
func (c *Catalog) DisplayName(key string) string {
	if lang, ok := c.Languages[key]; ok && lang.Name != "" {
		return lang.Name
	}
	return key
}

// Kits returns the flat list of kits belonging to the given language
// keys, sorted by kit name. Sorting by name keeps menu indices stable
// for the whole selection session.
func (c *Catalog) Kits(langKeys ...string) []Entry {
	var entries []Entry
	for _, key := range langKeys {
		lang, ok := c.Languages[key]
		if !ok {
			continue
		}
		for name, kit := range lang.SDKs {
			entries = append(entries, Entry{Name: name, LangKey: key, Kit: kit})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// AllKits returns every kit in the catalog, sorted by kit name.
func (c *Catalog) AllKits() []Entry {
	return c.Kits(c.LanguageKeys()...)
}

// FindKit looks up a kit by name across all languages. Kit names are
// unique within a catalog (enforced by Validate).
func (c *Catalog) FindKit(name string) (Entry, bool) {
	for _, e := range c.AllKits() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// TotalKits returns the number of kits across all languages.
func (c *Catalog) TotalKits() int {
	n := 0
	for _, lang := range c.Languages {
		n += len(lang.SDKs)
	}
	return n
}

// Validate checks the catalog for the invariants the rest of the tool
// relies on: at least one language, display names present and unique,
// repository URLs present, no empty command lines, and kit names
// unique across languages. Menu entries are keyed by these names, so
// collisions would make selections ambiguous.
func (c *Catalog) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("catalog has no languages")
	}
	names := make(map[string]string)
	seen := make(map[string]string)
	for key, lang := range c.Languages {
		if lang.Name == "" {
			return fmt.Errorf("language %q has no display name", key)
		}
		if other, ok := names[lang.Name]; ok {
			return fmt.Errorf("languages %q and %q share display name %q", other, key, lang.Name)
		}
		names[lang.Name] = key
		for name, kit := range lang.SDKs {
			if other, ok := seen[name]; ok {
				return fmt.Errorf("kit %q appears under both %q and %q", name, other, key)
			}
			seen[name] = key
			if kit.Repo == "" {
				return fmt.Errorf("kit %q has no repository URL", name)
			}
			for i, cmd := range kit.InstallCommands {
				if strings.TrimSpace(cmd.Run) == "" {
					return fmt.Errorf("kit %q: install command %d is empty", name, i+1)
				}
			}
		}
	}
	return nil
}
