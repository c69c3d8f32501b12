// KitBox - Agent SDK Installer
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/cloud-exit/kitbox/internal/catalog"
	"github.com/cloud-exit/kitbox/internal/installer"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Version: 1,
		Languages: map[string]catalog.Language{
			"python": {
				Name: "Python",
				SDKs: map[string]catalog.Kit{
					"Alpha": {Repo: "https://example.com/org/alpha"},
					"Gamma": {Repo: "https://example.com/org/gamma"},
				},
			},
			"typescript": {
				Name: "TypeScript",
				SDKs: map[string]catalog.Kit{
					"Beta": {Repo: "https://example.com/org/beta"},
				},
			},
		},
	}
}

func script(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestChooseLanguages_MapsNamesToKeys(t *testing.T) {
	out := &bytes.Buffer{}
	keys := chooseLanguages(testCatalog(), script("1\ndone\n"), out)

	// Sorted display names put Python first.
	if !slices.Equal(keys, []string{"python"}) {
		t.Fatalf("expected [python], got %v", keys)
	}
}

func TestChooseLanguages_AllKeepsMenuOrder(t *testing.T) {
	out := &bytes.Buffer{}
	keys := chooseLanguages(testCatalog(), script("a\ndone\n"), out)

	if !slices.Equal(keys, []string{"python", "typescript"}) {
		t.Fatalf("expected [python typescript], got %v", keys)
	}
}

func TestChooseKits_OffersOnlyChosenLanguages(t *testing.T) {
	out := &bytes.Buffer{}
	entries := chooseKits(testCatalog(), []string{"python"}, script("a\ndone\n"), out)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Alpha" || entries[1].Name != "Gamma" {
		t.Errorf("unexpected entries: %v, %v", entries[0].Name, entries[1].Name)
	}
	for _, e := range entries {
		if e.LangKey != "python" {
			t.Errorf("entry %s has language %s, expected python", e.Name, e.LangKey)
		}
	}
	if strings.Contains(out.String(), "Beta") {
		t.Error("kit from an unchosen language was offered")
	}
}

func TestChooseKits_EntriesCarryKitData(t *testing.T) {
	out := &bytes.Buffer{}
	entries := chooseKits(testCatalog(), []string{"typescript"}, script("1\ndone\n"), out)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Beta" {
		t.Errorf("expected Beta, got %s", entries[0].Name)
	}
	if entries[0].Repo != "https://example.com/org/beta" {
		t.Errorf("entry lost its repo: %q", entries[0].Repo)
	}
}

func TestChooseKits_NoLanguagesOffersNothing(t *testing.T) {
	out := &bytes.Buffer{}
	entries := chooseKits(testCatalog(), nil, script(""), out)

	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestPrintReport_ListsNamesOnly(t *testing.T) {
	out := &bytes.Buffer{}
	outcomes := []installer.Outcome{
		{Kit: catalog.Entry{Name: "Alpha"}},
		{Kit: catalog.Entry{Name: "Beta"}, Err: errors.New("clone blew up")},
	}

	printReport(out, outcomes, "/tmp/sdks")
	got := out.String()

	if !strings.Contains(got, "Successfully installed: Alpha") {
		t.Errorf("missing success line:\n%s", got)
	}
	if !strings.Contains(got, "Failed to install: Beta") {
		t.Errorf("missing failure line:\n%s", got)
	}
	if !strings.Contains(got, "Installation directory:") || !strings.Contains(got, "/tmp/sdks") {
		t.Errorf("missing installation directory:\n%s", got)
	}
	if strings.Contains(got, "clone blew up") {
		t.Errorf("report should name kits, not error details:\n%s", got)
	}
}

func TestPrintReport_AllFailedStillReportsDirectory(t *testing.T) {
	out := &bytes.Buffer{}
	outcomes := []installer.Outcome{
		{Kit: catalog.Entry{Name: "Alpha"}, Err: errors.New("boom")},
	}

	printReport(out, outcomes, "/tmp/sdks")
	got := out.String()

	if strings.Contains(got, "Successfully installed") {
		t.Errorf("no success line expected:\n%s", got)
	}
	if !strings.Contains(got, "Failed to install: Alpha") {
		t.Errorf("missing failure line:\n%s", got)
	}
	if !strings.Contains(got, "/tmp/sdks") {
		t.Errorf("missing installation directory:\n%s", got)
	}
}

// recordingRunner implements installer.Runner, recording command lines
// instead of executing them.
type recordingRunner struct {
	calls []string
}

func (r *recordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, strings.Join(append([]string{name}, args...), " "))
	return nil
}

func (r *recordingRunner) Shell(_ context.Context, dir, command string) error {
	r.calls = append(r.calls, "sh -c "+command)
	return nil
}

func TestInstallFlow_EndToEnd(t *testing.T) {
	cat := &catalog.Catalog{
		Version: 1,
		Languages: map[string]catalog.Language{
			"python": {
				Name: "Python",
				SDKs: map[string]catalog.Kit{
					"ExampleKit": {
						Repo:            "https://example.com/x/examplekit",
						InstallCommands: []catalog.Command{{Run: "pip install examplekit"}},
					},
				},
			},
		},
	}

	out := &bytes.Buffer{}
	langs := chooseLanguages(cat, script("1\ndone\n"), out)
	if !slices.Equal(langs, []string{"python"}) {
		t.Fatalf("expected [python], got %v", langs)
	}
	kits := chooseKits(cat, langs, script("1\ndone\n"), out)
	if len(kits) != 1 || kits[0].Name != "ExampleKit" {
		t.Fatalf("expected [ExampleKit], got %v", kits)
	}

	rec := &recordingRunner{}
	inst := installer.New(t.TempDir(), rec, script(""), out)
	outcomes, err := inst.InstallAll(context.Background(), kits)
	if err != nil {
		t.Fatalf("InstallAll() error = %v", err)
	}

	want := []string{
		"git clone https://example.com/x/examplekit",
		"pip install examplekit",
	}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("commands = %v, want %v", rec.calls, want)
	}

	printReport(out, outcomes, inst.BaseDir)
	if !strings.Contains(out.String(), "Successfully installed: ExampleKit") {
		t.Errorf("report missing success line:\n%s", out.String())
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/kit")

	tests := []struct {
		in   string
		want string
	}{
		{"~", "/home/kit"},
		{"~/sdks", "/home/kit/sdks"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/sdks", "~user/sdks"},
	}

	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.want {
			t.Errorf("expandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
