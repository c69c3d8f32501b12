// KitBox - Agent SDK Installer
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package installer

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// MockRunner implements Runner for testing. It records every
// invocation and fails any whose command line contains a string
// registered in FailOn.
type MockRunner struct {
	Calls  []RunnerCall
	FailOn []string
}

// RunnerCall is one recorded command invocation.
type RunnerCall struct {
	Dir     string
	Command string
	Shell   bool
}

func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (m *MockRunner) Run(_ context.Context, dir, name string, args ...string) error {
	return m.record(dir, strings.Join(append([]string{name}, args...), " "), false)
}

func (m *MockRunner) Shell(_ context.Context, dir, command string) error {
	return m.record(dir, command, true)
}

func (m *MockRunner) record(dir, command string, shell bool) error {
	m.Calls = append(m.Calls, RunnerCall{Dir: dir, Command: command, Shell: shell})
	for _, f := range m.FailOn {
		if strings.Contains(command, f) {
			return fmt.Errorf("exit status 1")
		}
	}
	return nil
}

func TestMockRunnerImplementsInterface(t *testing.T) {
	var _ Runner = NewMockRunner()
}
