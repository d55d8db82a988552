// ./play.it Wizard
// Copyright (c) 2025 The ./play.it Wizard Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ./play.it Wizard.
//
// ./play.it Wizard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ./play.it Wizard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ./play.it Wizard.  If not, see <http://www.gnu.org/licenses/>.

// Package command provides an abstraction over exec.Command for testability.
package command

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor runs the short-lived host commands the wizard needs outside the
// install terminal: package database queries, PATH probes and launching the
// installed game.
type Executor interface {
	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Start starts a detached command without waiting for it.
	Start(ctx context.Context, name string, args ...string) error

	// LookPath searches PATH for an executable.
	LookPath(name string) (string, error)
}

// RealExecutor uses actual exec.Command to execute system commands.
type RealExecutor struct{}

// Output runs a command and returns its standard output.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Start starts name in its own session so it outlives the wizard.
func (*RealExecutor) Start(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:noctx // detached on purpose
	cmd.SysProcAttr = detachedAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s: %w", name, err)
	}
	return nil
}

// LookPath searches PATH for an executable.
//
//nolint:wrapcheck // exec.ErrNotFound is checked by callers
func (*RealExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
