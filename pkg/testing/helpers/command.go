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

package helpers

import (
	"os/exec"
	"slices"

	"github.com/dotslashplay/playit-wizard/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// NewMockCommandExecutor creates a MockCommandExecutor describing a host
// where only the given tools are on PATH. Output and Start succeed with no
// output unless overridden with On() before the defaults are hit:
//
//	cmd := helpers.NewMockCommandExecutor("dpkg-query", "apt", "sudo")
//	cmd.ExpectedCalls = nil // clear defaults for strict expectations
//	cmd.On("Output", mock.Anything, "dpkg-query", mock.Anything).Return([]byte("libc6\n"), nil)
func NewMockCommandExecutor(onPath ...string) *mocks.MockCommandExecutor {
	cmd := &mocks.MockCommandExecutor{}
	cmd.On("LookPath", mock.MatchedBy(func(name string) bool {
		return slices.Contains(onPath, name)
	})).Return("/usr/bin/tool", nil).Maybe()
	cmd.On("LookPath", mock.AnythingOfType("string")).Return("", exec.ErrNotFound).Maybe()
	cmd.On("Output", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return([]byte{}, nil).Maybe()
	cmd.On("Start", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Maybe()
	return cmd
}

// StubOutput makes Output return out for the named command, taking
// precedence over the defaults installed by NewMockCommandExecutor.
func StubOutput(cmd *mocks.MockCommandExecutor, name string, out string) {
	call := cmd.On("Output", mock.Anything, name, mock.Anything).Return([]byte(out), nil).Maybe()
	calls := cmd.ExpectedCalls[:len(cmd.ExpectedCalls)-1]
	cmd.ExpectedCalls = append([]*mock.Call{call}, calls...)
}

// StubOutputErr makes Output fail with err for the named command.
func StubOutputErr(cmd *mocks.MockCommandExecutor, name string, err error) {
	call := cmd.On("Output", mock.Anything, name, mock.Anything).Return(nil, err).Maybe()
	calls := cmd.ExpectedCalls[:len(cmd.ExpectedCalls)-1]
	cmd.ExpectedCalls = append([]*mock.Call{call}, calls...)
}
