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

package system

import (
	"context"
	"errors"
	"testing"

	testhelpers "github.com/dotslashplay/playit-wizard/pkg/testing/helpers"
	"github.com/dotslashplay/playit-wizard/pkg/testing/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHost(onPath ...string) *Host {
	return &Host{
		Exec:   testhelpers.NewMockCommandExecutor(onPath...),
		Fs:     afero.NewMemMapFs(),
		Getenv: func(string) string { return "" },
	}
}

func TestFamily(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FamilyDebian, newHost("dpkg-query", "pacman").Family())
	assert.Equal(t, FamilyArchLinux, newHost("pacman").Family())
	assert.Empty(t, newHost().Family())

	gentoo := newHost()
	require.NoError(t, gentoo.Fs.MkdirAll("/var/db/pkg/app-arch", 0o755))
	assert.Equal(t, FamilyGentoo, gentoo.Family())
}

func TestInstalledPackages_Debian(t *testing.T) {
	t.Parallel()

	h := newHost("dpkg-query")
	testhelpers.StubOutput(h.Exec.(*mocks.MockCommandExecutor), "dpkg-query", "innoextract\nlibc6:amd64\n\nunar\n")

	family, pkgs, err := h.InstalledPackages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FamilyDebian, family)
	assert.Equal(t, map[string]struct{}{"innoextract": {}, "libc6:amd64": {}, "unar": {}}, pkgs)
}

func TestInstalledPackages_GentooStripsVersions(t *testing.T) {
	t.Parallel()

	h := newHost()
	require.NoError(t, h.Fs.MkdirAll("/var/db/pkg", 0o755))
	exec := h.Exec.(*mocks.MockCommandExecutor)
	testhelpers.StubOutput(exec, "find", "app-arch/innoextract-1.9-r1\ndev-libs/icu-74.2\n")

	family, pkgs, err := h.InstalledPackages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FamilyGentoo, family)
	assert.Equal(t, map[string]struct{}{"app-arch/innoextract": {}, "dev-libs/icu": {}}, pkgs)
	exec.AssertCalled(t, "Output", mock.Anything, "find",
		[]string{"/var/db/pkg", "-mindepth", "2", "-maxdepth", "2", "-printf", "%P\n"})
}

func TestInstalledPackages_GentooWithEix(t *testing.T) {
	t.Parallel()

	h := newHost("eix-installed")
	require.NoError(t, h.Fs.MkdirAll("/var/db/pkg", 0o755))
	exec := h.Exec.(*mocks.MockCommandExecutor)
	testhelpers.StubOutput(exec, "eix-installed", "app-arch/unzip-6.0_p27\n")

	_, pkgs, err := h.InstalledPackages(context.Background())
	require.NoError(t, err)
	assert.Contains(t, pkgs, "app-arch/unzip")
	exec.AssertCalled(t, "Output", mock.Anything, "eix-installed", []string{"-a"})
}

func TestInstalledPackages_Unknown(t *testing.T) {
	t.Parallel()

	family, pkgs, err := newHost().InstalledPackages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, family)
	assert.Empty(t, pkgs)
}

func TestInstalledPackages_Error(t *testing.T) {
	t.Parallel()

	h := newHost("pacman")
	testhelpers.StubOutputErr(h.Exec.(*mocks.MockCommandExecutor), "pacman", errors.New("exit status 1"))

	family, _, err := h.InstalledPackages(context.Background())
	assert.Equal(t, FamilyArchLinux, family)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pacman")
}
