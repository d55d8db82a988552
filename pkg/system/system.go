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

// Package system inspects the host the wizard runs on: which tools are on
// PATH, which distribution family it belongs to and which packages are
// installed. It also builds the command lines of the external tools the
// installer runs.
package system

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dotslashplay/playit-wizard/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/afero"
)

// Distribution families, as named by the catalog dependency lists.
const (
	FamilyDebian    = "debian"
	FamilyArchLinux = "archlinux"
	FamilyGentoo    = "gentoo"
)

const gentooPkgDB = "/var/db/pkg"

var gentooVersion = regexp.MustCompile(`-[0-9].*$`)

// Host runs probes through injectable dependencies.
type Host struct {
	Exec   command.Executor
	Fs     afero.Fs
	Getenv func(string) string
}

// NewHost returns a Host probing the real system.
func NewHost() *Host {
	return &Host{
		Exec:   &command.RealExecutor{},
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
	}
}

// Launchable reports whether name is an executable found on PATH.
func (h *Host) Launchable(name string) bool {
	_, err := h.Exec.LookPath(name)
	return err == nil
}

func (h *Host) isDir(path string) bool {
	ok, err := afero.IsDir(h.Fs, path)
	return err == nil && ok
}

// Family guesses the distribution family from the package tools present.
// It returns an empty string when none is recognised.
func (h *Host) Family() string {
	switch {
	case h.Launchable("dpkg-query"):
		return FamilyDebian
	case h.Launchable("pacman"):
		return FamilyArchLinux
	case h.isDir(gentooPkgDB):
		return FamilyGentoo
	default:
		return ""
	}
}

// InstalledPackages lists the installed package names and the family they
// were read for. An unknown family yields no packages and no error.
func (h *Host) InstalledPackages(ctx context.Context) (string, map[string]struct{}, error) {
	family := h.Family()

	var (
		name string
		args []string
	)
	switch family {
	case FamilyDebian:
		name, args = "dpkg-query", []string{"-f", "${binary:Package}\n", "-W"}
	case FamilyArchLinux:
		name, args = "pacman", []string{"-Qq"}
	case FamilyGentoo:
		if h.Launchable("eix-installed") {
			name, args = "eix-installed", []string{"-a"}
		} else {
			name, args = "find", []string{gentooPkgDB, "-mindepth", "2", "-maxdepth", "2", "-printf", "%P\n"}
		}
	default:
		log.Info().Msg("unknown distribution family, skipping package check")
		return "", map[string]struct{}{}, nil
	}

	out, err := h.Exec.Output(ctx, name, args...)
	if err != nil {
		return family, nil, fmt.Errorf("error listing installed packages with %s: %w", name, err)
	}

	pkgs := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if family == FamilyGentoo {
			line = gentooVersion.ReplaceAllString(line, "")
		}
		if line != "" {
			pkgs[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return family, nil, fmt.Errorf("error reading package list: %w", err)
	}

	log.Debug().Str("family", family).Int("count", len(pkgs)).Msg("listed installed packages")
	return family, pkgs, nil
}

// Info describes the host for the log.
type Info struct {
	Platform string
	Family   string
	Version  string
	Kernel   string
	Arch     string
}

// Describe reads the OS description from gopsutil.
func Describe(ctx context.Context) (Info, error) {
	stat, err := host.InfoWithContext(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("error reading host info: %w", err)
	}
	return Info{
		Platform: stat.Platform,
		Family:   stat.PlatformFamily,
		Version:  stat.PlatformVersion,
		Kernel:   stat.KernelVersion,
		Arch:     stat.KernelArch,
	}, nil
}
