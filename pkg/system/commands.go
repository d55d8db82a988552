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
	"slices"
	"strings"
)

// MissingPackages resolves dependency entries against the installed
// packages. An entry lists alternatives separated by " | ", each one a
// package name optionally followed by a version constraint. When no
// alternative is installed, the first one is required. The result is
// sorted without duplicates.
func MissingPackages(reqs []string, installed map[string]struct{}) []string {
	var missing []string
	for _, entry := range reqs {
		alts := strings.Split(entry, " | ")
		found := false
		for i, alt := range alts {
			name, _, _ := strings.Cut(strings.TrimSpace(alt), " ")
			alts[i] = name
			if _, ok := installed[name]; ok {
				found = true
				break
			}
		}
		if !found && alts[0] != "" {
			missing = append(missing, alts[0])
		}
	}
	slices.Sort(missing)
	return slices.Compact(missing)
}

// AsRoot wraps a command line to run with root privileges, through sudo
// when available and su otherwise.
func (h *Host) AsRoot(cmd ...string) []string {
	if h.Launchable("sudo") {
		if h.Getenv != nil && h.Getenv("SUDO_ASKPASS") != "" {
			return append([]string{"sudo", "-A"}, cmd...)
		}
		return append([]string{"sudo"}, cmd...)
	}
	if len(cmd) >= 2 && cmd[0] == "sh" && cmd[1] == "-c" {
		return append([]string{"su"}, cmd[1:]...)
	}
	return []string{"su", "-c", strings.Join(cmd, " ")}
}

// InstallCommand installs pkgs with the first package manager found. It is
// a no-op command when pkgs is empty and a failing one when no package
// manager is available.
func (h *Host) InstallCommand(pkgs []string) []string {
	if len(pkgs) == 0 {
		return []string{"true"}
	}
	switch {
	case h.Launchable("apt"):
		return h.AsRoot(append([]string{"apt", "install", "--assume-yes"}, pkgs...)...)
	case h.Launchable("pacman"):
		return h.AsRoot(append([]string{"pacman", "--asdeps", "--noconfirm", "-S"}, pkgs...)...)
	case h.Launchable("emerge"):
		return h.AsRoot(append([]string{"emerge", "--oneshot"}, pkgs...)...)
	default:
		return []string{"false"}
	}
}

// DownloadCommand fetches url into the working directory as name. Plain
// HTTP links go through wget or curl, torrents and everything else through
// aria2c. It is a failing command when no tool fits.
func (h *Host) DownloadCommand(url, name string) []string {
	if strings.HasPrefix(url, "http") && !strings.HasSuffix(url, ".torrent") {
		if h.Launchable("wget") {
			return []string{"wget", url}
		}
		if h.Launchable("curl") {
			return []string{"curl", url, "--output", name}
		}
	}
	if h.Launchable("aria2c") {
		return []string{"aria2c", "--seed-time=0", url}
	}
	return []string{"false"}
}
