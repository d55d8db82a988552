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

package installer

// Stage of the installation pipeline.
type Stage int

const (
	// Download fetches every absent archive of the selected group.
	Download Stage = iota
	// Build installs the system packages the archives depend on.
	Build
	// Setup runs the setup script on the first archive of the group.
	Setup
	// Finalize runs, as root, the command the setup script printed last.
	Finalize
	// Done means the game is installed.
	Done
	// Failed means a stage failed; the user may go back and retry.
	Failed
)

func (s Stage) String() string {
	switch s {
	case Download:
		return "download"
	case Build:
		return "build"
	case Setup:
		return "setup"
	case Finalize:
		return "finalize"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Running reports whether a process may still be active in this stage.
func (s Stage) Running() bool {
	return s < Done
}
