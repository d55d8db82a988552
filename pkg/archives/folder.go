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

package archives

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ScanFolder lists the entry names of the install folder. ok is false when
// dir is not a readable directory, in which case the content is empty and
// every archive is treated as absent.
func ScanFolder(fs afero.Fs, dir string) (content map[string]struct{}, ok bool) {
	content = make(map[string]struct{})

	isDir, err := afero.IsDir(fs, dir)
	if err != nil || !isDir {
		return content, false
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("error reading install folder")
		return content, false
	}

	for _, e := range entries {
		content[e.Name()] = struct{}{}
	}
	return content, true
}
