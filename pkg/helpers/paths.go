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
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dotslashplay/playit-wizard/pkg/config"
)

// ConfigDir returns the directory holding config.toml and tui.toml.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// CacheDir returns the application cache directory, which also holds the
// log file.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, config.AppName)
}

// ThumbnailDir returns the thumbnail cache shared with the other ./play.it
// frontends.
func ThumbnailDir() string {
	return filepath.Join(xdg.CacheHome, config.ThumbnailCacheDir)
}

// EnsureDirectories creates the config, cache and thumbnail directories.
func EnsureDirectories() error {
	for _, dir := range []string{ConfigDir(), CacheDir(), ThumbnailDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
