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

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/dotslashplay/playit-wizard/pkg/helpers/syncutil"
)

const lastLineKeep = 4096

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*\x07`)

// lastLine remembers the tail of what was written to it so the last
// printed line can be recovered once the command exits.
type lastLine struct {
	buf []byte
	mu  syncutil.Mutex
}

func (l *lastLine) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf, p...)
	if len(l.buf) > lastLineKeep {
		l.buf = l.buf[len(l.buf)-lastLineKeep:]
	}
	return len(p), nil
}

// String returns the last non-empty line, without terminal escapes.
func (l *lastLine) String() string {
	l.mu.Lock()
	text := ansiEscape.ReplaceAll(bytes.Clone(l.buf), nil)
	l.mu.Unlock()

	lines := strings.FieldsFunc(string(text), func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
