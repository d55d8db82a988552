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
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyMissingPackages checks that every entry is either satisfied by
// an installed alternative or contributes its first alternative, and that
// nothing else is reported.
func TestPropertyMissingPackages(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		pkgName := rapid.StringMatching(`[a-z][a-z0-9-]{0,6}`)
		installedList := rapid.SliceOf(pkgName).Draw(t, "installed")
		installed := make(map[string]struct{}, len(installedList))
		for _, p := range installedList {
			installed[p] = struct{}{}
		}

		entries := rapid.SliceOfN(rapid.SliceOfN(pkgName, 1, 3), 0, 6).Draw(t, "entries")
		reqs := make([]string, len(entries))
		for i, alts := range entries {
			reqs[i] = strings.Join(alts, " | ")
		}

		got := MissingPackages(reqs, installed)

		if !slices.IsSorted(got) {
			t.Fatalf("result not sorted: %v", got)
		}
		if len(slices.Compact(slices.Clone(got))) != len(got) {
			t.Fatalf("result has duplicates: %v", got)
		}

		var want []string
		for _, alts := range entries {
			if !slices.ContainsFunc(alts, func(a string) bool { _, ok := installed[a]; return ok }) {
				want = append(want, alts[0])
			}
		}
		slices.Sort(want)
		want = slices.Compact(want)
		if !slices.Equal(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})
}
