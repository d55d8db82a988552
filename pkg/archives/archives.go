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

// Package archives models the installation files a game needs: groups of
// archives sharing a role, their presence in the install folder and the
// download links left to try for each of them.
package archives

import (
	"errors"
	"slices"
)

// Status of an archive or group in the install folder. Values are ordered:
// a group is only as available as its least available archive.
type Status int

const (
	// Missing archives are absent and have no download link left.
	Missing Status = iota
	// Downloadable archives are absent but can still be fetched.
	Downloadable
	// Present archives are already in the install folder.
	Present
)

func (s Status) String() string {
	switch s {
	case Missing:
		return "missing"
	case Downloadable:
		return "downloadable"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// ErrRequiredMissing is returned when a required archive is absent and
// every download link for it has been used up.
var ErrRequiredMissing = errors.New("required archive is missing and cannot be downloaded")

// Archive is one downloadable file described by the catalog.
type Archive struct {
	// Dependencies maps a distribution family to package requirements. Each
	// requirement lists alternatives separated by " | ".
	Dependencies map[string][]string
	Name         string
	URL          string
	// Links are the download links not tried yet, in preference order.
	Links    []string
	Required bool
	Status   Status
}

// Group is an ordered list of archives sharing a role, such as the
// installer of one edition of a game.
type Group struct {
	Archives []*Archive
	Status   Status
}

// Name of a group is the name of its first archive.
func (g *Group) Name() string {
	if len(g.Archives) == 0 {
		return ""
	}
	return g.Archives[0].Name
}

// Tree holds every archive group of a game and the single group selected
// for installation.
type Tree struct {
	Groups   []*Group
	selected int
}

// NewTree builds a tree. A tree with a single group starts with it selected.
func NewTree(groups []*Group) *Tree {
	t := &Tree{Groups: groups, selected: -1}
	if len(groups) == 1 {
		t.selected = 0
	}
	return t
}

// Select makes group i the selected group. Out of range clears the selection.
func (t *Tree) Select(i int) {
	if i < 0 || i >= len(t.Groups) {
		t.selected = -1
		return
	}
	t.selected = i
}

// Selected returns the selected group, or nil.
func (t *Tree) Selected() *Group {
	if t.selected < 0 || t.selected >= len(t.Groups) {
		return nil
	}
	return t.Groups[t.selected]
}

// SelectedIndex returns the index of the selected group, or -1.
func (t *Tree) SelectedIndex() int {
	if t.Selected() == nil {
		return -1
	}
	return t.selected
}

// CanApply reports whether installation may start: a group is selected and
// none of its archives is Missing.
func (t *Tree) CanApply() bool {
	g := t.Selected()
	return g != nil && g.Status != Missing
}

// Refresh recomputes every status against the names found in the install
// folder. A group takes the lowest status of its archives.
func (t *Tree) Refresh(content map[string]struct{}) {
	for _, g := range t.Groups {
		g.Status = Present
		for _, a := range g.Archives {
			a.Status = archiveStatus(a, content)
			g.Status = min(g.Status, a.Status)
		}
	}
}

func archiveStatus(a *Archive, content map[string]struct{}) Status {
	if _, ok := content[a.Name]; ok {
		return Present
	}
	if len(a.Links) > 0 {
		return Downloadable
	}
	return Missing
}

// Download is the next file to fetch: the archive name and the link popped
// from its list.
type Download struct {
	Name string
	URL  string
}

// NextDownload walks the selected group in order and pops the next link of
// the first absent archive that still has one. Optional archives without
// links are skipped. ok is false once nothing is left to download.
func (t *Tree) NextDownload(exists func(name string) bool) (Download, bool, error) {
	g := t.Selected()
	if g == nil {
		return Download{}, false, errors.New("no archive group selected")
	}

	for _, a := range g.Archives {
		if exists(a.Name) {
			continue
		}
		if len(a.Links) > 0 {
			link := a.Links[0]
			a.Links = a.Links[1:]
			return Download{Name: a.Name, URL: link}, true, nil
		}
		if a.Required {
			return Download{}, false, ErrRequiredMissing
		}
	}
	return Download{}, false, nil
}

// Requirements collects the dependency entries of the selected group for a
// distribution family, in archive order without duplicates.
func (t *Tree) Requirements(family string) []string {
	g := t.Selected()
	if g == nil || family == "" {
		return nil
	}

	var reqs []string
	for _, a := range g.Archives {
		for _, entry := range a.Dependencies[family] {
			if !slices.Contains(reqs, entry) {
				reqs = append(reqs, entry)
			}
		}
	}
	return reqs
}

// SetupTarget is the archive handed to the setup script: the first archive
// of the selected group.
func (t *Tree) SetupTarget() (string, bool) {
	g := t.Selected()
	if g == nil || len(g.Archives) == 0 {
		return "", false
	}
	return g.Archives[0].Name, true
}
