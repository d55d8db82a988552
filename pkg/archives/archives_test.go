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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func witcherTree() *Tree {
	return NewTree([]*Group{
		{Archives: []*Archive{
			{
				Name:     "setup_the_witcher.exe",
				URL:      "https://www.gog.com/game/the_witcher",
				Required: true,
				Links:    []string{"https://example.org/witcher.torrent", "https://example.org/setup_the_witcher.exe"},
				Dependencies: map[string][]string{
					"debian":    {"innoextract", "unar | unrar"},
					"archlinux": {"innoextract"},
				},
			},
			{
				Name:         "setup_the_witcher-1.bin",
				Required:     true,
				Links:        []string{"https://example.org/setup_the_witcher-1.bin"},
				Dependencies: map[string][]string{"debian": {"innoextract"}},
			},
			{
				Name: "witcher_patch_fr.exe",
			},
		}},
		{Archives: []*Archive{
			{Name: "the_witcher_goty.tar.gz", Required: true},
		}},
	})
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func TestNewTree_SingleGroupSelected(t *testing.T) {
	t.Parallel()

	single := NewTree([]*Group{{Archives: []*Archive{{Name: "game.sh"}}}})
	require.NotNil(t, single.Selected())
	assert.Equal(t, 0, single.SelectedIndex())

	multi := witcherTree()
	assert.Nil(t, multi.Selected())
	assert.Equal(t, -1, multi.SelectedIndex())
}

func TestGroupName(t *testing.T) {
	t.Parallel()

	tree := witcherTree()
	assert.Equal(t, "setup_the_witcher.exe", tree.Groups[0].Name())
	assert.Empty(t, (&Group{}).Name())
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content    map[string]struct{}
		name       string
		archives   []Status
		groupFirst Status
	}{
		{
			name:       "empty folder",
			content:    set(),
			archives:   []Status{Downloadable, Downloadable, Missing},
			groupFirst: Missing,
		},
		{
			name:       "optional patch present",
			content:    set("witcher_patch_fr.exe"),
			archives:   []Status{Downloadable, Downloadable, Present},
			groupFirst: Downloadable,
		},
		{
			name:       "everything present",
			content:    set("setup_the_witcher.exe", "setup_the_witcher-1.bin", "witcher_patch_fr.exe"),
			archives:   []Status{Present, Present, Present},
			groupFirst: Present,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := witcherTree()
			tree.Refresh(tt.content)

			for i, want := range tt.archives {
				assert.Equal(t, want, tree.Groups[0].Archives[i].Status, "archive %d", i)
			}
			assert.Equal(t, tt.groupFirst, tree.Groups[0].Status)
			assert.Equal(t, Missing, tree.Groups[1].Status)
		})
	}
}

func TestCanApply(t *testing.T) {
	t.Parallel()

	tree := witcherTree()
	tree.Refresh(set("witcher_patch_fr.exe"))
	assert.False(t, tree.CanApply(), "nothing selected")

	tree.Select(1)
	assert.False(t, tree.CanApply(), "missing group")

	tree.Select(0)
	assert.True(t, tree.CanApply(), "downloadable group")

	tree.Select(5)
	assert.Nil(t, tree.Selected())
	assert.False(t, tree.CanApply())
}

func TestNextDownload_PopsLinksInOrder(t *testing.T) {
	t.Parallel()

	tree := witcherTree()
	tree.Select(0)
	present := set()
	exists := func(name string) bool { _, ok := present[name]; return ok }

	d, ok, err := tree.NextDownload(exists)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Download{Name: "setup_the_witcher.exe", URL: "https://example.org/witcher.torrent"}, d)
	assert.Len(t, tree.Groups[0].Archives[0].Links, 1, "link consumed")

	// the torrent failed to produce the file: fall back on the direct link
	d, ok, err = tree.NextDownload(exists)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://example.org/setup_the_witcher.exe", d.URL)

	present["setup_the_witcher.exe"] = struct{}{}
	d, ok, err = tree.NextDownload(exists)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "setup_the_witcher-1.bin", d.Name)

	present["setup_the_witcher-1.bin"] = struct{}{}
	_, ok, err = tree.NextDownload(exists)
	require.NoError(t, err, "optional archive without links is skipped")
	assert.False(t, ok)
}

func TestNextDownload_RequiredExhausted(t *testing.T) {
	t.Parallel()

	tree := witcherTree()
	tree.Select(0)
	tree.Groups[0].Archives[0].Links = nil

	_, ok, err := tree.NextDownload(func(string) bool { return false })
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrRequiredMissing)
}

func TestNextDownload_NoSelection(t *testing.T) {
	t.Parallel()

	_, ok, err := witcherTree().NextDownload(func(string) bool { return false })
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestRequirements(t *testing.T) {
	t.Parallel()

	tree := witcherTree()
	assert.Nil(t, tree.Requirements("debian"), "no selection")

	tree.Select(0)
	assert.Equal(t, []string{"innoextract", "unar | unrar"}, tree.Requirements("debian"))
	assert.Equal(t, []string{"innoextract"}, tree.Requirements("archlinux"))
	assert.Empty(t, tree.Requirements("gentoo"))
	assert.Nil(t, tree.Requirements(""))
}

func TestSetupTarget(t *testing.T) {
	t.Parallel()

	tree := witcherTree()
	_, ok := tree.SetupTarget()
	assert.False(t, ok)

	tree.Select(0)
	name, ok := tree.SetupTarget()
	assert.True(t, ok)
	assert.Equal(t, "setup_the_witcher.exe", name)
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "downloadable", Downloadable.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "unknown", Status(9).String())
}
