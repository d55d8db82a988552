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

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dotslashplay/playit-wizard/pkg/archives"
)

// Game is one entry of a search result.
type Game struct {
	Name string
	// Slug is the game identifier used by the wiki, the thumbnail cache and
	// as the launch command.
	Slug string
	// Image is the path of the preview image relative to the images host,
	// empty when the game has none.
	Image string
	ID    int
}

type apiBanner struct {
	Small *string `json:"small"`
}

type apiImages struct {
	Banner    *apiBanner `json:"banner"`
	Thumbnail *string    `json:"thumbnail"`
}

type apiGame struct {
	Name   string    `json:"game_name"`
	Slug   string    `json:"game_id"`
	Images apiImages `json:"images"`
	ID     int       `json:"id"`
}

func (g *apiGame) toGame() Game {
	game := Game{ID: g.ID, Name: g.Name, Slug: g.Slug}
	switch {
	case g.Images.Banner != nil && g.Images.Banner.Small != nil:
		game.Image = *g.Images.Banner.Small
	case g.Images.Thumbnail != nil:
		game.Image = *g.Images.Thumbnail
	}
	return game
}

// dependencyMap accepts both a JSON object and the empty array the API
// sends for archives without dependencies.
type dependencyMap map[string][]string

func (d *dependencyMap) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]")) {
		*d = nil
		return nil
	}
	m := make(map[string][]string)
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return fmt.Errorf("invalid dependencies: %w", err)
	}
	*d = m
	return nil
}

type apiArchive struct {
	URL          *string       `json:"url"`
	Torrent      *string       `json:"download_torrent"`
	Direct       *string       `json:"download_direct"`
	Dependencies dependencyMap `json:"dependencies"`
	Name         string        `json:"name"`
	Required     bool          `json:"required"`
}

type apiShow struct {
	Script struct {
		Archives [][]apiArchive `json:"archives"`
	} `json:"script"`
}

func (a *apiArchive) toArchive() *archives.Archive {
	arc := &archives.Archive{
		Name:         a.Name,
		Required:     a.Required,
		Dependencies: a.Dependencies,
		Links:        make([]string, 0, 2),
	}
	if a.URL != nil {
		arc.URL = *a.URL
	}
	for _, link := range []*string{a.Torrent, a.Direct} {
		if link != nil && *link != "" {
			arc.Links = append(arc.Links, *link)
		}
	}
	return arc
}

func (s *apiShow) toTree() *archives.Tree {
	groups := make([]*archives.Group, 0, len(s.Script.Archives))
	for _, group := range s.Script.Archives {
		g := &archives.Group{Archives: make([]*archives.Archive, 0, len(group))}
		for i := range group {
			g.Archives = append(g.Archives, group[i].toArchive())
		}
		groups = append(groups, g)
	}
	return archives.NewTree(groups)
}
