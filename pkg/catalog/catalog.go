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

// Package catalog queries the ./play.it games API.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dotslashplay/playit-wizard/pkg/archives"
	"github.com/dotslashplay/playit-wizard/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
)

const searchProperties = "game_name,game_id,id,images.thumbnail,images.banner"

// Client talks to the catalog API rooted at a base URL.
type Client struct {
	http *httpclient.Client
	base string
}

// NewClient returns a catalog client for the API at base. A nil http client
// uses httpclient.DefaultClient.
func NewClient(hc *httpclient.Client, base string) *Client {
	if hc == nil {
		hc = httpclient.DefaultClient
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Client{http: hc, base: base}
}

// SearchURL builds the request URL for a search. An empty query lists every
// game.
func (c *Client) SearchURL(query string) string {
	if query == "" {
		return c.base + "games/list?properties=" + searchProperties
	}
	return c.base + "games/search?search=" + queryEscape(query) +
		"&properties=" + searchProperties
}

// queryEscape encodes spaces as %20 and keeps slashes, as the catalog
// expects.
func queryEscape(s string) string {
	return strings.NewReplacer("+", "%20", "%2F", "/").Replace(url.QueryEscape(s))
}

// ShowURL builds the request URL of a game's archive tree.
func (c *Client) ShowURL(id int) string {
	return c.base + "games/show/" + strconv.Itoa(id) + "?archives_view=flat"
}

// Search returns the games matching query, in API order.
func (c *Client) Search(ctx context.Context, query string) ([]Game, error) {
	u := c.SearchURL(query)
	log.Debug().Str("url", u).Msg("searching catalog")

	var resp []apiGame
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("error searching catalog: %w", err)
	}

	games := make([]Game, 0, len(resp))
	for i := range resp {
		games = append(games, resp[i].toGame())
	}
	return games, nil
}

// ErrNoArchives is returned when a game has no installation files listed.
var ErrNoArchives = errors.New("game has no installation archives")

// Show returns the archive tree of the game with the given catalog id.
func (c *Client) Show(ctx context.Context, id int) (*archives.Tree, error) {
	u := c.ShowURL(id)
	log.Debug().Str("url", u).Msg("loading game archives")

	var resp apiShow
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("error loading game %d: %w", id, err)
	}
	if len(resp.Script.Archives) == 0 {
		return nil, ErrNoArchives
	}
	return resp.toTree(), nil
}
