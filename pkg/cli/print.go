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

package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dotslashplay/playit-wizard/pkg/archives"
	"github.com/dotslashplay/playit-wizard/pkg/catalog"
	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/dotslashplay/playit-wizard/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// NewCatalogClient returns a catalog client for the configured API.
func NewCatalogClient(cfg *config.Instance) *catalog.Client {
	return catalog.NewClient(httpclient.NewClientFromConfig(cfg), cfg.APIURL())
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.APIRequestTimeout)
}

// PrintSearch writes one "id<TAB>slug<TAB>name" line per matching game.
func PrintSearch(w io.Writer, client *catalog.Client, query string) error {
	ctx, cancel := requestContext()
	defer cancel()

	games, err := client.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	for _, g := range games {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", g.ID, g.Slug, g.Name); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return nil
}

// PrintShow writes the archive groups of a game with the status of each
// file in folder. A folder that cannot be read is treated as empty.
func PrintShow(w io.Writer, client *catalog.Client, id int, folder string) error {
	ctx, cancel := requestContext()
	defer cancel()

	tree, err := client.Show(ctx, id)
	if err != nil {
		return err //nolint:wrapcheck // already names the game
	}
	// An unusable folder holds none of the archives.
	content, ok := archives.ScanFolder(afero.NewOsFs(), folder)
	if !ok {
		log.Warn().Str("folder", folder).Msg("not a folder, every archive is absent")
	}
	tree.Refresh(content)
	return WriteTree(w, tree)
}

// WriteTree prints every group then its archives, indented, as columns.
func WriteTree(w io.Writer, tree *archives.Tree) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range tree.Groups {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, g.Name(), g.Status)
		for _, a := range g.Archives {
			kind := "required"
			if !a.Required {
				kind = "optional"
			}
			_, _ = fmt.Fprintf(tw, "\t  %s\t%s\t%s\n", a.Name, a.Status, kind)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
