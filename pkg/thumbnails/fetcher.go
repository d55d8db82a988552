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

// Package thumbnails downloads game preview images into the shared ./play.it
// thumbnail cache, one at a time, in the background.
package thumbnails

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/dotslashplay/playit-wizard/pkg/shared/httpclient"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// PollInterval is how often the fetcher asks its source for work.
const PollInterval = 100 * time.Millisecond

// Source hands out the next entry needing a thumbnail.
type Source interface {
	Next() (Request, bool)
}

// Fetcher downloads thumbnails for entries of a Source.
type Fetcher struct {
	Fs        afero.Fs
	Clock     clockwork.Clock
	Client    *httpclient.Client
	Source    Source
	Deliver   func(Result)
	ImagesURL string
	CacheDir  string
}

func (f *Fetcher) defaults() {
	if f.Fs == nil {
		f.Fs = afero.NewOsFs()
	}
	if f.Clock == nil {
		f.Clock = clockwork.NewRealClock()
	}
	if f.Client == nil {
		f.Client = httpclient.DefaultClient
	}
}

// Run polls the source until ctx is cancelled. Each tick handles at most
// one request.
func (f *Fetcher) Run(ctx context.Context) {
	f.defaults()

	if err := f.Fs.MkdirAll(f.CacheDir, 0o750); err != nil {
		log.Error().Err(err).Str("dir", f.CacheDir).Msg("error creating thumbnail cache")
	}

	ticker := f.Clock.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			req, ok := f.Source.Next()
			if !ok {
				continue
			}
			res := f.Fetch(ctx, req)
			if ctx.Err() != nil {
				return
			}
			f.Deliver(res)
		}
	}
}

// Fetch returns the cached thumbnail of req, downloading it first when it is
// not cached yet. Failures are logged and reported as a result without a
// thumbnail.
func (f *Fetcher) Fetch(ctx context.Context, req Request) Result {
	f.defaults()

	res := Result{Index: req.Index, Slug: req.Slug}
	if !cacheName(req.Slug) {
		if req.Slug != "" {
			log.Warn().Str("slug", req.Slug).Msg("slug is not a valid cache file name")
		}
		return res
	}
	path := filepath.Join(f.CacheDir, req.Slug)

	exists, err := afero.Exists(f.Fs, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error checking thumbnail cache")
	}
	if exists {
		res.Path, res.OK = path, true
		return res
	}
	if req.Image == "" {
		return res
	}

	err = f.Client.DownloadFile(ctx, httpclient.DownloadFileArgs{
		Fs:         f.Fs,
		URL:        f.ImagesURL + req.Image,
		OutputPath: path,
		TempPath:   path + ".part",
	})
	if err != nil {
		log.Warn().Err(err).Str("slug", req.Slug).Msg("error downloading thumbnail")
		return res
	}

	log.Debug().Str("slug", req.Slug).Msg("cached thumbnail")
	res.Path, res.OK = path, true
	return res
}

// cacheName reports whether slug can name a file directly inside the cache
// directory.
func cacheName(slug string) bool {
	return slug != "" && !strings.ContainsAny(slug, `/\`) && !strings.Contains(slug, "..")
}
