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
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/dotslashplay/playit-wizard/pkg/helpers"
	"github.com/dotslashplay/playit-wizard/pkg/installer"
	"github.com/dotslashplay/playit-wizard/pkg/shared/httpclient"
	"github.com/dotslashplay/playit-wizard/pkg/system"
	"github.com/dotslashplay/playit-wizard/pkg/thumbnails"
	"github.com/dotslashplay/playit-wizard/pkg/ui/tui"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Terminal size reported to installation commands.
const (
	terminalRows = 24
	terminalCols = 100
)

// NewDeps wires the wizard to the real catalog, host and filesystem.
func NewDeps(cfg *config.Instance) tui.Deps {
	fs := afero.NewOsFs()
	hc := httpclient.NewClientFromConfig(cfg)

	deps := tui.Deps{
		Catalog: NewCatalogClient(cfg),
		Host:    system.NewHost(),
		Runner:  &installer.PtyRunner{Size: pty.Winsize{Rows: terminalRows, Cols: terminalCols}},
		Fs:      fs,
		OpenURL: helpers.OpenBrowser,
	}
	if config.GetTUIConfig().Thumbnails {
		deps.Thumbnails = &thumbnails.Fetcher{
			Fs:        fs,
			Clock:     clockwork.NewRealClock(),
			Client:    hc,
			ImagesURL: cfg.ImagesURL(),
			CacheDir:  helpers.ThumbnailDir(),
		}
	}
	return deps
}

func logHost(ctx context.Context) {
	info, err := system.Describe(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error describing host")
		return
	}
	log.Info().
		Str("platform", info.Platform).
		Str("family", info.Family).
		Str("version", info.Version).
		Str("kernel", info.Kernel).
		Str("arch", info.Arch).
		Msg("host")
}

// RunApp shows the wizard until the user quits or a SIGINT/SIGTERM
// arrives.
func RunApp(cfg *config.Instance, deps tui.Deps) (returnErr error) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %v\n", r)
			log.Error().Msgf("panic recovered: %v", r)
			returnErr = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", config.AppVersion).Msg("starting wizard")
	logHost(ctx)

	if err := tui.Run(ctx, cfg, deps); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return fmt.Errorf("error running UI: %w", err)
	}
	return nil
}
