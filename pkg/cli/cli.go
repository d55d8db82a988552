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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/dotslashplay/playit-wizard/pkg/helpers"
	"github.com/rs/zerolog/log"
)

type Flags struct {
	Version *bool
	Search  *string
	Show    *int
	Folder  *string
	Debug   *bool
}

// SetupFlags defines the command line flags of the wizard.
func SetupFlags() *Flags {
	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Search: flag.String(
			"search",
			"",
			"print the games matching a name and exit",
		),
		Show: flag.Int(
			"show",
			0,
			"print the installation files of a game id and exit",
		),
		Folder: flag.String(
			"folder",
			"",
			"install folder to start with",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"enable debug logging",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		os.Exit(0)
	}
}

// Post actions the remaining flags once config and logging are set up.
// Query flags print to stdout and exit.
func (f *Flags) Post(cfg *config.Instance) {
	if *f.Debug {
		helpers.SetDebug(true)
	}
	if *f.Folder != "" {
		cfg.SetInstallFolder(*f.Folder)
	}

	switch {
	case isFlagPassed("search"):
		if err := PrintSearch(os.Stdout, NewCatalogClient(cfg), *f.Search); err != nil {
			log.Error().Err(err).Msg("error searching catalog")
			_, _ = fmt.Fprintf(os.Stderr, "Error searching catalog: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	case isFlagPassed("show"):
		if *f.Show <= 0 {
			_, _ = fmt.Fprint(os.Stderr, "Error: show flag requires a game id\n")
			os.Exit(1)
		}
		err := PrintShow(os.Stdout, NewCatalogClient(cfg), *f.Show, cfg.InstallFolder())
		if err != nil {
			log.Error().Err(err).Msg("error loading game")
			_, _ = fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}
}

// Setup initializes directories, logging and both config files. Returns a
// user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) *config.Instance {
	err := helpers.EnsureDirectories()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating directories: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(helpers.CacheDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	helpers.SetDebug(cfg.DebugLogging())

	if err := config.LoadTUIConfig(helpers.ConfigDir()); err != nil {
		log.Warn().Err(err).Msg("error loading TUI config, using defaults")
	}

	return cfg
}
