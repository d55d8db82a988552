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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dotslashplay/playit-wizard/pkg/cli"
	"github.com/dotslashplay/playit-wizard/pkg/config"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre()

	if os.Geteuid() == 0 {
		return errors.New("the wizard cannot be run as root, it asks for privileges when needed")
	}

	cfg := cli.Setup(config.BaseDefaults, nil)
	flags.Post(cfg)

	return cli.RunApp(cfg, cli.NewDeps(cfg))
}
