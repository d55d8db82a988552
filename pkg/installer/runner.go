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

package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
	"github.com/rs/zerolog/log"
)

// Runner runs one command to completion in dir, streaming its output to
// out, and returns its exit code. The error is only set when the command
// could not be run at all.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string, out io.Writer) (int, error)
}

// PtyRunner runs commands attached to a pseudo-terminal so tools keep their
// interactive output (progress, colours, password prompts).
type PtyRunner struct {
	// Size of the terminal reported to the command. Zero keeps the pty
	// default.
	Size pty.Winsize
}

func (r *PtyRunner) Run(ctx context.Context, dir string, argv []string, out io.Writer) (int, error) {
	if len(argv) == 0 {
		return -1, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var size *pty.Winsize
	if r.Size.Rows > 0 && r.Size.Cols > 0 {
		size = &r.Size
	}
	ptmx, err := pty.StartWithSize(cmd, size)
	if err != nil {
		return -1, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	defer func() {
		if err := ptmx.Close(); err != nil {
			log.Debug().Err(err).Msg("error closing pty")
		}
	}()

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		// reading a pty whose child exited fails with EIO
		if _, err := io.Copy(out, ptmx); err != nil {
			log.Debug().Err(err).Str("cmd", argv[0]).Msg("pty copy ended")
		}
	}()

	waitErr := cmd.Wait()
	<-copied

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("error waiting for %s: %w", argv[0], waitErr)
	}
	return 0, nil
}
