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

// Package installer drives the installation of a game once its archives are
// chosen: download, system packages, setup script and privileged finalize
// step, one process at a time.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dotslashplay/playit-wizard/pkg/archives"
	"github.com/dotslashplay/playit-wizard/pkg/system"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Host provides the system specific commands of each stage.
type Host interface {
	InstalledPackages(ctx context.Context) (string, map[string]struct{}, error)
	DownloadCommand(url, name string) []string
	InstallCommand(pkgs []string) []string
	AsRoot(cmd ...string) []string
}

var (
	// ErrNoSelection is returned when no archive group is selected.
	ErrNoSelection = errors.New("no archive group selected")
	// ErrExit is returned when a command exits with a non-zero code.
	ErrExit = errors.New("command failed")
)

// Outcome is the final state of a run. Stage is Done on success, otherwise
// the stage that failed.
type Outcome struct {
	Err   error
	Stage Stage
}

// OK reports a successful run.
func (o Outcome) OK() bool {
	return o.Stage == Done && o.Err == nil
}

// Sequencer installs the selected group of Tree into Folder.
type Sequencer struct {
	Tree   *archives.Tree
	Host   Host
	Runner Runner
	Fs     afero.Fs
	// Output receives the output of every command, as for a terminal.
	Output io.Writer
	// OnStage is called when a stage starts, and with Done or Failed at the
	// end of the run.
	OnStage func(Stage)
	Folder  string
	Script  string
}

func (s *Sequencer) setStage(st Stage) {
	log.Info().Stringer("stage", st).Msg("install stage")
	if s.OnStage != nil {
		s.OnStage(st)
	}
}

func (s *Sequencer) fail(st Stage, err error) Outcome {
	log.Error().Err(err).Stringer("stage", st).Msg("install failed")
	s.setStage(Failed)
	return Outcome{Stage: st, Err: err}
}

func (s *Sequencer) exists(name string) bool {
	ok, err := afero.Exists(s.Fs, filepath.Join(s.Folder, name))
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("error checking archive")
	}
	return ok
}

func (s *Sequencer) run(ctx context.Context, argv []string, out io.Writer) (int, error) {
	log.Info().Strs("argv", argv).Str("dir", s.Folder).Msg("running command")
	_, _ = fmt.Fprintf(s.Output, "\x1b[1m$ %s\x1b[0m\n", strings.Join(argv, " "))
	code, err := s.Runner.Run(ctx, s.Folder, argv, out)
	if err != nil {
		return code, err
	}
	log.Info().Str("cmd", argv[0]).Int("code", code).Msg("command exited")
	return code, nil
}

// Run executes every stage in order and stops at the first failure. Stages
// advance on exit code 0 only, except downloads: after each download the
// folder is checked again, so a failed link falls through to the next one.
func (s *Sequencer) Run(ctx context.Context) Outcome {
	if s.Fs == nil {
		s.Fs = afero.NewOsFs()
	}
	if s.Output == nil {
		s.Output = io.Discard
	}
	if s.Tree == nil || s.Tree.Selected() == nil {
		return s.fail(Download, ErrNoSelection)
	}

	s.setStage(Download)
	for {
		d, ok, err := s.Tree.NextDownload(s.exists)
		if err != nil {
			return s.fail(Download, err)
		}
		if !ok {
			break
		}
		if _, err := s.run(ctx, s.Host.DownloadCommand(d.URL, d.Name), s.Output); err != nil {
			if ctx.Err() != nil {
				return s.fail(Download, ctx.Err())
			}
			log.Warn().Err(err).Str("url", d.URL).Msg("download could not start")
		}
	}

	s.setStage(Build)
	family, installed, err := s.Host.InstalledPackages(ctx)
	if err != nil {
		return s.fail(Build, err)
	}
	missing := system.MissingPackages(s.Tree.Requirements(family), installed)
	log.Info().Strs("packages", missing).Str("family", family).Msg("missing packages")
	if o, ok := s.step(ctx, Build, s.Host.InstallCommand(missing), s.Output); !ok {
		return o
	}

	s.setStage(Setup)
	target, _ := s.Tree.SetupTarget()
	var last lastLine
	if o, ok := s.step(ctx, Setup, []string{s.Script, target}, io.MultiWriter(s.Output, &last)); !ok {
		return o
	}

	s.setStage(Finalize)
	finalize := last.String()
	if finalize == "" {
		log.Warn().Msg("setup script printed no install command")
	}
	if o, ok := s.step(ctx, Finalize, s.Host.AsRoot("sh", "-c", finalize), s.Output); !ok {
		return o
	}

	s.setStage(Done)
	return Outcome{Stage: Done}
}

func (s *Sequencer) step(ctx context.Context, st Stage, argv []string, out io.Writer) (Outcome, bool) {
	code, err := s.run(ctx, argv, out)
	if err != nil {
		return s.fail(st, err), false
	}
	if code != 0 {
		return s.fail(st, fmt.Errorf("%w: %s exited with code %d", ErrExit, argv[0], code)), false
	}
	return Outcome{}, true
}
