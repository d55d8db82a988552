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
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotslashplay/playit-wizard/pkg/archives"
	"github.com/dotslashplay/playit-wizard/pkg/helpers/syncutil"
	"github.com/dotslashplay/playit-wizard/pkg/system"
	testhelpers "github.com/dotslashplay/playit-wizard/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const folder = "/home/user/games"

// fakeRunner plays the part of the external tools: downloads create the
// file unless the link is listed in broken, the setup script prints its
// install hint unless silent, and exit codes come from codes.
type fakeRunner struct {
	fs     afero.Fs
	silent bool
	codes  map[string]int
	broken map[string]bool
	calls  [][]string
	mu     syncutil.Mutex
}

func (f *fakeRunner) Run(_ context.Context, dir string, argv []string, out io.Writer) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, argv)
	f.mu.Unlock()

	switch argv[0] {
	case "wget", "aria2c":
		url := argv[len(argv)-1]
		if !f.broken[url] {
			name := strings.TrimSuffix(filepath.Base(url), ".torrent")
			_ = afero.WriteFile(f.fs, filepath.Join(dir, name), []byte("data"), 0o600)
		}
	case "play.it":
		if f.silent {
			break
		}
		_, _ = io.WriteString(out, "\x1b[32mOK\x1b[0m\r\nInstall with:\r\n\x1b[1mapt install /tmp/the-witcher.deb\x1b[0m\r\n\r\n")
	}
	return f.codes[argv[0]], nil
}

func (f *fakeRunner) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, strings.Join(c, " "))
	}
	return out
}

func witcher() *archives.Tree {
	tree := archives.NewTree([]*archives.Group{{Archives: []*archives.Archive{
		{
			Name:     "setup_the_witcher.exe",
			Required: true,
			Links:    []string{"https://dl.example.org/setup_the_witcher.exe.torrent", "https://dl.example.org/setup_the_witcher.exe"},
			Dependencies: map[string][]string{
				"debian": {"innoextract", "unar | unrar"},
			},
		},
		{
			Name:     "setup_the_witcher-1.bin",
			Required: true,
			Links:    []string{"https://dl.example.org/setup_the_witcher-1.bin"},
		},
		{Name: "witcher_patch_fr.exe"},
	}}})
	return tree
}

func newSequencer(t *testing.T, runner *fakeRunner, onPath ...string) (*Sequencer, *[]Stage) {
	t.Helper()

	host := &system.Host{
		Exec:   testhelpers.NewMockCommandExecutor(onPath...),
		Fs:     runner.fs,
		Getenv: func(string) string { return "" },
	}
	require.NoError(t, runner.fs.MkdirAll(folder, 0o750))

	var stages []Stage
	return &Sequencer{
		Tree:    witcher(),
		Host:    host,
		Runner:  runner,
		Fs:      runner.fs,
		Folder:  folder,
		Script:  "play.it",
		OnStage: func(s Stage) { stages = append(stages, s) },
	}, &stages
}

func TestRun_FullInstall(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{fs: afero.NewMemMapFs()}
	seq, stages := newSequencer(t, runner, "wget", "aria2c", "sudo", "apt")

	out := seq.Run(context.Background())
	require.NoError(t, out.Err)
	assert.True(t, out.OK())
	assert.Equal(t, []Stage{Download, Build, Setup, Finalize, Done}, *stages)

	// no dpkg-query on PATH: unknown family, nothing to install
	assert.Equal(t, []string{
		"aria2c --seed-time=0 https://dl.example.org/setup_the_witcher.exe.torrent",
		"wget https://dl.example.org/setup_the_witcher-1.bin",
		"true",
		"play.it setup_the_witcher.exe",
		"sudo sh -c apt install /tmp/the-witcher.deb",
	}, runner.commands())
}

func TestRun_InstallsMissingPackages(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{fs: afero.NewMemMapFs()}
	seq, _ := newSequencer(t, runner, "wget", "aria2c", "sudo", "apt", "dpkg-query")
	require.NoError(t, afero.WriteFile(runner.fs, folder+"/setup_the_witcher.exe", nil, 0o600))
	require.NoError(t, afero.WriteFile(runner.fs, folder+"/setup_the_witcher-1.bin", nil, 0o600))

	out := seq.Run(context.Background())
	require.True(t, out.OK())

	cmds := runner.commands()
	require.Len(t, cmds, 3, "nothing to download")
	assert.Equal(t, "sudo apt install --assume-yes innoextract unar", cmds[0])
}

func TestRun_DownloadFallsBackOnNextLink(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{
		fs:     afero.NewMemMapFs(),
		broken: map[string]bool{"https://dl.example.org/setup_the_witcher.exe.torrent": true},
	}
	seq, _ := newSequencer(t, runner, "wget", "aria2c", "sudo")

	out := seq.Run(context.Background())
	require.True(t, out.OK())

	cmds := runner.commands()
	assert.Equal(t, "aria2c --seed-time=0 https://dl.example.org/setup_the_witcher.exe.torrent", cmds[0])
	assert.Equal(t, "wget https://dl.example.org/setup_the_witcher.exe", cmds[1])
}

func TestRun_RequiredArchiveUnavailable(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{
		fs:     afero.NewMemMapFs(),
		broken: map[string]bool{"https://dl.example.org/setup_the_witcher-1.bin": true},
	}
	seq, stages := newSequencer(t, runner, "wget", "aria2c")

	out := seq.Run(context.Background())
	assert.Equal(t, Download, out.Stage)
	require.ErrorIs(t, out.Err, archives.ErrRequiredMissing)
	assert.Equal(t, []Stage{Download, Failed}, *stages)
}

func TestRun_StageFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		codes map[string]int
		name  string
		stage Stage
	}{
		{name: "package install", codes: map[string]int{"sudo": 100}, stage: Build},
		{name: "setup script", codes: map[string]int{"play.it": 1}, stage: Setup},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{fs: afero.NewMemMapFs(), codes: tt.codes}
			seq, stages := newSequencer(t, runner, "wget", "aria2c", "sudo", "apt", "dpkg-query")

			out := seq.Run(context.Background())
			assert.Equal(t, tt.stage, out.Stage)
			require.ErrorIs(t, out.Err, ErrExit)
			assert.Equal(t, Failed, (*stages)[len(*stages)-1])
		})
	}
}

func TestRun_FinalizeFailure(t *testing.T) {
	t.Parallel()

	// the finalize command is the only one run through sudo when nothing
	// is missing
	runner := &fakeRunner{fs: afero.NewMemMapFs(), codes: map[string]int{"sudo": 1}}
	seq, _ := newSequencer(t, runner, "wget", "aria2c", "sudo")

	out := seq.Run(context.Background())
	assert.Equal(t, Finalize, out.Stage)
	require.ErrorIs(t, out.Err, ErrExit)
}

func TestRun_EmptyFinalizeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codes map[string]int
		ok    bool
	}{
		{name: "root shell succeeds", ok: true},
		{name: "root shell fails", codes: map[string]int{"sudo": 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{fs: afero.NewMemMapFs(), codes: tt.codes, silent: true}
			seq, stages := newSequencer(t, runner, "wget", "aria2c", "sudo")

			out := seq.Run(context.Background())
			cmds := runner.commands()
			assert.Equal(t, "sudo sh -c ", cmds[len(cmds)-1])
			if tt.ok {
				require.True(t, out.OK())
				assert.Equal(t, Done, (*stages)[len(*stages)-1])
				return
			}
			assert.Equal(t, Finalize, out.Stage)
			require.ErrorIs(t, out.Err, ErrExit)
		})
	}
}

func TestRun_NoSelection(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{fs: afero.NewMemMapFs()}
	seq, _ := newSequencer(t, runner)
	seq.Tree = archives.NewTree([]*archives.Group{{}, {}})

	out := seq.Run(context.Background())
	require.ErrorIs(t, out.Err, ErrNoSelection)
	assert.Empty(t, runner.commands())
}

type errRunner struct{}

func (errRunner) Run(context.Context, string, []string, io.Writer) (int, error) {
	return -1, errors.New("exec: not found")
}

func TestRun_CancelledDuringDownload(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{fs: afero.NewMemMapFs()}
	seq, _ := newSequencer(t, runner, "wget")
	seq.Runner = errRunner{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := seq.Run(ctx)
	assert.Equal(t, Download, out.Stage)
	require.ErrorIs(t, out.Err, context.Canceled)
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	var l lastLine
	_, _ = l.Write([]byte("Extracting...\r\n\x1b[1;33mRun this as root:\x1b[0m\r\n  pacman -U /tmp/the-witcher.pkg.tar  \r\n\r\n"))
	assert.Equal(t, "pacman -U /tmp/the-witcher.pkg.tar", l.String())

	var empty lastLine
	assert.Empty(t, empty.String())

	var long lastLine
	_, _ = long.Write([]byte(strings.Repeat("x", 2*lastLineKeep)))
	_, _ = long.Write([]byte("\ntail\n"))
	assert.Equal(t, "tail", long.String())
}

func TestStage(t *testing.T) {
	t.Parallel()

	assert.True(t, Download.Running())
	assert.True(t, Finalize.Running())
	assert.False(t, Done.Running())
	assert.False(t, Failed.Running())
	assert.Equal(t, "finalize", Finalize.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
