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

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
)

// appRunner runs a tview application on a simulation screen so tests can
// press keys and read back what was drawn.
type appRunner struct {
	app    *tview.Application
	screen *simScreen
	done   chan struct{}
}

func newAppRunner(t *testing.T, width, height int) *appRunner {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init(), "simulation screen init")
	sim.SetSize(width, height)

	return &appRunner{
		app:    tview.NewApplication().SetScreen(sim),
		screen: &simScreen{SimulationScreen: sim},
		done:   make(chan struct{}),
	}
}

// Start runs the event loop with root and returns once it handles updates.
func (r *appRunner) Start(root tview.Primitive) {
	r.app.SetRoot(root, true)
	go func() {
		defer close(r.done)
		_ = r.app.Run()
	}()

	ready := make(chan struct{})
	go r.app.QueueUpdate(func() { close(ready) })
	select {
	case <-ready:
	case <-time.After(time.Second):
	}
}

// Stop ends the event loop if it still runs. tview finalizes the screen.
func (r *appRunner) Stop() {
	if r.IsStopped() {
		return
	}
	r.app.Stop()
	select {
	case <-r.done:
	case <-time.After(time.Second):
	}
}

func (r *appRunner) IsStopped() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

func (r *appRunner) App() *tview.Application {
	return r.app
}

func (r *appRunner) Screen() *simScreen {
	return r.screen
}

// WaitForText redraws until text is on screen or timeout expires.
func (r *appRunner) WaitForText(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !r.IsStopped() {
			r.app.Draw()
		}
		if r.screen.ContainsText(text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(10 * time.Millisecond)
	}
}

type simScreen struct {
	tcell.SimulationScreen
}

func (s *simScreen) press(key tcell.Key) {
	s.InjectKey(key, 0, tcell.ModNone)
}

// lines returns the screen content row by row, blank cells as spaces.
func (s *simScreen) lines() []string {
	cells, width, height := s.GetContents()
	rows := make([]string, height)
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		for _, cell := range cells[y*width : (y+1)*width] {
			if len(cell.Runes) == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(cell.Runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

func (s *simScreen) ContainsText(text string) bool {
	return strings.Contains(strings.Join(s.lines(), "\n"), text)
}

func (s *simScreen) ContainsTextOnLine(y int, text string) bool {
	rows := s.lines()
	return y >= 0 && y < len(rows) && strings.Contains(rows[y], text)
}

// DumpScreen formats the screen for failure messages.
func (s *simScreen) DumpScreen() string {
	return "screen:\n" + strings.Join(s.lines(), "\n")
}
