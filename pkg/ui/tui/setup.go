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
	"bytes"
	"io"

	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/dotslashplay/playit-wizard/pkg/installer"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	setupBack = iota
	setupPlay
)

const terminalMaxLines = 5000

// setupPage follows an installation: the output of every command in a
// terminal view and the current stage in the status line.
type setupPage struct {
	w        *Wizard
	frame    *PageFrame
	terminal *tview.TextView
	buttons  *ButtonBar
}

func newSetupPage(w *Wizard) *setupPage {
	p := &setupPage{w: w}

	p.terminal = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(terminalMaxLines).
		SetChangedFunc(func() { w.app.Draw() })
	p.terminal.SetBorder(true).SetTitle(" Output ")

	p.buttons = NewButtonBar().
		AddButtonWithHelp("Back", "Leave the installation page.", w.back).
		AddButtonWithHelp("Play", "Start the game and quit the wizard.", w.play)
	p.buttons.SetHelpCallback(func(text string) { p.frame.SetStatus(text) })
	p.buttons.SetOnWrap(func() { w.app.SetFocus(p.terminal) })

	p.frame = NewPageFrame(w.app).
		SetTitle(config.AppTitle).
		SetContent(p.terminal).
		SetButtonBar(p.buttons).
		SetOnEscape(w.back).
		SetHints("Tab: Navigate", "Up/Down: Scroll", "Ctrl+W: Wiki", "Ctrl+Q: Quit")
	p.buttons.SetOnUp(func() { w.app.SetFocus(p.terminal) })

	p.terminal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyTab, tcell.KeyBacktab:
			w.app.SetFocus(p.buttons)
			return nil
		}
		return event
	})

	return p
}

// begin clears the terminal, locks the buttons and switches to the page.
// The returned writer feeds the terminal and is safe to use from any
// goroutine.
func (p *setupPage) begin() io.Writer {
	p.terminal.Clear()
	p.buttons.SetButtonDisabled(setupBack, true)
	p.buttons.SetButtonDisabled(setupPlay, true)
	p.frame.SetTitle(config.AppTitle, p.w.game.Name, "Install")
	p.stageChanged(installer.Download)
	p.w.pages.SwitchToPage(PageSetup)
	p.w.app.SetFocus(p.terminal)
	return &crFilter{w: tview.ANSIWriter(p.terminal)}
}

func stageStatus(st installer.Stage) string {
	switch st {
	case installer.Download:
		return "Downloading the installation files..."
	case installer.Build:
		return "Installing the packages needed to build the game..."
	case installer.Setup:
		return "Building the game packages..."
	case installer.Finalize:
		return "Installing the game packages..."
	case installer.Done:
		return "The game is installed."
	default:
		return "The installation failed."
	}
}

func (p *setupPage) stageChanged(st installer.Stage) {
	t := CurrentTheme()
	switch st {
	case installer.Done:
		p.frame.SetStatus(colorize(t.SuccessColorName, stageStatus(st)))
	case installer.Failed:
		p.frame.SetStatus(colorize(t.ErrorColorName, stageStatus(st)))
	default:
		p.frame.SetStatus(colorize(t.AccentColorName, st.String()+": ") + stageStatus(st))
	}
}

// finish unlocks the buttons once the install is over. Play is only
// offered after a successful install.
func (p *setupPage) finish(outcome installer.Outcome) {
	p.w.stage = installer.Failed
	if outcome.OK() {
		p.w.stage = installer.Done
	}

	p.buttons.SetButtonDisabled(setupBack, false)
	p.buttons.SetButtonDisabled(setupPlay, !outcome.OK())

	if outcome.OK() {
		p.stageChanged(installer.Done)
		p.buttons.SetFocusedButton(setupPlay)
	} else {
		msg := "The installation failed at the " + outcome.Stage.String() + " stage"
		if outcome.Err != nil {
			msg += ": " + outcome.Err.Error()
		}
		p.frame.SetStatus(colorize(CurrentTheme().ErrorColorName, msg))
		p.buttons.SetFocusedButton(setupBack)
	}
	p.w.app.SetFocus(p.buttons)
}

// crFilter drops carriage returns, which the terminal view would render
// as-is.
type crFilter struct {
	w io.Writer
}

func (f *crFilter) Write(b []byte) (int, error) {
	if bytes.IndexByte(b, '\r') < 0 {
		return f.w.Write(b) //nolint:wrapcheck // pass-through
	}
	if _, err := f.w.Write(bytes.ReplaceAll(b, []byte{'\r'}, nil)); err != nil {
		return 0, err //nolint:wrapcheck // pass-through
	}
	return len(b), nil
}
