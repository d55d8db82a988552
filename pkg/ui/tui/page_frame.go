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

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PageFrame provides a consistent page structure with:
// - Breadcrumb title in top border
// - Main content area
// - Status line
// - ButtonBar footer
// - Keyboard hints in bottom border
type PageFrame struct {
	content tview.Primitive
	*tview.Box
	status    *tview.TextView
	buttonBar *ButtonBar
	app       *tview.Application
	onEscape  func()
	hints     []rune
}

var defaultHints = []string{"Tab: Navigate", "Enter: Select", "Ctrl+Q: Quit"}

// hintRunes joins hint segments with a vertical line, using tcell runes for
// terminal compatibility.
func hintRunes(segments []string) []rune {
	var out []rune
	for i, s := range segments {
		if i > 0 {
			out = append(out, ' ', tcell.RuneVLine, ' ')
		}
		out = append(out, []rune(s)...)
	}
	return out
}

// NewPageFrame creates a new page frame with the given application reference.
func NewPageFrame(app *tview.Application) *PageFrame {
	pf := &PageFrame{
		Box:   tview.NewBox(),
		app:   app,
		hints: hintRunes(defaultHints),
	}
	pf.SetBorder(true)

	pf.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	return pf
}

// SetTitle sets the page title using breadcrumb-style path segments.
// Example: SetTitle("./play.it", "The Witcher") displays " ./play.it > The Witcher "
func (pf *PageFrame) SetTitle(path ...string) *PageFrame {
	title := " " + strings.Join(path, " > ") + " "
	pf.Box.SetTitle(title)
	return pf
}

// SetContent sets the main content primitive.
func (pf *PageFrame) SetContent(content tview.Primitive) *PageFrame {
	pf.content = content
	return pf
}

// SetStatus sets the status line displayed above the button bar. It accepts
// tview color tags.
func (pf *PageFrame) SetStatus(text string) *PageFrame {
	pf.status.SetText(text)
	return pf
}

// GetStatus returns the status line text without color tags.
func (pf *PageFrame) GetStatus() string {
	return pf.status.GetText(true)
}

// SetHints replaces the keyboard hints drawn in the bottom border.
func (pf *PageFrame) SetHints(segments ...string) *PageFrame {
	pf.hints = hintRunes(segments)
	return pf
}

// SetButtonBar sets the button bar at the bottom of the frame.
// Up returns focus to the content.
func (pf *PageFrame) SetButtonBar(bar *ButtonBar) *PageFrame {
	pf.buttonBar = bar
	bar.SetOnUp(pf.FocusContent)
	return pf
}

// SetOnEscape sets the callback when ESC is pressed.
func (pf *PageFrame) SetOnEscape(fn func()) *PageFrame {
	pf.onEscape = fn
	if pf.buttonBar != nil {
		pf.buttonBar.SetupNavigation(fn)
	}
	return pf
}

// Draw renders the page frame with bottom border hints.
func (pf *PageFrame) Draw(screen tcell.Screen) {
	pf.DrawForSubclass(screen, pf)

	x, y, width, height := pf.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	statusHeight := 1
	buttonHeight := 0
	if pf.buttonBar != nil {
		buttonHeight = 1
	}

	contentHeight := max(height-statusHeight-buttonHeight, 1)

	if pf.content != nil {
		pf.content.SetRect(x, y, width, contentHeight)
		pf.content.Draw(screen)
	}

	pf.status.SetRect(x, y+contentHeight, width, statusHeight)
	pf.status.Draw(screen)

	if pf.buttonBar != nil {
		pf.buttonBar.SetRect(x, y+contentHeight+statusHeight, width, buttonHeight)
		pf.buttonBar.Draw(screen)
	}

	pf.drawBottomHints(screen)
}

// drawBottomHints renders the hints text in the bottom border.
func (pf *PageFrame) drawBottomHints(screen tcell.Screen) {
	outerX, outerY, outerWidth, outerHeight := pf.GetRect()
	if outerWidth <= 4 || outerHeight <= 2 || len(pf.hints) == 0 {
		return
	}

	bottomY := outerY + outerHeight - 1

	hints := pf.hints
	availableWidth := outerWidth - 4 // corners and padding
	if len(hints) > availableWidth {
		hints = hints[:availableWidth]
	}

	startX := outerX + (outerWidth-len(hints))/2

	t := CurrentTheme()
	style := tcell.StyleDefault.
		Foreground(t.BorderColor).
		Background(t.PrimitiveBackgroundColor)

	for i := startX - 1; i < startX+len(hints)+1; i++ {
		screen.SetContent(i, bottomY, ' ', nil, style)
	}
	for i, r := range hints {
		screen.SetContent(startX+i, bottomY, r, nil, style)
	}
}

// Focus implements tview.Primitive.
func (pf *PageFrame) Focus(delegate func(p tview.Primitive)) {
	if pf.content != nil {
		delegate(pf.content)
	} else if pf.buttonBar != nil {
		delegate(pf.buttonBar)
	}
}

// HasFocus implements tview.Primitive.
func (pf *PageFrame) HasFocus() bool {
	if pf.content != nil && pf.content.HasFocus() {
		return true
	}
	if pf.buttonBar != nil && pf.buttonBar.HasFocus() {
		return true
	}
	return false
}

// InputHandler implements tview.Primitive.
func (pf *PageFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return pf.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if event.Key() == tcell.KeyEscape && pf.onEscape != nil {
			pf.onEscape()
			return
		}

		if pf.content != nil && pf.content.HasFocus() {
			if handler := pf.content.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
			return
		}

		if pf.buttonBar != nil && pf.buttonBar.HasFocus() {
			if handler := pf.buttonBar.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
			return
		}
	})
}

// MouseHandler implements tview.Primitive.
func (pf *PageFrame) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return pf.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if pf.buttonBar != nil {
			bx, by, bw, bh := pf.buttonBar.GetRect()
			mx, my := event.Position()
			if mx >= bx && mx < bx+bw && my >= by && my < by+bh {
				return pf.buttonBar.MouseHandler()(action, event, setFocus)
			}
		}

		if pf.content != nil {
			if handler := pf.content.MouseHandler(); handler != nil {
				return handler(action, event, setFocus)
			}
		}

		return false, nil
	})
}

// FocusContent sets focus to the content primitive.
func (pf *PageFrame) FocusContent() {
	if pf.content != nil && pf.app != nil {
		pf.app.SetFocus(pf.content)
	}
}
