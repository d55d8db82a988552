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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ButtonBar is a horizontal bar of buttons with arrow key navigation.
// Disabled buttons are drawn dimmed and skipped by navigation.
type ButtonBar struct {
	*tview.Box
	onEscape     func()
	onUp         func()
	onWrap       func()
	helpCallback func(string)
	buttons      []*tview.Button
	helpTexts    []string
	disabled     []bool
	focusedIndex int
}

// NewButtonBar creates a new button bar.
func NewButtonBar() *ButtonBar {
	return &ButtonBar{
		Box: tview.NewBox(),
	}
}

// AddButton adds a button to the bar.
func (bb *ButtonBar) AddButton(label string, action func()) *ButtonBar {
	return bb.AddButtonWithHelp(label, "", action)
}

// AddButtonWithHelp adds a button with associated help text.
func (bb *ButtonBar) AddButtonWithHelp(label, helpText string, action func()) *ButtonBar {
	btn := tview.NewButton(label).SetSelectedFunc(action)
	bb.buttons = append(bb.buttons, btn)
	bb.helpTexts = append(bb.helpTexts, helpText)
	bb.disabled = append(bb.disabled, false)
	return bb
}

// SetHelpCallback sets the callback for when button focus changes.
func (bb *ButtonBar) SetHelpCallback(fn func(string)) *ButtonBar {
	bb.helpCallback = fn
	return bb
}

func (bb *ButtonBar) triggerHelp() {
	if bb.helpCallback != nil && bb.focusedIndex < len(bb.helpTexts) {
		bb.helpCallback(bb.helpTexts[bb.focusedIndex])
	}
}

// SetupNavigation sets up the escape callback.
func (bb *ButtonBar) SetupNavigation(onEscape func()) *ButtonBar {
	bb.onEscape = onEscape
	return bb
}

// SetOnUp sets the callback for when Up is pressed (to navigate back to content).
func (bb *ButtonBar) SetOnUp(fn func()) *ButtonBar {
	bb.onUp = fn
	return bb
}

// SetOnWrap sets the callback for when Tab leaves the last button or
// Backtab leaves the first one.
func (bb *ButtonBar) SetOnWrap(fn func()) *ButtonBar {
	bb.onWrap = fn
	return bb
}

// SetButtonDisabled enables or disables the button at index. The focus
// moves off a button that becomes disabled.
func (bb *ButtonBar) SetButtonDisabled(index int, disabled bool) {
	if index < 0 || index >= len(bb.buttons) {
		return
	}
	bb.disabled[index] = disabled
	bb.buttons[index].SetDisabled(disabled)
	if disabled && index == bb.focusedIndex {
		bb.move(1)
	}
}

// IsButtonDisabled reports whether the button at index is disabled.
func (bb *ButtonBar) IsButtonDisabled(index int) bool {
	if index < 0 || index >= len(bb.buttons) {
		return true
	}
	return bb.disabled[index]
}

// SetFocusedButton moves the focus highlight to the button at index.
func (bb *ButtonBar) SetFocusedButton(index int) {
	if index >= 0 && index < len(bb.buttons) && !bb.disabled[index] {
		bb.focusedIndex = index
		bb.triggerHelp()
	}
}

// FocusedButton returns the index of the highlighted button.
func (bb *ButtonBar) FocusedButton() int {
	return bb.focusedIndex
}

// move shifts the highlight by step to the next enabled button, wrapping
// around. It reports false when every other button is disabled.
func (bb *ButtonBar) move(step int) bool {
	n := len(bb.buttons)
	for i := 1; i < n; i++ {
		idx := ((bb.focusedIndex+step*i)%n + n) % n
		if !bb.disabled[idx] {
			bb.focusedIndex = idx
			bb.triggerHelp()
			return true
		}
	}
	return false
}

func (bb *ButtonBar) isEdge(step int) bool {
	n := len(bb.buttons)
	for i := bb.focusedIndex + step; i >= 0 && i < n; i += step {
		if !bb.disabled[i] {
			return false
		}
	}
	return true
}

// Draw renders the button bar.
func (bb *ButtonBar) Draw(screen tcell.Screen) {
	bb.DrawForSubclass(screen, bb)

	x, y, width, _ := bb.GetInnerRect()
	if len(bb.buttons) == 0 || width <= 0 {
		return
	}

	// distribute evenly with spacing
	totalButtons := len(bb.buttons)
	spacing := 2
	totalSpacing := spacing * (totalButtons - 1)
	buttonWidth := max((width-totalSpacing)/totalButtons, 6)

	hasFocus := bb.HasFocus()

	currentX := x
	for i, btn := range bb.buttons {
		btnWidth := buttonWidth
		if currentX+btnWidth > x+width {
			btnWidth = x + width - currentX
		}
		if btnWidth <= 0 {
			break
		}

		btn.SetRect(currentX, y, btnWidth, 1)

		if hasFocus && i == bb.focusedIndex && !bb.disabled[i] {
			btn.Focus(func(_ tview.Primitive) {})
		} else {
			btn.Blur()
		}

		btn.Draw(screen)
		currentX += btnWidth + spacing
	}
}

// InputHandler handles keyboard input for the button bar.
func (bb *ButtonBar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return bb.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if len(bb.buttons) == 0 {
			return
		}

		switch event.Key() {
		case tcell.KeyLeft:
			bb.move(-1)
		case tcell.KeyRight:
			bb.move(1)
		case tcell.KeyBacktab:
			if bb.onWrap != nil && bb.isEdge(-1) {
				bb.onWrap()
			} else {
				bb.move(-1)
			}
		case tcell.KeyTab:
			if bb.onWrap != nil && bb.isEdge(1) {
				bb.onWrap()
			} else {
				bb.move(1)
			}
		case tcell.KeyUp, tcell.KeyDown:
			if bb.onUp != nil {
				bb.onUp()
			}
		case tcell.KeyEnter:
			bb.press(bb.focusedIndex)
		case tcell.KeyEscape:
			if bb.onEscape != nil {
				bb.onEscape()
			}
		default:
			// Ignore other keys
		}
	})
}

// press activates the button at index unless it is disabled.
func (bb *ButtonBar) press(index int) {
	if index < 0 || index >= len(bb.buttons) || bb.disabled[index] {
		return
	}
	handler := bb.buttons[index].InputHandler()
	if handler != nil {
		handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})
	}
}

// MouseHandler handles mouse input for the button bar.
func (bb *ButtonBar) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return bb.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick {
			return false, nil
		}
		for i, btn := range bb.buttons {
			if !btn.InRect(event.Position()) {
				continue
			}
			if bb.disabled[i] {
				return true, nil
			}
			bb.focusedIndex = i
			bb.triggerHelp()
			setFocus(bb)
			bb.press(i)
			return true, nil
		}
		return false, nil
	})
}

// Focus is called when the button bar receives focus.
func (bb *ButtonBar) Focus(delegate func(p tview.Primitive)) {
	if len(bb.buttons) > 0 {
		if bb.disabled[bb.focusedIndex] {
			bb.move(1)
		}
		bb.Box.Focus(delegate)
		bb.triggerHelp()
	}
}
