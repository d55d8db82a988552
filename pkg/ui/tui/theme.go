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
	"github.com/dotslashplay/playit-wizard/pkg/helpers/syncutil"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme defines all colors used in the TUI. The *Name fields are tview
// color tag names matching the tcell colors.
type Theme struct {
	Name             string
	DisplayName      string
	BgColorName      string
	AccentColorName  string
	SecondaryColor   string
	SuccessColorName string
	WarningColorName string
	ErrorColorName   string

	PrimitiveBackgroundColor tcell.Color
	ContrastBackgroundColor  tcell.Color
	BorderColor              tcell.Color
	PrimaryTextColor         tcell.Color
	SecondaryTextColor       tcell.Color
	InverseTextColor         tcell.Color
	FieldFocusedBg           tcell.Color
	FieldUnfocusedBg         tcell.Color
}

// ThemeDefault is the dark blue/yellow theme.
var ThemeDefault = Theme{
	Name:        "default",
	DisplayName: "Default (Dark Blue)",

	PrimitiveBackgroundColor: tcell.ColorDarkBlue,
	ContrastBackgroundColor:  tcell.ColorBlue,
	BorderColor:              tcell.ColorLightYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorGray,
	InverseTextColor:         tcell.ColorDarkBlue,
	FieldFocusedBg:           tcell.ColorBlue,
	FieldUnfocusedBg:         tcell.ColorDarkBlue,

	BgColorName:      "darkblue",
	AccentColorName:  "yellow",
	SecondaryColor:   "gray",
	SuccessColorName: "green",
	WarningColorName: "yellow",
	ErrorColorName:   "red",
}

// ThemeHighContrast uses a black background with bright yellow.
var ThemeHighContrast = Theme{
	Name:        "high_contrast",
	DisplayName: "High Contrast",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x000000),
	ContrastBackgroundColor:  tcell.NewHexColor(0x000000),
	BorderColor:              tcell.ColorYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorWhite,
	InverseTextColor:         tcell.NewHexColor(0x000000),
	FieldFocusedBg:           tcell.ColorYellow,
	FieldUnfocusedBg:         tcell.NewHexColor(0x000000),

	BgColorName:      "#000000",
	AccentColorName:  "yellow",
	SecondaryColor:   "white",
	SuccessColorName: "lime",
	WarningColorName: "yellow",
	ErrorColorName:   "red",
}

// ThemeNord uses the Nord palette.
var ThemeNord = Theme{
	Name:        "nord",
	DisplayName: "Nord",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x2E3440),
	ContrastBackgroundColor:  tcell.NewHexColor(0x3B4252),
	BorderColor:              tcell.NewHexColor(0x88C0D0),
	PrimaryTextColor:         tcell.NewHexColor(0xECEFF4),
	SecondaryTextColor:       tcell.NewHexColor(0xD8DEE9),
	InverseTextColor:         tcell.NewHexColor(0x2E3440),
	FieldFocusedBg:           tcell.NewHexColor(0x3B4252),
	FieldUnfocusedBg:         tcell.NewHexColor(0x2E3440),

	BgColorName:      "#2e3440",
	AccentColorName:  "#88c0d0",
	SecondaryColor:   "#d8dee9",
	SuccessColorName: "#a3be8c",
	WarningColorName: "#ebcb8b",
	ErrorColorName:   "#bf616a",
}

// ThemeTerminal keeps the terminal's own colors, for setups where the
// setup script output must stay readable.
var ThemeTerminal = Theme{
	Name:        "terminal",
	DisplayName: "Terminal",

	PrimitiveBackgroundColor: tcell.ColorDefault,
	ContrastBackgroundColor:  tcell.ColorDefault,
	BorderColor:              tcell.ColorDefault,
	PrimaryTextColor:         tcell.ColorDefault,
	SecondaryTextColor:       tcell.ColorGray,
	InverseTextColor:         tcell.ColorBlack,
	FieldFocusedBg:           tcell.ColorGray,
	FieldUnfocusedBg:         tcell.ColorDefault,

	BgColorName:      "-",
	AccentColorName:  "-",
	SecondaryColor:   "gray",
	SuccessColorName: "green",
	WarningColorName: "yellow",
	ErrorColorName:   "red",
}

// AvailableThemes maps theme names to theme definitions.
var AvailableThemes = map[string]*Theme{
	"default":       &ThemeDefault,
	"high_contrast": &ThemeHighContrast,
	"nord":          &ThemeNord,
	"terminal":      &ThemeTerminal,
}

var (
	currentTheme = &ThemeDefault
	themeMu      syncutil.RWMutex
)

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the current theme by name.
// Returns false if the theme name is not found.
func SetCurrentTheme(name string) bool {
	theme, ok := AvailableThemes[name]
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
	ApplyTheme(theme)
	return true
}

// ApplyTheme applies the given theme to tview's global styles.
func ApplyTheme(theme *Theme) {
	tview.Styles.PrimitiveBackgroundColor = theme.PrimitiveBackgroundColor
	tview.Styles.ContrastBackgroundColor = theme.ContrastBackgroundColor
	tview.Styles.BorderColor = theme.BorderColor
	tview.Styles.TitleColor = theme.BorderColor
	tview.Styles.PrimaryTextColor = theme.PrimaryTextColor
	tview.Styles.SecondaryTextColor = theme.SecondaryTextColor
	tview.Styles.InverseTextColor = theme.InverseTextColor
}
