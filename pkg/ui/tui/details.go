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

	"github.com/dotslashplay/playit-wizard/pkg/archives"
	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	detailsBack = iota
	detailsWiki
	detailsInstall
)

type nodeRef struct {
	group   int
	archive int // -1 for the group row
}

// detailsPage lets the user pick the install folder and the group of files
// to install, showing which files are present, downloadable or missing.
type detailsPage struct {
	w       *Wizard
	frame   *PageFrame
	input   *tview.InputField
	view    *tview.TreeView
	buttons *ButtonBar
	watcher *archives.Watcher
	groups  []*tview.TreeNode
	files   [][]*tview.TreeNode
	valid   bool
}

func statusMarker(s archives.Status) string {
	t := CurrentTheme()
	switch s {
	case archives.Present:
		return colorize(t.SuccessColorName, "✔")
	case archives.Downloadable:
		return colorize(t.WarningColorName, "⇩")
	default:
		return colorize(t.ErrorColorName, "✘")
	}
}

func newDetailsPage(w *Wizard) *detailsPage {
	p := &detailsPage{w: w}

	p.input = tview.NewInputField().
		SetLabel("Folder ").
		SetText(w.cfg.InstallFolder())
	p.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.setFolder()
		}
	})

	p.view = tview.NewTreeView().
		SetRoot(tview.NewTreeNode("")).
		SetTopLevel(1)
	p.view.SetChangedFunc(p.highlighted)
	p.view.SetSelectedFunc(p.activated)

	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(p.view, 0, 1, true)

	p.buttons = NewButtonBar().
		AddButtonWithHelp("Back", "Return to the game list.", w.showList).
		AddButtonWithHelp("Wiki", "Open the wiki page of this game.", func() {
			w.openURL(w.wiki.GameURL(w.game.Slug))
		}).
		AddButtonWithHelp("Install", "Download the files and install the game.", w.startInstall)
	p.buttons.SetHelpCallback(func(text string) { p.frame.SetStatus(text) })
	p.buttons.SetOnWrap(func() { w.app.SetFocus(p.input) })

	p.frame = NewPageFrame(w.app).
		SetTitle(config.AppTitle).
		SetContent(content).
		SetButtonBar(p.buttons).
		SetOnEscape(w.showList).
		SetHints("Tab: Navigate", "Enter: Expand/Open", "Ctrl+W: Wiki", "Esc: Back")
	p.buttons.SetOnUp(func() { w.app.SetFocus(p.view) })

	p.input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyTab, tcell.KeyDown:
			w.app.SetFocus(p.view)
			return nil
		case tcell.KeyBacktab:
			w.app.SetFocus(p.buttons)
			return nil
		}
		return event
	})
	p.view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyTab:
			w.app.SetFocus(p.buttons)
			return nil
		case tcell.KeyBacktab:
			w.app.SetFocus(p.input)
			return nil
		}
		return event
	})

	return p
}

// folder returns the install folder typed by the user.
func (p *detailsPage) folder() string {
	if dir := strings.TrimSpace(p.input.GetText()); dir != "" {
		return dir
	}
	return p.w.cfg.InstallFolder()
}

// show rebuilds the page for the current game and switches to it.
func (p *detailsPage) show() {
	p.frame.SetTitle(config.AppTitle, p.w.game.Name)
	p.build()
	p.rescan()
	p.watch()
	p.w.pages.SwitchToPage(PageDetails)
	p.w.app.SetFocus(p.view)
}

func (p *detailsPage) build() {
	root := p.view.GetRoot()
	root.ClearChildren()
	p.groups = nil
	p.files = nil

	tree := p.w.tree
	for gi, g := range tree.Groups {
		gn := tview.NewTreeNode("").
			SetReference(nodeRef{group: gi, archive: -1}).
			SetExpanded(len(tree.Groups) == 1)
		var files []*tview.TreeNode
		for ai := range g.Archives {
			fn := tview.NewTreeNode("").
				SetReference(nodeRef{group: gi, archive: ai}).
				SetSelectable(true)
			gn.AddChild(fn)
			files = append(files, fn)
		}
		root.AddChild(gn)
		p.groups = append(p.groups, gn)
		p.files = append(p.files, files)
	}

	switch {
	case tree.Selected() != nil:
		p.view.SetCurrentNode(p.groups[tree.SelectedIndex()])
	case len(p.groups) > 0:
		p.view.SetCurrentNode(p.groups[0])
	}
}

// rescan checks the install folder again and refreshes every marker.
func (p *detailsPage) rescan() {
	tree := p.w.tree
	if tree == nil {
		return
	}

	content, ok := archives.ScanFolder(p.w.deps.Fs, p.folder())
	p.valid = ok
	tree.Refresh(content)

	t := CurrentTheme()
	if ok {
		p.input.SetLabel("Folder ")
	} else {
		p.input.SetLabel("[" + t.ErrorColorName + "]Folder[-] ")
	}

	for gi, g := range tree.Groups {
		p.groups[gi].SetText(statusMarker(g.Status) + " " + tview.Escape(g.Name()))
		for ai, a := range g.Archives {
			text := statusMarker(a.Status) + " " + tview.Escape(a.Name)
			if !a.Required {
				text += colorize(t.SecondaryColor, " (optional)")
			}
			if a.URL != "" {
				text += " " + colorize(t.AccentColorName, "↗")
			}
			p.files[gi][ai].SetText(text)
		}
	}
	p.updateInstall()
}

func (p *detailsPage) updateInstall() {
	tree := p.w.tree
	canApply := tree != nil && tree.CanApply()
	p.buttons.SetButtonDisabled(detailsInstall, !canApply)

	t := CurrentTheme()
	switch {
	case !p.valid:
		p.frame.SetStatus(colorize(t.ErrorColorName, "Not a folder: "+p.folder()))
	case tree == nil || tree.Selected() == nil:
		p.frame.SetStatus("Choose the set of files to install.")
	case !canApply:
		p.frame.SetStatus(colorize(t.ErrorColorName,
			"Some files are missing. Put them in the folder."))
	default:
		p.frame.SetStatus(colorize(t.SuccessColorName, "Ready to install."))
	}
}

// highlighted selects the group of the node under the cursor.
func (p *detailsPage) highlighted(node *tview.TreeNode) {
	ref, ok := node.GetReference().(nodeRef)
	if !ok || p.w.tree == nil {
		return
	}
	p.w.tree.Select(ref.group)
	p.updateInstall()
}

// activated toggles a group, or opens the store page of a file.
func (p *detailsPage) activated(node *tview.TreeNode) {
	ref, ok := node.GetReference().(nodeRef)
	if !ok || p.w.tree == nil {
		return
	}
	p.w.tree.Select(ref.group)
	p.updateInstall()

	if ref.archive < 0 {
		node.SetExpanded(!node.IsExpanded())
		return
	}
	a := p.w.tree.Groups[ref.group].Archives[ref.archive]
	if a.URL != "" {
		p.w.openURL(a.URL)
	}
}

// setFolder applies the folder typed by the user and remembers it.
func (p *detailsPage) setFolder() {
	p.w.cfg.SetInstallFolder(p.folder())
	if err := p.w.cfg.Save(); err != nil {
		log.Warn().Err(err).Msg("error saving install folder")
	}
	p.rescan()
	p.watch()
	p.w.app.SetFocus(p.view)
}

// watch rescans automatically while files land in the install folder.
func (p *detailsPage) watch() {
	p.unwatch()
	if !p.valid {
		return
	}
	var watcher *archives.Watcher
	watcher, err := archives.Watch(p.folder(), func() {
		p.w.app.QueueUpdateDraw(func() {
			// The page may have moved on while this change was queued.
			if p.watcher == watcher {
				p.rescan()
			}
		})
	})
	if err != nil {
		log.Warn().Err(err).Msg("error watching install folder")
		return
	}
	p.watcher = watcher
}

func (p *detailsPage) unwatch() {
	if p.watcher != nil {
		p.watcher.Stop()
		p.watcher = nil
	}
}
