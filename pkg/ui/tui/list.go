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
	"fmt"

	"github.com/dotslashplay/playit-wizard/pkg/catalog"
	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/dotslashplay/playit-wizard/pkg/thumbnails"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// listPage is the catalog browser: a search field, the matching games and
// a preview of the highlighted one.
type listPage struct {
	w       *Wizard
	frame   *PageFrame
	input   *tview.InputField
	games   *tview.List
	image   *tview.Image
	caption *tview.TextView
	buttons *ButtonBar
	// thumbs maps list indexes to cached thumbnail paths.
	thumbs    map[int]string
	searching bool
}

func newListPage(w *Wizard) *listPage {
	p := &listPage{
		w:      w,
		thumbs: make(map[int]string),
	}

	p.input = tview.NewInputField().
		SetLabel("Search ").
		SetPlaceholder("game name, empty for every game")
	p.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.search(p.input.GetText())
		}
	})

	p.games = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetWrapAround(false)
	p.games.SetChangedFunc(func(index int, _, _ string, _ rune) {
		p.preview(index)
	})
	p.games.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		w.openGame(index)
	})

	p.image = tview.NewImage()
	p.caption = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetWrap(true)
	previewCol := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.image, 0, 1, false).
		AddItem(p.caption, 2, 0, false)
	previewCol.SetBorder(true).SetTitle(" Preview ")

	body := tview.NewFlex().
		AddItem(p.games, 0, 3, false).
		AddItem(previewCol, 0, 2, false)

	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 0, true).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, false)

	p.buttons = NewButtonBar().
		AddButtonWithHelp("Wiki", "Open the ./play.it wiki.", func() {
			w.openURL(w.wiki.StartURL())
		}).
		AddButtonWithHelp("Quit", "Exit the wizard.", w.app.Stop)
	p.buttons.SetHelpCallback(func(text string) { p.frame.SetStatus(text) })
	p.buttons.SetOnWrap(func() { w.app.SetFocus(p.input) })

	p.frame = NewPageFrame(w.app).
		SetTitle(config.AppTitle).
		SetContent(content).
		SetButtonBar(p.buttons).
		SetHints("Tab: Navigate", "Enter: Select", "Ctrl+W: Wiki", "Ctrl+Q: Quit")
	p.buttons.SetOnUp(func() { w.app.SetFocus(p.games) })

	p.input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyTab, tcell.KeyDown:
			if p.games.GetItemCount() > 0 {
				w.app.SetFocus(p.games)
			} else {
				w.app.SetFocus(p.buttons)
			}
			return nil
		case tcell.KeyBacktab:
			w.app.SetFocus(p.buttons)
			return nil
		}
		return event
	})
	p.games.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			w.app.SetFocus(p.buttons)
			return nil
		case event.Key() == tcell.KeyBacktab,
			event.Key() == tcell.KeyUp && p.games.GetCurrentItem() == 0:
			w.app.SetFocus(p.input)
			return nil
		case event.Key() == tcell.KeyDown && p.games.GetCurrentItem() == p.games.GetItemCount()-1:
			w.app.SetFocus(p.buttons)
			return nil
		}
		return event
	})

	return p
}

func (p *listPage) focus() {
	p.frame.SetTitle(config.AppTitle)
	if p.games.GetItemCount() > 0 {
		p.w.app.SetFocus(p.games)
		return
	}
	p.w.app.SetFocus(p.input)
}

// search queries the catalog in the background. An empty query lists every
// game.
func (p *listPage) search(query string) {
	if p.searching {
		return
	}
	p.searching = true
	p.frame.SetStatus("Searching...")

	go func() {
		ctx, cancel := requestContext()
		defer cancel()
		games, err := p.w.deps.Catalog.Search(ctx, query)
		p.w.app.QueueUpdateDraw(func() {
			p.searching = false
			if err != nil {
				log.Error().Err(err).Str("query", query).Msg("error searching catalog")
				p.frame.SetStatus(colorize(CurrentTheme().ErrorColorName, "Search failed: "+err.Error()))
				return
			}
			p.setGames(games)
		})
	}()
}

func (p *listPage) setGames(games []catalog.Game) {
	p.w.games = games
	p.thumbs = make(map[int]string)

	reqs := make([]thumbnails.Request, len(games))
	for i, g := range games {
		reqs[i] = thumbnails.Request{Slug: g.Slug, Image: g.Image}
	}
	p.w.thumbs.Reset(reqs)

	p.games.Clear()
	for _, g := range games {
		p.games.AddItem(tview.Escape(g.Name), g.Slug, 0, nil)
	}

	switch len(games) {
	case 0:
		p.frame.SetStatus("No game found.")
		p.preview(-1)
	case 1:
		p.frame.SetStatus("1 game.")
	default:
		p.frame.SetStatus(fmt.Sprintf("%d games.", len(games)))
	}

	if p.games.GetItemCount() > 0 {
		p.w.app.SetFocus(p.games)
	}
}

// preview shows the thumbnail and identifiers of the game at index.
func (p *listPage) preview(index int) {
	if index < 0 || index >= len(p.w.games) {
		p.image.SetImage(nil)
		p.caption.SetText("")
		return
	}
	g := p.w.games[index]
	p.caption.SetText(tview.Escape(g.Name) + "\n" + colorize(CurrentTheme().SecondaryColor, g.Slug))

	path, ok := p.thumbs[index]
	if !ok {
		p.image.SetImage(nil)
		return
	}
	img, err := loadThumbnail(p.w.deps.Fs, path)
	if err != nil {
		log.Warn().Err(err).Str("slug", g.Slug).Msg("error loading thumbnail")
		p.image.SetImage(nil)
		return
	}
	p.image.SetImage(img)
}

// thumbnailReady records a fetched thumbnail unless the list changed since
// it was requested.
func (p *listPage) thumbnailReady(res thumbnails.Result) {
	if !p.w.thumbs.Resolve(res) {
		return
	}
	if !res.OK {
		return
	}
	p.thumbs[res.Index] = res.Path
	if p.games.GetCurrentItem() == res.Index {
		p.preview(res.Index)
	}
}
