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

// Package tui is the terminal front end of the wizard: browse the catalog,
// pick the installation files, then follow the install in a terminal view.
package tui

import (
	"context"

	"github.com/dotslashplay/playit-wizard/pkg/archives"
	"github.com/dotslashplay/playit-wizard/pkg/catalog"
	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/dotslashplay/playit-wizard/pkg/helpers"
	"github.com/dotslashplay/playit-wizard/pkg/installer"
	"github.com/dotslashplay/playit-wizard/pkg/system"
	"github.com/dotslashplay/playit-wizard/pkg/thumbnails"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	PageList    = "list"
	PageDetails = "details"
	PageSetup   = "setup"
	PageModal   = "modal"
)

// Deps are the services the wizard talks to.
type Deps struct {
	Catalog *catalog.Client
	Host    *system.Host
	Runner  installer.Runner
	Fs      afero.Fs
	// Thumbnails is nil when previews are disabled.
	Thumbnails *thumbnails.Fetcher
	// OpenURL defaults to helpers.OpenBrowser.
	OpenURL func(string) error
}

// Wizard holds the state shared by the three pages. It is only touched
// from the tview event loop; background work reports back through
// QueueUpdateDraw.
type Wizard struct {
	cfg     *config.Instance
	app     *tview.Application
	pages   *tview.Pages
	deps    Deps
	wiki    catalog.Wiki
	list    *listPage
	details *detailsPage
	setup   *setupPage
	thumbs  *thumbnails.Queue
	tree    *archives.Tree
	game    catalog.Game
	games   []catalog.Game
	stage   installer.Stage
	started bool
}

// NewWizard builds every page of the wizard into app.
func NewWizard(cfg *config.Instance, app *tview.Application, deps Deps) *Wizard {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.OpenURL == nil {
		deps.OpenURL = helpers.OpenBrowser
	}

	lang := cfg.Language()
	if lang == "" {
		lang = catalog.DetectLanguage()
	}

	w := &Wizard{
		cfg:    cfg,
		app:    app,
		pages:  tview.NewPages(),
		deps:   deps,
		wiki:   catalog.Wiki{Base: cfg.WikiURL(), Language: lang},
		thumbs: &thumbnails.Queue{},
		stage:  installer.Done,
	}

	w.list = newListPage(w)
	w.details = newDetailsPage(w)
	w.setup = newSetupPage(w)

	w.pages.AddPage(PageSetup, w.setup.frame, true, false)
	w.pages.AddPage(PageDetails, w.details.frame, true, false)
	w.pages.AddPage(PageList, w.list.frame, true, true)

	app.SetInputCapture(w.globalKeys)
	return w
}

// Root is the primitive to hand to tview.Application.SetRoot.
func (w *Wizard) Root() tview.Primitive {
	return w.pages
}

// running reports whether an install process may be active.
func (w *Wizard) running() bool {
	return w.started && w.stage.Running()
}

// canQuit reports whether Ctrl+Q may stop the wizard. The setup page only
// lets go once the game is installed; after a failure the user goes back
// first.
func (w *Wizard) canQuit() bool {
	return !w.started || w.stage == installer.Done
}

func (w *Wizard) globalKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() { //nolint:exhaustive
	case tcell.KeyCtrlQ:
		if !w.canQuit() {
			log.Info().Str("stage", w.stage.String()).Msg("quit ignored on the setup page")
			return nil
		}
		w.app.Stop()
		return nil
	case tcell.KeyCtrlW:
		name, _ := w.pages.GetFrontPage()
		if name == PageList {
			w.openURL(w.wiki.StartURL())
		} else if w.game.Slug != "" {
			w.openURL(w.wiki.GameURL(w.game.Slug))
		}
		return nil
	}
	return event
}

func (w *Wizard) openURL(url string) {
	if err := w.deps.OpenURL(url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("error opening browser")
		w.showError("Could not open the browser:\n" + err.Error())
	}
}

// showError displays a modal over the current page. Focus returns to the
// page when it is dismissed.
func (w *Wizard) showError(message string) {
	front, _ := w.pages.GetFrontPage()
	modal := genericModal(message, "Error", func(int, string) {
		w.pages.RemovePage(PageModal)
		w.pages.SwitchToPage(front)
	}, true)
	w.pages.AddPage(PageModal, modal, true, true)
	w.app.SetFocus(modal)
}

// showList returns to the game list.
func (w *Wizard) showList() {
	w.details.unwatch()
	w.pages.SwitchToPage(PageList)
	w.list.focus()
}

// openGame loads the archive tree of the game at index i and switches to
// the details page.
func (w *Wizard) openGame(i int) {
	if i < 0 || i >= len(w.games) {
		return
	}
	game := w.games[i]
	w.list.frame.SetStatus("Loading " + tview.Escape(game.Name) + "...")

	go func() {
		ctx, cancel := requestContext()
		defer cancel()
		tree, err := w.deps.Catalog.Show(ctx, game.ID)
		w.app.QueueUpdateDraw(func() {
			if err != nil {
				log.Error().Err(err).Int("id", game.ID).Msg("error loading game")
				w.list.frame.SetStatus(colorize(CurrentTheme().ErrorColorName, "Could not load "+game.Name))
				w.showError("Could not load the files of " + game.Name + ":\n" + err.Error())
				return
			}
			w.list.frame.SetStatus("")
			w.game = game
			w.tree = tree
			w.details.show()
		})
	}()
}

// startInstall runs the installation of the selected group in the
// background, streaming the output to the setup page.
func (w *Wizard) startInstall() {
	if w.tree == nil || !w.tree.CanApply() || w.running() {
		return
	}
	w.details.unwatch()

	out := w.setup.begin()
	seq := &installer.Sequencer{
		Tree:   w.tree,
		Host:   w.deps.Host,
		Runner: w.deps.Runner,
		Fs:     w.deps.Fs,
		Folder: w.details.folder(),
		Script: w.cfg.SetupScript(),
		Output: out,
		OnStage: func(st installer.Stage) {
			w.app.QueueUpdateDraw(func() { w.setStage(st) })
		},
	}
	w.started = true
	w.stage = installer.Download

	go func() {
		outcome := seq.Run(context.Background())
		w.app.QueueUpdateDraw(func() { w.setup.finish(outcome) })
	}()
}

func (w *Wizard) setStage(st installer.Stage) {
	w.stage = st
	w.setup.stageChanged(st)
}

// back leaves the setup page: to the list after a successful install, to
// the details page otherwise.
func (w *Wizard) back() {
	if w.running() {
		return
	}
	w.started = false
	if w.stage == installer.Done {
		w.showList()
		return
	}
	w.details.show()
}

// play launches the installed game and quits.
func (w *Wizard) play() {
	if w.stage != installer.Done || w.game.Slug == "" {
		return
	}
	log.Info().Str("slug", w.game.Slug).Msg("launching game")
	if err := w.deps.Host.Exec.Start(context.Background(), w.game.Slug); err != nil {
		log.Error().Err(err).Msg("error launching game")
		w.showError("Could not launch " + w.game.Name + ":\n" + err.Error())
		return
	}
	w.app.Stop()
}

// BuildMain creates the application with the wizard as root.
func BuildMain(cfg *config.Instance, deps Deps) (*tview.Application, *Wizard) {
	tuiCfg := config.GetTUIConfig()
	if !SetCurrentTheme(tuiCfg.Theme) {
		log.Warn().Str("theme", tuiCfg.Theme).Msg("unknown theme, using default")
		ApplyTheme(&ThemeDefault)
	}

	app := tview.NewApplication()
	app.EnableMouse(tuiCfg.Mouse)
	w := NewWizard(cfg, app, deps)
	app.SetRoot(w.Root(), true)
	return app, w
}

// Run shows the wizard until the user quits or ctx is cancelled. The
// thumbnail fetcher runs for the lifetime of the application.
func Run(ctx context.Context, cfg *config.Instance, deps Deps) error {
	app, w := BuildMain(cfg, deps)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if deps.Thumbnails != nil {
		w.startThumbnails(ctx, deps.Thumbnails)
	}
	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	w.list.search("")
	if err := app.Run(); err != nil {
		return err //nolint:wrapcheck // tview errors are terminal setup failures
	}
	return nil
}

// startThumbnails wires the fetcher to the list page.
func (w *Wizard) startThumbnails(ctx context.Context, f *thumbnails.Fetcher) {
	f.Source = w.thumbs
	f.Deliver = func(res thumbnails.Result) {
		w.app.QueueUpdateDraw(func() { w.list.thumbnailReady(res) })
	}
	go f.Run(ctx)
}
