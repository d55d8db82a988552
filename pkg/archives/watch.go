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

package archives

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// WatchDebounce groups bursts of events, such as a download writing its
// file, into one notification.
const WatchDebounce = 200 * time.Millisecond

// Watcher reports changes to the entries of an install folder.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	// notifying is set while an onChange goroutine runs, again when a burst
	// ended after that goroutine started.
	notifying atomic.Bool
	again     atomic.Bool
}

// Watch starts watching dir. onChange is called from its own goroutine
// after each burst of changes, never more than one at a time. A burst that
// ends while a call is running triggers one more call after it.
func Watch(dir string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	log.Debug().Str("dir", dir).Msg("watching install folder")
	return w, nil
}

// Stop ends the watch and waits for the event loop to exit. It does not wait
// for an onChange call in flight, so it may be called from the goroutine
// that call is waiting on. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		_ = w.watcher.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			debounce.Reset(WatchDebounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("fsnotify error")
		case <-debounce.C:
			w.notify()
		}
	}
}

func (w *Watcher) notify() {
	w.again.Store(true)
	if !w.notifying.CompareAndSwap(false, true) {
		return
	}
	go func() {
		for {
			w.again.Store(false)
			w.onChange()
			w.notifying.Store(false)

			select {
			case <-w.stopChan:
				return
			default:
			}
			if !w.again.Load() || !w.notifying.CompareAndSwap(false, true) {
				return
			}
		}
	}()
}
