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

package thumbnails

import "github.com/dotslashplay/playit-wizard/pkg/helpers/syncutil"

// Request asks for the thumbnail of the list entry at Index.
type Request struct {
	Slug  string
	Image string
	Index int
}

// Result is the outcome of a Request. Path is the cached file when OK.
type Result struct {
	Slug  string
	Path  string
	Index int
	OK    bool
}

type entryState int

const (
	pending entryState = iota
	fetching
	resolved
)

type entry struct {
	req   Request
	state entryState
}

// Queue holds the entries of the current game list and hands the pending
// ones out in list order. It is shared between the UI and the fetcher loop.
type Queue struct {
	entries []entry
	mu      syncutil.Mutex
}

// Reset replaces the list, after a new search. Entry indexes follow the
// order of reqs.
func (q *Queue) Reset(reqs []Request) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = make([]entry, len(reqs))
	for i, r := range reqs {
		r.Index = i
		q.entries[i] = entry{req: r}
	}
}

// Next implements Source.
func (q *Queue) Next() (Request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].state == pending {
			q.entries[i].state = fetching
			return q.entries[i].req, true
		}
	}
	return Request{}, false
}

// Resolve marks the entry of res as done. It returns false when the list
// was replaced meanwhile and res no longer matches the entry at its index,
// in which case the result must be dropped.
func (q *Queue) Resolve(res Result) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if res.Index < 0 || res.Index >= len(q.entries) {
		return false
	}
	e := &q.entries[res.Index]
	if e.req.Slug != res.Slug {
		return false
	}
	e.state = resolved
	return true
}

// Pending counts entries not resolved yet.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, e := range q.entries {
		if e.state != resolved {
			n++
		}
	}
	return n
}
