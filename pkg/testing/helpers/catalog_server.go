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

package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dotslashplay/playit-wizard/pkg/helpers/syncutil"
	"github.com/dotslashplay/playit-wizard/pkg/testing/fixtures"
)

// MockCatalogServer serves the catalog API endpoints and the images host
// from canned fixtures.
type MockCatalogServer struct {
	*httptest.Server
	shows    map[string]string
	images   map[string][]byte
	requests []string
	mu       syncutil.Mutex
}

// NewMockCatalogServer starts a server answering searches with
// fixtures.CatalogGames and game 42 with fixtures.CatalogWitcherShow. The
// server is closed when the test ends.
func NewMockCatalogServer(t *testing.T) *MockCatalogServer {
	mock := &MockCatalogServer{
		shows: map[string]string{
			"42": fixtures.CatalogWitcherShow,
			"9":  fixtures.CatalogEmptyShow,
		},
		images: make(map[string][]byte),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/games/list", mock.handleSearch)
	mux.HandleFunc("/games/search", mock.handleSearch)
	mux.HandleFunc("/games/show/", mock.handleShow)
	mux.HandleFunc("/img/", mock.handleImage)
	mock.Server = httptest.NewServer(mux)
	t.Cleanup(mock.Close)

	return mock
}

// URL returns the API root, with a trailing slash like the configured one.
func (m *MockCatalogServer) URL() string {
	return m.Server.URL + "/"
}

// ImagesURL returns the root of the images host.
func (m *MockCatalogServer) ImagesURL() string {
	return m.Server.URL + "/img/"
}

// WithImage serves data at the given path under the images root.
func (m *MockCatalogServer) WithImage(path string, data []byte) *MockCatalogServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[path] = data
	return m
}

// Requests returns the request URIs received so far.
func (m *MockCatalogServer) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockCatalogServer) record(r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, r.URL.RequestURI())
}

func (m *MockCatalogServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	m.record(r)
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("search") == "nothing" {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_, _ = w.Write([]byte(fixtures.CatalogGames))
}

func (m *MockCatalogServer) handleShow(w http.ResponseWriter, r *http.Request) {
	m.record(r)
	id := strings.TrimPrefix(r.URL.Path, "/games/show/")

	m.mu.Lock()
	body, ok := m.shows[id]
	m.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (m *MockCatalogServer) handleImage(w http.ResponseWriter, r *http.Request) {
	m.record(r)
	path := strings.TrimPrefix(r.URL.Path, "/img/")

	m.mu.Lock()
	data, ok := m.images[path]
	m.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write(data)
}
