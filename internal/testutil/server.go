// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/janderssonse/blueprints/internal/domain"
)

// CatalogServer is a static file server shaped like the template host:
// /meta.json plus /blueprints/{id}/{file}.
type CatalogServer struct {
	*httptest.Server

	mu        sync.Mutex
	index     []byte
	indexCode int
	files     map[string]string // "{id}/{file}" -> body
	codes     map[string]int    // "{id}/{file}" -> forced status
	block     map[string]chan struct{}
	hits      atomic.Int64
}

// NewCatalogServer starts a server publishing templates. It is closed when
// the test ends.
func NewCatalogServer(t *testing.T, templates []domain.Template) *CatalogServer {
	t.Helper()

	index, err := json.Marshal(templates)
	if err != nil {
		t.Fatalf("encode index: %v", err)
	}

	srv := &CatalogServer{
		index:     index,
		indexCode: http.StatusOK,
		files:     make(map[string]string),
		codes:     make(map[string]int),
		block:     make(map[string]chan struct{}),
	}

	router := chi.NewRouter()
	router.Use(srv.count)
	router.Get(domain.IndexPath, srv.serveIndex)
	router.Get(domain.BlueprintsDir+"/{id}/{file}", srv.serveFile)

	srv.Server = httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

// SetFile publishes body at /blueprints/{id}/{file}.
func (s *CatalogServer) SetFile(id, file, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[id+"/"+file] = body
}

// SetStatus forces a status for /blueprints/{id}/{file}.
func (s *CatalogServer) SetStatus(id, file string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[id+"/"+file] = code
}

// SetIndexRaw replaces the body and status of /meta.json.
func (s *CatalogServer) SetIndexRaw(body string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = []byte(body)
	s.indexCode = code
}

// Block holds requests for /blueprints/{id}/{file} until the returned
// function is called or the request is cancelled.
func (s *CatalogServer) Block(id, file string) (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{})
	s.block[id+"/"+file] = ch

	var once sync.Once

	return func() { once.Do(func() { close(ch) }) }
}

// Hits returns the number of requests served.
func (s *CatalogServer) Hits() int64 {
	return s.hits.Load()
}

func (s *CatalogServer) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *CatalogServer) serveIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	body, code := s.index, s.indexCode
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (s *CatalogServer) serveFile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id") + "/" + chi.URLParam(r, "file")

	s.mu.Lock()
	body, found := s.files[key]
	code, forced := s.codes[key]
	gate := s.block[key]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case forced:
		w.WriteHeader(code)
	case !found:
		http.NotFound(w, r)
	default:
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write([]byte(body))
	}
}
