package testutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// CatalogServer serves a Catalog over HTTP with the production routes.
type CatalogServer struct {
	*httptest.Server
	Catalog *Catalog

	mu       sync.Mutex
	requests []*http.Request
}

// NewCatalogServer starts a server seeded with projects and closes it when
// the test completes.
func NewCatalogServer(t *testing.T, projects []domain.Project) *CatalogServer {
	t.Helper()
	s := &CatalogServer{Catalog: NewCatalog(projects)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.health)
	mux.HandleFunc("GET /api/projects", s.listProjects)
	mux.HandleFunc("GET /api/projects/{id}", s.getProject)
	mux.HandleFunc("GET /api/categories", s.listCategories)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// FailWith makes every subsequent request answer with status. Zero restores
// normal behaviour.
func (s *CatalogServer) FailWith(status int) {
	s.Catalog.FailWithStatus(status)
}

// Queries returns the query strings of all requests made to path.
func (s *CatalogServer) Queries(path string) []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []url.Values
	for _, r := range s.requests {
		if r.URL.Path == path {
			out = append(out, r.URL.Query())
		}
	}
	return out
}

// RequestCount returns the number of requests received.
func (s *CatalogServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *CatalogServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *CatalogServer) health(w http.ResponseWriter, r *http.Request) {
	h, err := s.Catalog.Health(r.Context())
	respond(w, h, err)
}

func (s *CatalogServer) listProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := catalog.ListParams{Category: q.Get("category"), Status: q.Get("status")}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusUnprocessableEntity)
			return
		}
		params.Limit = &limit
	}
	page, err := s.Catalog.ListProjects(r.Context(), params)
	respond(w, map[string]any{"projects": page.Projects, "total": page.Total}, err)
}

func (s *CatalogServer) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusUnprocessableEntity)
		return
	}
	if id <= 0 {
		http.Error(w, `{"detail":"Project not found"}`, http.StatusNotFound)
		return
	}
	p, err := s.Catalog.GetProject(r.Context(), id)
	respond(w, p, err)
}

func (s *CatalogServer) listCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.Catalog.ListCategories(r.Context(), locale.Locale(r.URL.Query().Get("locale")))
	respond(w, list, err)
}

func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		var te *catalog.TransportError
		if errors.As(err, &te) && te.StatusCode != 0 {
			status = te.StatusCode
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
