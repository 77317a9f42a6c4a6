package subscription

import (
	"context"
	"sync"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// ProjectLister is the slice of catalog.Client the list subscription uses.
type ProjectLister interface {
	ListProjects(ctx context.Context, params catalog.ListParams) (catalog.ProjectPage, error)
}

// ListQuery is the effective parameter set of a list subscription.
type ListQuery struct {
	Filter domain.Filter
	Locale locale.Locale
}

func (q ListQuery) equal(o ListQuery) bool {
	return q.Locale == o.Locale && q.Filter.Equal(o.Filter)
}

// ListPage is the ready value of a list subscription. Query records the
// parameters that produced it.
type ListPage struct {
	Projects []domain.Project
	Total    int
	Query    ListQuery
}

// ListRequest is one outgoing fetch for a list subscription.
type ListRequest struct {
	Ticket Ticket
	Query  ListQuery
	Params catalog.ListParams
	client ProjectLister
}

// ListResult is the outcome of a ListRequest.
type ListResult struct {
	Ticket Ticket
	Query  ListQuery
	Page   catalog.ProjectPage
	Err    error
}

// Do performs the network call. It is safe to call from any goroutine and
// never touches subscription state.
func (r *ListRequest) Do(ctx context.Context) ListResult {
	page, err := r.client.ListProjects(ctx, r.Params)
	return ListResult{Ticket: r.Ticket, Query: r.Query, Page: page, Err: err}
}

// ProjectList subscribes to "all projects matching a filter" in a locale.
type ProjectList struct {
	client      ProjectLister
	queryLocale locale.Locale

	mu      sync.Mutex
	guard   guard
	query   ListQuery
	started bool
	state   FetchState[ListPage]
}

// NewProjectList creates an idle list subscription. Category filters are
// sent to the service as labels in queryLocale.
func NewProjectList(client ProjectLister, queryLocale locale.Locale) *ProjectList {
	if !queryLocale.Valid() {
		queryLocale = locale.Default
	}
	return &ProjectList{client: client, queryLocale: queryLocale}
}

// SetQuery moves the subscription to q. It returns nil when q is already the
// effective query, or when the subscription is closed.
func (s *ProjectList) SetQuery(q ListQuery) *ListRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.closed {
		return nil
	}
	q.Filter = q.Filter.Normalized()
	if s.started && s.query.equal(q) {
		return nil
	}
	s.query = q
	return s.issueLocked()
}

// SetFilter changes the filter and keeps the locale.
func (s *ProjectList) SetFilter(f domain.Filter) *ListRequest {
	return s.SetQuery(ListQuery{Filter: f, Locale: s.Query().Locale})
}

// SetLocale changes the locale and keeps the filter. The filter is keyed by
// canonical category, so nothing needs remapping.
func (s *ProjectList) SetLocale(l locale.Locale) *ListRequest {
	return s.SetQuery(ListQuery{Filter: s.Query().Filter, Locale: l})
}

// Reload issues a new generation for the current query.
func (s *ProjectList) Reload() *ListRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.closed {
		return nil
	}
	return s.issueLocked()
}

func (s *ProjectList) issueLocked() *ListRequest {
	s.started = true
	s.query.Filter = s.query.Filter.Normalized()
	t := s.guard.next()
	s.state = loading[ListPage]()
	return &ListRequest{
		Ticket: t,
		Query:  s.query,
		Params: s.paramsFor(s.query.Filter),
		client: s.client,
	}
}

func (s *ProjectList) paramsFor(f domain.Filter) catalog.ListParams {
	p := catalog.ListParams{Status: f.Status.WireValue()}
	if !f.Category.IsAll() {
		p.Category = f.Category.Label(s.queryLocale)
	}
	if f.Limit != nil {
		limit := *f.Limit
		p.Limit = &limit
	}
	return p
}

// Apply transitions to ready or failed if r belongs to the newest
// generation. Stale results are dropped and Apply returns false.
func (s *ProjectList) Apply(r ListResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.accept(r.Ticket) {
		return false
	}
	if r.Err != nil {
		s.state = failed[ListPage](r.Err)
		return true
	}
	projects := r.Page.Projects
	if projects == nil {
		projects = []domain.Project{}
	}
	s.state = ready(ListPage{Projects: projects, Total: r.Page.Total, Query: r.Query})
	return true
}

// Query returns the effective query.
func (s *ProjectList) Query() ListQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// State returns a snapshot of the subscription state.
func (s *ProjectList) State() FetchState[ListPage] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending reports whether a request of the current generation is in flight.
func (s *ProjectList) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.pending()
}

// Close tears the subscription down. Results arriving afterwards are
// discarded; in-flight calls are left to finish.
func (s *ProjectList) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guard.closed = true
}
