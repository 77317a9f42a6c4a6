package subscription

import (
	"context"
	"sync"

	"github.com/alexanderramin/folio/internal/domain"
)

// ProjectGetter is the slice of catalog.Client the detail subscription uses.
type ProjectGetter interface {
	GetProject(ctx context.Context, id int) (domain.Project, error)
}

type DetailRequest struct {
	Ticket Ticket
	ID     int
	client ProjectGetter
}

type DetailResult struct {
	Ticket  Ticket
	ID      int
	Project domain.Project
	Err     error
}

func (r *DetailRequest) Do(ctx context.Context) DetailResult {
	p, err := r.client.GetProject(ctx, r.ID)
	return DetailResult{Ticket: r.Ticket, ID: r.ID, Project: p, Err: err}
}

// ProjectDetail subscribes to a single project by id. The ready value is nil
// when no id is selected.
type ProjectDetail struct {
	client ProjectGetter

	mu      sync.Mutex
	guard   guard
	id      int
	started bool
	state   FetchState[*domain.Project]
}

func NewProjectDetail(client ProjectGetter) *ProjectDetail {
	return &ProjectDetail{client: client}
}

// SetID selects a project. Id 0 means "none": the state becomes ready with
// no project, any pending fetch is made stale and nil is returned. Other ids,
// negative ones included, are fetched and left to the client to reject.
func (s *ProjectDetail) SetID(id int) *DetailRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.closed {
		return nil
	}
	if s.started && s.id == id {
		return nil
	}
	s.started = true
	s.id = id
	if id == 0 {
		s.guard.invalidate()
		s.state = ready[*domain.Project](nil)
		return nil
	}
	return s.issueLocked()
}

// Reload refetches the current id. It returns nil when no id is selected.
func (s *ProjectDetail) Reload() *DetailRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.closed || s.id == 0 {
		return nil
	}
	return s.issueLocked()
}

func (s *ProjectDetail) issueLocked() *DetailRequest {
	t := s.guard.next()
	s.state = loading[*domain.Project]()
	return &DetailRequest{Ticket: t, ID: s.id, client: s.client}
}

func (s *ProjectDetail) Apply(r DetailResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.accept(r.Ticket) {
		return false
	}
	if r.Err != nil {
		s.state = failed[*domain.Project](r.Err)
		return true
	}
	p := r.Project
	s.state = ready(&p)
	return true
}

func (s *ProjectDetail) ID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *ProjectDetail) State() FetchState[*domain.Project] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ProjectDetail) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.pending()
}

func (s *ProjectDetail) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guard.closed = true
}
