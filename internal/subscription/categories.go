package subscription

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// CategoryLister is the slice of catalog.Client the directory uses.
type CategoryLister interface {
	ListCategories(ctx context.Context, l locale.Locale) (catalog.CategoryList, error)
}

type CategoriesRequest struct {
	Ticket Ticket
	Locale locale.Locale
	client CategoryLister
}

type CategoriesResult struct {
	Ticket Ticket
	Locale locale.Locale
	Counts []domain.CategoryCount
	Err    error
}

// Do fetches the directory and resolves service names to canonical
// categories. An unrecognized name fails the whole result with a DecodeError.
func (r *CategoriesRequest) Do(ctx context.Context) CategoriesResult {
	res := CategoriesResult{Ticket: r.Ticket, Locale: r.Locale}
	list, err := r.client.ListCategories(ctx, r.Locale)
	if err != nil {
		res.Err = err
		return res
	}
	res.Counts, res.Err = ResolveCounts(list.Categories, r.Locale)
	return res
}

// ResolveCounts maps service entries to canonical categories labelled in l.
// The sentinel comes first; if the service omitted it, it is synthesized as
// the sum of the other counts. Remaining entries keep service order.
func ResolveCounts(entries []catalog.CategoryEntry, l locale.Locale) ([]domain.CategoryCount, error) {
	var all *domain.CategoryCount
	rest := make([]domain.CategoryCount, 0, len(entries))
	sum := 0
	for _, e := range entries {
		c, ok := domain.ParseCategory(e.Name)
		if !ok {
			return nil, &catalog.DecodeError{Err: fmt.Errorf("%w: %q", domain.ErrUnknownCategory, e.Name)}
		}
		cc := domain.CategoryCount{Category: c, Label: c.Label(l), Count: e.Count}
		if c.IsAll() {
			if all == nil {
				all = &cc
			}
			continue
		}
		sum += e.Count
		rest = append(rest, cc)
	}
	if all == nil {
		all = &domain.CategoryCount{Category: domain.CategoryAll, Label: domain.CategoryAll.Label(l), Count: sum}
	}
	return append([]domain.CategoryCount{*all}, rest...), nil
}

// Categories subscribes to the category directory for a locale.
type Categories struct {
	client CategoryLister

	mu      sync.Mutex
	guard   guard
	locale  locale.Locale
	started bool
	state   FetchState[[]domain.CategoryCount]
}

func NewCategories(client CategoryLister) *Categories {
	return &Categories{client: client}
}

// SetLocale refetches when l differs from the current locale.
func (s *Categories) SetLocale(l locale.Locale) *CategoriesRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.closed || (s.started && s.locale == l) {
		return nil
	}
	s.locale = l
	return s.issueLocked()
}

func (s *Categories) Reload() *CategoriesRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.closed {
		return nil
	}
	return s.issueLocked()
}

func (s *Categories) issueLocked() *CategoriesRequest {
	s.started = true
	t := s.guard.next()
	s.state = loading[[]domain.CategoryCount]()
	return &CategoriesRequest{Ticket: t, Locale: s.locale, client: s.client}
}

func (s *Categories) Apply(r CategoriesResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.accept(r.Ticket) {
		return false
	}
	if r.Err != nil {
		s.state = failed[[]domain.CategoryCount](r.Err)
		return true
	}
	s.state = ready(r.Counts)
	return true
}

func (s *Categories) Locale() locale.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

func (s *Categories) State() FetchState[[]domain.CategoryCount] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Categories) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guard.closed = true
}
