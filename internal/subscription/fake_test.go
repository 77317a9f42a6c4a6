package subscription

import (
	"context"
	"sync"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// fakeCatalog answers from callbacks and records every call.
type fakeCatalog struct {
	mu        sync.Mutex
	listCalls []catalog.ListParams
	getCalls  []int
	catCalls  []locale.Locale

	list       func(catalog.ListParams) (catalog.ProjectPage, error)
	get        func(int) (domain.Project, error)
	categories func(locale.Locale) (catalog.CategoryList, error)
}

func (f *fakeCatalog) ListProjects(_ context.Context, p catalog.ListParams) (catalog.ProjectPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, p)
	fn := f.list
	f.mu.Unlock()
	if fn == nil {
		return catalog.ProjectPage{Projects: []domain.Project{}}, nil
	}
	return fn(p)
}

func (f *fakeCatalog) GetProject(_ context.Context, id int) (domain.Project, error) {
	f.mu.Lock()
	f.getCalls = append(f.getCalls, id)
	fn := f.get
	f.mu.Unlock()
	if id <= 0 {
		return domain.Project{}, catalog.ErrInvalidID
	}
	if fn == nil {
		return sampleProject(id, domain.CategoryDesign), nil
	}
	return fn(id)
}

func (f *fakeCatalog) ListCategories(_ context.Context, l locale.Locale) (catalog.CategoryList, error) {
	f.mu.Lock()
	f.catCalls = append(f.catCalls, l)
	fn := f.categories
	f.mu.Unlock()
	if fn == nil {
		return catalog.CategoryList{}, nil
	}
	return fn(l)
}

func (f *fakeCatalog) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

func (f *fakeCatalog) getCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.getCalls)
}

func sampleProject(id int, c domain.Category) domain.Project {
	return domain.Project{
		ID:       id,
		Title:    "Проект",
		TitleEN:  "Project",
		Category: c,
		Status:   domain.StatusCompleted,
		Year:     "2024",
		Images:   []string{},
	}
}

// echoCategory returns one project whose title is the category param it was
// asked for, so tests can tell which request produced the state.
func echoCategory(p catalog.ListParams) (catalog.ProjectPage, error) {
	return catalog.ProjectPage{
		Projects: []domain.Project{{ID: 1, Title: p.Category, Category: domain.CategoryOther, Status: domain.StatusCompleted}},
		Total:    1,
	}, nil
}
