package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// Catalog is an in-process catalog.Client over a fixed project set. It
// filters on stored (Russian) labels and answers the directory in Russian,
// like the production service.
type Catalog struct {
	mu       sync.Mutex
	projects []domain.Project
	fail     error
	calls    []string
	params   []catalog.ListParams
}

var _ catalog.Client = (*Catalog)(nil)

func NewCatalog(projects []domain.Project) *Catalog {
	return &Catalog{projects: projects}
}

// FailWith makes every subsequent call return err. Nil restores normal
// answers.
func (c *Catalog) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = err
}

// FailWithStatus fails calls with an HTTP status error.
func (c *Catalog) FailWithStatus(status int) {
	if status == 0 {
		c.FailWith(nil)
		return
	}
	c.FailWith(&catalog.TransportError{StatusCode: status})
}

// Calls returns the method names invoked so far, in order.
func (c *Catalog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// ListParams returns the parameters of every ListProjects call.
func (c *Catalog) ListParams() []catalog.ListParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]catalog.ListParams(nil), c.params...)
}

func (c *Catalog) begin(method string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, method)
	return c.fail
}

func (c *Catalog) ListProjects(_ context.Context, p catalog.ListParams) (catalog.ProjectPage, error) {
	if err := c.begin("ListProjects"); err != nil {
		return catalog.ProjectPage{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = append(c.params, p)

	allLabel := domain.CategoryAll.Label(locale.Russian)
	matched := []domain.Project{}
	for _, pr := range c.projects {
		if p.Category != "" && p.Category != allLabel && pr.Category.Label(locale.Russian) != p.Category {
			continue
		}
		if p.Status != "" && pr.Status.WireValue() != p.Status {
			continue
		}
		matched = append(matched, pr)
	}
	total := len(matched)
	if p.Limit != nil && *p.Limit > 0 && *p.Limit < len(matched) {
		matched = matched[:*p.Limit]
	}
	return catalog.ProjectPage{Projects: matched, Total: total}, nil
}

func (c *Catalog) GetProject(_ context.Context, id int) (domain.Project, error) {
	if id <= 0 {
		return domain.Project{}, catalog.ErrInvalidID
	}
	if err := c.begin("GetProject"); err != nil {
		return domain.Project{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, &catalog.TransportError{StatusCode: http.StatusNotFound}
}

func (c *Catalog) ListCategories(_ context.Context, _ locale.Locale) (catalog.CategoryList, error) {
	if err := c.begin("ListCategories"); err != nil {
		return catalog.CategoryList{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []catalog.CategoryEntry{{Name: domain.CategoryAll.Label(locale.Russian), Count: len(c.projects)}}
	for _, cat := range domain.Categories {
		n := 0
		for _, p := range c.projects {
			if p.Category == cat {
				n++
			}
		}
		out = append(out, catalog.CategoryEntry{Name: cat.Label(locale.Russian), Count: n})
	}
	return catalog.CategoryList{Categories: out}, nil
}

func (c *Catalog) Health(_ context.Context) (catalog.HealthStatus, error) {
	if err := c.begin("Health"); err != nil {
		return catalog.HealthStatus{}, err
	}
	return catalog.HealthStatus{Message: "OK"}, nil
}
