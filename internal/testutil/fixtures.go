package testutil

import (
	"github.com/alexanderramin/folio/internal/domain"
)

// ProjectOption customizes a test project.
type ProjectOption func(*domain.Project)

func WithCategory(c domain.Category) ProjectOption {
	return func(p *domain.Project) {
		p.Category = c
	}
}

func WithStatus(s domain.Status) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithEnglish(title, description string) ProjectOption {
	return func(p *domain.Project) {
		p.TitleEN = title
		p.DescriptionEN = description
	}
}

func WithClient(client, role string) ProjectOption {
	return func(p *domain.Project) {
		p.Client = client
		p.Role = role
	}
}

func WithImages(images ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Images = images
	}
}

// NewTestProject returns a valid completed design project.
func NewTestProject(id int, title string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:          id,
		Title:       title,
		Category:    domain.CategoryDesign,
		Status:      domain.StatusCompleted,
		Year:        "2024",
		Image:       "https://example.com/cover.jpg",
		Description: "Описание проекта " + title,
		Images:      []string{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// SampleCatalog is a small bilingual catalog covering every category and
// both statuses.
func SampleCatalog() []domain.Project {
	return []domain.Project{
		NewTestProject(1, "FinTech App",
			WithCategory(domain.CategoryDevelopment),
			WithEnglish("FinTech App", "A banking app focused on transfers and spending analytics."),
			WithClient("NeoBank Ltd.", "Frontend & UI/UX"),
			WithImages("https://example.com/fintech-1.jpg", "https://example.com/fintech-2.jpg")),
		NewTestProject(2, "Modern Branding",
			WithEnglish("", "Rebranding for an architecture bureau."),
			WithClient("ArchTech", "Art Direction")),
		NewTestProject(3, "Стартап трекер",
			WithCategory(domain.CategoryStartups),
			WithStatus(domain.StatusInProgress),
			WithEnglish("Startup Tracker", "")),
		NewTestProject(4, "Выставка",
			WithCategory(domain.CategoryOther)),
		NewTestProject(5, "Портфолио",
			WithStatus(domain.StatusInProgress)),
	}
}
