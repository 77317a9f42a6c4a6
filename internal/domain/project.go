package domain

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/locale"
)

// Project is a portfolio entry as served by the catalog service. The client
// never mutates projects; it only fetches and discards them.
type Project struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	TitleEN       string   `json:"title_en,omitempty"`
	Category      Category `json:"category"`
	Status        Status   `json:"status"`
	Year          string   `json:"year"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	DescriptionEN string   `json:"description_en,omitempty"`
	Client        string   `json:"client,omitempty"`
	Role          string   `json:"role,omitempty"`
	Images        []string `json:"images"`
}

// Validate checks the invariants a decoded project must satisfy.
func (p *Project) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("project id must be positive, got %d", p.ID)
	}
	if p.Category.IsAll() || !p.Category.Valid() {
		return fmt.Errorf("project %d: %w: %q", p.ID, ErrUnknownCategory, p.Category)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("project %d: %w: %q", p.ID, ErrUnknownStatus, p.Status)
	}
	return nil
}

// LocalizedTitle returns the English title for English when one exists,
// otherwise the base title.
func (p *Project) LocalizedTitle(l locale.Locale) string {
	if l == locale.English && p.TitleEN != "" {
		return p.TitleEN
	}
	return p.Title
}

// LocalizedDescription follows the same rule as LocalizedTitle.
func (p *Project) LocalizedDescription(l locale.Locale) string {
	if l == locale.English && p.DescriptionEN != "" {
		return p.DescriptionEN
	}
	return p.Description
}
