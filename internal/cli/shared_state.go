package cli

import (
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	Locale   locale.Locale
	Category domain.Category

	// Terminal dimensions
	Width  int
	Height int

	// LastError is the most recent background failure, shown in the header.
	LastError string
}

// ContentHeight returns the rows left for view content after the header
// (title + separator) and the status bar (separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
