package domain

import (
	"time"

	"github.com/alexanderramin/folio/internal/locale"
)

// Preferences is the locally remembered browsing state.
type Preferences struct {
	Locale    locale.Locale
	Category  Category
	UpdatedAt time.Time
}

// RecentProject is an entry in the locally kept viewing history.
type RecentProject struct {
	ProjectID int
	Title     string
	ViewedAt  time.Time
}
