package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/folio/internal/domain"
)

// ErrNotFound is wrapped by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Upsert(ctx context.Context, p *domain.Preferences) error
}

type RecentRepo interface {
	Record(ctx context.Context, r domain.RecentProject) error
	List(ctx context.Context, limit int) ([]domain.RecentProject, error)
	Prune(ctx context.Context, keep int) error
}
