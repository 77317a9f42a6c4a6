package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

// SQLitePreferencesRepo stores the single preferences row.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT locale, category, updated_at FROM preferences WHERE id = 'default'`)

	var loc, cat, updated string
	if err := row.Scan(&loc, &cat, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}

	at, err := parseTime(updated)
	if err != nil {
		return nil, fmt.Errorf("parsing preferences updated_at: %w", err)
	}
	return &domain.Preferences{
		Locale:    locale.Locale(loc),
		Category:  domain.Category(cat),
		UpdatedAt: at,
	}, nil
}

// Upsert replaces the stored preferences. An empty category is stored as the
// sentinel; UpdatedAt is stamped when zero.
func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.Preferences) error {
	if !p.Locale.Valid() {
		return fmt.Errorf("upserting preferences: unsupported locale %q", p.Locale)
	}
	cat := p.Category
	if cat == "" {
		cat = domain.CategoryAll
	}
	if !cat.Valid() {
		return fmt.Errorf("upserting preferences: %w: %q", domain.ErrUnknownCategory, cat)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO preferences (id, locale, category, updated_at) VALUES ('default', ?, ?, ?)`,
		string(p.Locale), string(cat), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
