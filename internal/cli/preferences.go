package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/alexanderramin/folio/internal/repository"
)

// ResolveLocale picks the display language for a run: the stored
// preference, then the configured value, then the environment, then the
// default. The --locale flag is applied later by the root command.
func ResolveLocale(ctx context.Context, prefs repository.PreferencesRepo, configured string) locale.Locale {
	var candidates []string
	if prefs != nil {
		if p, err := prefs.Get(ctx); err == nil {
			candidates = append(candidates, string(p.Locale))
		}
	}
	candidates = append(candidates, configured)
	if l, ok := locale.Detect(); ok {
		candidates = append(candidates, string(l))
	}
	return locale.Resolve(candidates...)
}

// storedCategory returns the remembered gallery category, or the sentinel.
func storedCategory(ctx context.Context, prefs repository.PreferencesRepo) domain.Category {
	if prefs == nil {
		return domain.CategoryAll
	}
	p, err := prefs.Get(ctx)
	if err != nil || !p.Category.Valid() {
		return domain.CategoryAll
	}
	return p.Category
}

// savePreferences writes locale and category. A nil category keeps the
// stored one.
func savePreferences(ctx context.Context, app *App, l locale.Locale, category *domain.Category) error {
	if app.Prefs == nil {
		return nil
	}
	p := &domain.Preferences{Locale: l, Category: domain.CategoryAll, UpdatedAt: app.now()}
	if category != nil {
		p.Category = *category
	} else if cur, err := app.Prefs.Get(ctx); err == nil {
		p.Category = cur.Category
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("loading preferences: %w", err)
	}
	return app.Prefs.Upsert(ctx, p)
}
