package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/domain"
)

// SQLiteRecentRepo keeps the list of recently opened projects.
type SQLiteRecentRepo struct {
	db db.DBTX
}

func NewSQLiteRecentRepo(conn db.DBTX) *SQLiteRecentRepo {
	return &SQLiteRecentRepo{db: conn}
}

func (r *SQLiteRecentRepo) Record(ctx context.Context, p domain.RecentProject) error {
	if p.ProjectID <= 0 {
		return fmt.Errorf("recording recent project: invalid id %d", p.ProjectID)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recent_projects (project_id, title, viewed_at) VALUES (?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET title = excluded.title, viewed_at = excluded.viewed_at`,
		p.ProjectID, p.Title, formatTime(p.ViewedAt))
	if err != nil {
		return fmt.Errorf("recording recent project %d: %w", p.ProjectID, err)
	}
	return nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (r *SQLiteRecentRepo) List(ctx context.Context, limit int) ([]domain.RecentProject, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, title, viewed_at FROM recent_projects
		ORDER BY viewed_at DESC, project_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent projects: %w", err)
	}
	defer rows.Close()

	var out []domain.RecentProject
	for rows.Next() {
		var (
			p      domain.RecentProject
			viewed string
		)
		if err := rows.Scan(&p.ProjectID, &p.Title, &viewed); err != nil {
			return nil, fmt.Errorf("scanning recent project: %w", err)
		}
		if p.ViewedAt, err = parseTime(viewed); err != nil {
			return nil, fmt.Errorf("parsing viewed_at for project %d: %w", p.ProjectID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Prune drops everything but the keep newest entries.
func (r *SQLiteRecentRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM recent_projects WHERE project_id NOT IN (
			SELECT project_id FROM recent_projects ORDER BY viewed_at DESC, project_id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("pruning recent projects: %w", err)
	}
	return nil
}
