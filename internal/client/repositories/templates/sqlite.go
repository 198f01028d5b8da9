package templates

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stackpick/internal/dbx"
	"github.com/dmitrijs2005/stackpick/internal/stack"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]stack.Template, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slug, frontend, backend, auth_method, git_branch, doc_url, github_url
		FROM templates ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	list, err := dbx.CollectRows(rows, scanTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to read template rows: %w", err)
	}
	return list, nil
}

func scanTemplate(s dbx.Scanner) (stack.Template, error) {
	var t stack.Template
	err := s.Scan(&t.Slug, &t.Frontend, &t.Backend, &t.AuthMethod, &t.GitBranch, &t.DocURL, &t.GitHubURL)
	return t, err
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count templates: %w", err)
	}
	return n, nil
}

// ReplaceAll is not atomic on its own; pass a transaction to make it so.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, templates []stack.Template) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM templates`); err != nil {
		return fmt.Errorf("failed to clear templates: %w", err)
	}

	for i, t := range templates {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO templates (slug, frontend, backend, auth_method, git_branch, doc_url, github_url, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Slug, t.Frontend, t.Backend, t.AuthMethod, t.GitBranch, t.DocURL, t.GitHubURL, i)
		if err != nil {
			return fmt.Errorf("failed to insert template[%s]: %w", t.Slug, err)
		}
	}
	return nil
}
