package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stackpick/internal/common"
	"github.com/dmitrijs2005/stackpick/internal/dbx"
	"github.com/dmitrijs2005/stackpick/internal/stack"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]stack.Template, error) {
	query := `SELECT slug, frontend, backend, auth_method, git_branch, doc_url, github_url
		FROM templates
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select templates: %w", err)
	}

	return dbx.CollectRows(rows, scanTemplate)
}

func scanTemplate(s dbx.Scanner) (stack.Template, error) {
	var t stack.Template
	err := s.Scan(&t.Slug, &t.Frontend, &t.Backend, &t.AuthMethod, &t.GitBranch, &t.DocURL, &t.GitHubURL)
	return t, err
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*stack.Template, error) {
	query := `SELECT slug, frontend, backend, auth_method, git_branch, doc_url, github_url
		FROM templates
		WHERE slug = $1`

	t, err := scanTemplate(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// ReplaceAll deletes every stored template and inserts the given ones,
// recording their index as position. Callers wanting atomicity pass a
// transaction as the DBTX.
func (r *PostgresRepository) ReplaceAll(ctx context.Context, templates []stack.Template) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM templates`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query := `INSERT INTO templates (slug, frontend, backend, auth_method, git_branch, doc_url, github_url, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for i, t := range templates {
		if _, err := r.db.ExecContext(ctx, query,
			t.Slug, t.Frontend, t.Backend, t.AuthMethod, t.GitBranch, t.DocURL, t.GitHubURL, i); err != nil {
			return fmt.Errorf("insert %q: %w", t.Slug, err)
		}
	}
	return nil
}
