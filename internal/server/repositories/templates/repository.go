// Package templates stores the template catalog in PostgreSQL.
package templates

import (
	"context"

	"github.com/dmitrijs2005/stackpick/internal/stack"
)

// Repository persists catalog templates. List returns them in catalog
// order, which is the order they were last written with ReplaceAll.
type Repository interface {
	List(ctx context.Context) ([]stack.Template, error)
	GetBySlug(ctx context.Context, slug string) (*stack.Template, error)
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, templates []stack.Template) error
}
