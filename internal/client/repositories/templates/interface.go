// Package templates caches the last catalog received from the server in the
// CLI's SQLite database, so the wizard keeps working offline.
package templates

import (
	"context"

	"github.com/dmitrijs2005/stackpick/internal/stack"
)

type Repository interface {
	// List returns the cached templates in catalog order.
	List(ctx context.Context) ([]stack.Template, error)
	Count(ctx context.Context) (int, error)
	// ReplaceAll swaps the cached catalog for templates.
	ReplaceAll(ctx context.Context, templates []stack.Template) error
}
