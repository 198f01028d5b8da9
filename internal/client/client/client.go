package client

import (
	"context"

	"github.com/dmitrijs2005/stackpick/internal/stack"
)

// Client is the CLI's view of the catalog server.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	ListTemplates(ctx context.Context) ([]stack.Template, error)
	GetDownloadURL(ctx context.Context, slug string) (string, error)
}
