// Package services implements the CLI's use cases on top of the server
// client and the local cache.
package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/stackpick/internal/client/client"
	"github.com/dmitrijs2005/stackpick/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stackpick/internal/client/repositories/templates"
	"github.com/dmitrijs2005/stackpick/internal/common"
	"github.com/dmitrijs2005/stackpick/internal/dbx"
	"github.com/dmitrijs2005/stackpick/internal/filex"
	"github.com/dmitrijs2005/stackpick/internal/netx"
	"github.com/dmitrijs2005/stackpick/internal/stack"
)

type CatalogService interface {
	// Sync fetches the catalog from the server and replaces the cache with
	// it. It returns the number of templates received. An empty catalog is
	// rejected with common.ErrEmptyCatalog and leaves the cache as it was.
	Sync(ctx context.Context) (int, error)
	// Load returns the cached catalog, or client.ErrLocalDataNotAvailable
	// when nothing has been synced yet.
	Load(ctx context.Context) ([]stack.Template, error)
	// LastSync reports when the cache was last refreshed.
	LastSync(ctx context.Context) (time.Time, bool, error)
	DownloadURL(ctx context.Context, slug string) (string, error)
	// Download saves the archive of slug as <dir>/<slug>.zip and returns
	// the file path.
	Download(ctx context.Context, slug, dir string) (string, error)
}

type catalogService struct {
	client client.Client
	repos  *client.Repositories
	now    func() time.Time
}

func NewCatalogService(c client.Client, repos *client.Repositories) CatalogService {
	return &catalogService{client: c, repos: repos, now: time.Now}
}

func (s *catalogService) Sync(ctx context.Context) (int, error) {
	list, err := s.client.ListTemplates(ctx)
	if err != nil {
		return 0, err
	}
	if len(list) == 0 {
		return 0, fmt.Errorf("server catalog rejected: %w", common.ErrEmptyCatalog)
	}
	if _, err := stack.Validate(list); err != nil {
		return 0, fmt.Errorf("server catalog rejected: %w", err)
	}

	now := s.now()

	err = dbx.WithTx(ctx, s.repos.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := templates.NewSQLiteRepository(tx).ReplaceAll(ctx, list); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).SetLastSync(ctx, now)
	})
	if err != nil {
		return 0, fmt.Errorf("cache update: %w", err)
	}

	return len(list), nil
}

func (s *catalogService) Load(ctx context.Context) ([]stack.Template, error) {
	list, err := s.repos.Templates.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, client.ErrLocalDataNotAvailable
	}
	return list, nil
}

func (s *catalogService) LastSync(ctx context.Context) (time.Time, bool, error) {
	return s.repos.Metadata.LastSync(ctx)
}

func (s *catalogService) DownloadURL(ctx context.Context, slug string) (string, error) {
	return s.client.GetDownloadURL(ctx, slug)
}

func (s *catalogService) Download(ctx context.Context, slug, dir string) (string, error) {
	url, err := s.DownloadURL(ctx, slug)
	if err != nil {
		return "", err
	}

	dir, err = filex.EnsureSubdDir(dir)
	if err != nil {
		return "", err
	}

	return filex.WriteFile(dir, slug+".zip", func(w io.Writer) error {
		_, err := netx.Download(ctx, url, w)
		return err
	})
}
