package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/stackpick/internal/catalog"
	"github.com/dmitrijs2005/stackpick/internal/client/client"
	"github.com/dmitrijs2005/stackpick/internal/client/config"
	"github.com/dmitrijs2005/stackpick/internal/client/services"
	"github.com/dmitrijs2005/stackpick/internal/logging"
	"github.com/dmitrijs2005/stackpick/internal/stack"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config         *config.Config
	logger         logging.Logger
	pinger         pinger
	catalogService services.CatalogService
	closer         io.Closer

	wizard      *stack.Wizard
	source      string
	catalogSize int

	mu   sync.RWMutex
	mode Mode

	out io.Writer
}

// newLogger builds a text slog logger writing to stderr at level.
func newLogger(level string) (logging.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return logging.NewSlogLogger(slog.New(h)), nil
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger, err := newLogger(c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.CacheDSN, "error", err)
		return nil, err
	}

	apiClient, err := client.NewCatalogClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cs := services.NewCatalogService(apiClient, client.NewRepositories(db))

	app := &App{
		config:         c,
		logger:         logger,
		pinger:         apiClient,
		catalogService: cs,
		closer:         closerFunc(func() error { return errors.Join(apiClient.Close(), db.Close()) }),
		mode:           ModeOffline,
		out:            os.Stdout,
	}

	return app, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// loadCatalog builds the wizard from the best catalog available: the local
// cache, then a fresh sync, then the built-in catalog.
func (a *App) loadCatalog(ctx context.Context) {
	list, err := a.catalogService.Load(ctx)
	if err == nil {
		a.startWizard(list, "cache")
		return
	}
	if !errors.Is(err, client.ErrLocalDataNotAvailable) {
		a.logger.Warn(ctx, "cannot read local cache", "error", err)
	}

	if _, err := a.catalogService.Sync(ctx); err == nil {
		if list, err := a.catalogService.Load(ctx); err == nil {
			a.setMode(ModeOnline)
			a.startWizard(list, "server")
			return
		}
	} else {
		a.logger.Warn(ctx, "initial sync failed", "error", err)
	}

	a.startWizard(catalog.Builtin(), "built-in")
}

func (a *App) startWizard(list []stack.Template, source string) {
	a.wizard = stack.NewWizard(stack.NewCatalog(list), a.onMatch)
	a.source = source
	a.catalogSize = len(list)
	a.logger.Debug(context.Background(), "catalog loaded", "templates", len(list), "source", source)
}

func (a *App) onMatch(t *stack.Template) {
	if t == nil {
		return
	}
	fmt.Fprintf(a.out, "Matched template %q\n", t.Slug)
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			_ = a.closer.Close()
		}
	}()

	a.loadCatalog(ctx)
	a.Root(ctx)
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode accordingly. A non-positive interval falls back to
// config.DefaultOnlineCheckInterval. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.logger.Warn(ctx, "invalid online check interval, using default",
			"interval", interval, "default", config.DefaultOnlineCheckInterval)
		interval = config.DefaultOnlineCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.pinger.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
