// Package server wires the catalog server together: configuration, the
// PostgreSQL store, catalog seeding, the gRPC endpoint and the metrics
// endpoint, and shuts everything down on a signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/stackpick/internal/catalog"
	"github.com/dmitrijs2005/stackpick/internal/logging"
	"github.com/dmitrijs2005/stackpick/internal/server/config"
	"github.com/dmitrijs2005/stackpick/internal/server/metrics"
	"github.com/dmitrijs2005/stackpick/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/stackpick/internal/server/services"
	"github.com/dmitrijs2005/stackpick/internal/stack"

	gs "github.com/dmitrijs2005/stackpick/internal/server/grpc"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type catalogSeeder interface {
	Seed(ctx context.Context, templates []stack.Template, force bool) (int, error)
	List(ctx context.Context) ([]stack.Template, error)
}

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	catalogService *services.CatalogService
	metrics        *metrics.Metrics
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.NewZap(c.LogLevel, "json")
	if err != nil {
		return nil, err
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	cs := services.NewCatalogService(db, rm, c, logger)

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		catalogService: cs,
		metrics:        metrics.New(),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// loadSeed returns the catalog to seed with and whether it should replace
// what is already stored. A seed file always replaces; the built-in catalog
// only fills an empty store.
func loadSeed(ctx context.Context, path string, logger logging.Logger) ([]stack.Template, bool, error) {
	if path == "" {
		return catalog.Builtin(), false, nil
	}

	templates, conflicts, err := catalog.LoadFile(path)
	if err != nil {
		return nil, false, err
	}
	for _, c := range conflicts {
		logger.Warn(ctx, "seed file conflict", "conflict", c.String())
	}
	return templates, true, nil
}

// seedCatalog stores the seed catalog and reports the served catalog size.
func seedCatalog(ctx context.Context, cs catalogSeeder, path string, logger logging.Logger, m *metrics.Metrics) error {
	templates, force, err := loadSeed(ctx, path, logger)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	if _, err := cs.Seed(ctx, templates, force); err != nil {
		return err
	}

	served, err := cs.List(ctx)
	if err != nil {
		return err
	}
	if m != nil {
		m.CatalogSize.Set(float64(len(served)))
	}
	logger.Info(ctx, "serving catalog", "templates", len(served))
	return nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.catalogService, app.metrics)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	app.logger.Info(ctx, "Starting metrics server", "address", app.config.EndpointAddrMetrics)
	if err := app.metrics.Serve(ctx, app.config.EndpointAddrMetrics); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	version, err := app.repomanager.RunMigrations(ctx, app.db)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	app.logger.Info(ctx, "database schema ready", "version", version)

	if err := seedCatalog(ctx, app.catalogService, app.config.SeedFile, app.logger, app.metrics); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return nil
}
