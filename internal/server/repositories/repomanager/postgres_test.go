package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/stackpick/internal/server/repositories/templates"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	m := NewPostgresRepositoryManager()
	require.NotNil(t, m)
	assert.IsType(t, &PostgresRepositoryManager{}, m)
}

func TestTemplates_ReturnsPostgresRepo(t *testing.T) {
	db := newDB(t)

	var r templates.Repository = (&PostgresRepositoryManager{}).Templates(db)
	assert.IsType(t, &templates.PostgresRepository{}, r)
}

func TestRunMigrations(t *testing.T) {
	db := newDB(t)
	origUp, origVersion := gooseUpContext, gooseVersion
	t.Cleanup(func() { gooseUpContext, gooseVersion = origUp, origVersion })
	gooseVersion = func(context.Context, *sql.DB) (int64, error) { return 1, nil }

	t.Run("success", func(t *testing.T) {
		var gotDir string
		gooseUpContext = func(ctx context.Context, _ *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			if len(opts) != 0 {
				return errors.New("unexpected opts")
			}
			return nil
		}

		v, err := (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db)
		require.NoError(t, err)
		assert.Equal(t, ".", gotDir)
		assert.Equal(t, int64(1), v)
	})

	t.Run("error", func(t *testing.T) {
		gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
			return errors.New("boom")
		}

		_, err := (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db)
		assert.EqualError(t, err, "boom")
	})

	t.Run("version error", func(t *testing.T) {
		gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return nil }
		gooseVersion = func(context.Context, *sql.DB) (int64, error) { return 0, errors.New("no table") }

		_, err := (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db)
		assert.EqualError(t, err, "schema version: no table")
	})
}
