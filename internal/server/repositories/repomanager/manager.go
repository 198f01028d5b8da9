package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/stackpick/internal/dbx"
	"github.com/dmitrijs2005/stackpick/internal/server/repositories/templates"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path works on a plain connection and inside a transaction.
type RepositoryManager interface {
	// RunMigrations brings the schema up to date and returns its version.
	RunMigrations(context.Context, *sql.DB) (int64, error)
	Templates(db dbx.DBTX) templates.Repository
}
