package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gratilog/internal/dbx"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/appreciations"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/entries"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or a
// transaction, so services can run several of them atomically.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
	Appreciations(db dbx.DBTX) appreciations.Repository
}
