package appreciations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/dbx"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/pgerr"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entryID uint64, userID string) error {
	query := `
		INSERT INTO appreciations (entry_id, user_id)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, entryID, userID); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
