package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gratilog/internal/client/models"
	"github.com/dmitrijs2005/gratilog/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.StoredSession, error) {
	var (
		s         models.StoredSession
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT username, user_id, refresh_token, updated_at FROM session WHERE id = 1`,
	).Scan(&s.Username, &s.UserID, &s.RefreshToken, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	s.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.StoredSession) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, username, user_id, refresh_token, updated_at) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			user_id = excluded.user_id,
			refresh_token = excluded.refresh_token,
			updated_at = excluded.updated_at
	`, s.Username, s.UserID, s.RefreshToken, s.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
