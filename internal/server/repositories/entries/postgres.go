package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/dbx"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
)

const entryColumns = `id, user_id, title, content, category, mood_rating, is_public, appreciations, created_at`

// PostgresRepository works over *sql.DB or *sql.Tx.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	e := &models.Entry{}
	err := s.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Category,
		&e.MoodRating, &e.IsPublic, &e.Appreciations, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		INSERT INTO entries (user_id, title, content, category, mood_rating, is_public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, appreciations, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Title, entry.Content, entry.Category, entry.MoodRating, entry.IsPublic,
	).Scan(&entry.ID, &entry.Appreciations, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint64) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = $1`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListPublic(ctx context.Context) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE is_public ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint64, userID string) error {
	query := `DELETE FROM entries WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) IncrementAppreciations(ctx context.Context, id uint64) (uint64, error) {
	query := `
		UPDATE entries SET appreciations = appreciations + 1
		WHERE id = $1
		RETURNING appreciations
	`
	var n uint64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Totals(ctx context.Context) (Totals, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_public),
		       COALESCE(SUM(appreciations), 0)::BIGINT
		FROM entries
	`
	var t Totals
	if err := r.db.QueryRowContext(ctx, query).Scan(&t.Entries, &t.Public, &t.Appreciations); err != nil {
		return Totals{}, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
