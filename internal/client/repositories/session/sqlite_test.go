package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gratilog/internal/client/models"
	"github.com/dmitrijs2005/gratilog/internal/dbx"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
    id            INTEGER PRIMARY KEY CHECK (id = 1),
    username      TEXT    NOT NULL,
    user_id       TEXT    NOT NULL,
    refresh_token TEXT    NOT NULL,
    updated_at    INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestLoad_Empty_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	s, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSaveThenLoad(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, models.StoredSession{Username: "ann", UserID: "u-1", RefreshToken: "r1", UpdatedAt: at}))

	s, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, models.StoredSession{Username: "ann", UserID: "u-1", RefreshToken: "r1", UpdatedAt: at}, *s)
}

func TestSave_KeepsSingleRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, models.StoredSession{Username: "ann", UserID: "u-1", RefreshToken: "r1"}))
	require.NoError(t, r.Save(ctx, models.StoredSession{Username: "bob", UserID: "u-2", RefreshToken: "r2"}))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	assert.Equal(t, 1, n)

	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", s.Username)
	assert.Equal(t, "r2", s.RefreshToken)
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, models.StoredSession{Username: "ann", UserID: "u-1", RefreshToken: "r1"}))
	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSave_InsideTransaction_RolledBack(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := NewSQLiteRepository(tx).Save(ctx, models.StoredSession{Username: "ann", UserID: "u-1", RefreshToken: "r1"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	s, err := NewSQLiteRepository(db).Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}
