package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/dbx"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/appreciations"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/entries"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created  *models.User
	createID string
	createEr error

	byLogin map[string]*models.User
	getErr  error

	count    uint64
	countErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createEr != nil {
		return nil, f.createEr
	}
	u.ID = f.createID
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) Count(context.Context) (uint64, error) { return f.count, f.countErr }

type fakeRefreshRepo struct {
	tokens map[string]*models.RefreshToken

	findErr   error
	createErr error
	delErr    error
	pruneErr  error

	created []string
	deleted []string
	pruned  []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.tokens == nil {
		f.tokens = map[string]*models.RefreshToken{}
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, userID string, _ time.Time) (int64, error) {
	if f.pruneErr != nil {
		return 0, f.pruneErr
	}
	f.pruned = append(f.pruned, userID)
	return 0, nil
}

// fakeEntriesRepo keeps rows in insertion order and lists them newest first.
type fakeEntriesRepo struct {
	mu     sync.Mutex
	rows   []*models.Entry
	nextID uint64

	err       error
	createErr error
	incErr    error
	totals    entries.Totals
}

func (f *fakeEntriesRepo) add(e *models.Entry) *models.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	if e.ID == 0 {
		e.ID = f.nextID
	}
	f.rows = append(f.rows, e)
	return e
}

func (f *fakeEntriesRepo) Create(_ context.Context, e *models.Entry) (*models.Entry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.CreatedAt = time.Now()
	return f.add(e), nil
}

func (f *fakeEntriesRepo) GetByID(_ context.Context, id uint64) (*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEntriesRepo) filter(keep func(*models.Entry) bool) ([]*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Entry, 0)
	for i := len(f.rows) - 1; i >= 0; i-- {
		if keep(f.rows[i]) {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeEntriesRepo) ListByUser(_ context.Context, userID string) ([]*models.Entry, error) {
	return f.filter(func(e *models.Entry) bool { return e.UserID == userID })
}

func (f *fakeEntriesRepo) ListPublic(context.Context) ([]*models.Entry, error) {
	return f.filter(func(e *models.Entry) bool { return e.IsPublic })
}

func (f *fakeEntriesRepo) Delete(_ context.Context, id uint64, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.rows {
		if e.ID == id && e.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeEntriesRepo) IncrementAppreciations(_ context.Context, id uint64) (uint64, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.ID == id {
			e.Appreciations++
			return e.Appreciations, nil
		}
	}
	return 0, common.ErrorNotFound
}

func (f *fakeEntriesRepo) Totals(context.Context) (entries.Totals, error) {
	return f.totals, f.err
}

type appreciationKey struct {
	entryID uint64
	userID  string
}

type fakeAppreciationsRepo struct {
	seen map[appreciationKey]bool
	err  error
}

func (f *fakeAppreciationsRepo) Create(_ context.Context, entryID uint64, userID string) error {
	if f.err != nil {
		return f.err
	}
	if f.seen == nil {
		f.seen = map[appreciationKey]bool{}
	}
	k := appreciationKey{entryID, userID}
	if f.seen[k] {
		return common.ErrorAlreadyExists
	}
	f.seen[k] = true
	return nil
}

type fakeRepoManager struct {
	users         *fakeUsersRepo
	refreshTokens *fakeRefreshRepo
	entries       *fakeEntriesRepo
	appreciations *fakeAppreciationsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:         &fakeUsersRepo{byLogin: map[string]*models.User{}},
		refreshTokens: &fakeRefreshRepo{},
		entries:       &fakeEntriesRepo{},
		appreciations: &fakeAppreciationsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refreshTokens }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository             { return m.entries }
func (m *fakeRepoManager) Appreciations(dbx.DBTX) appreciations.Repository { return m.appreciations }
