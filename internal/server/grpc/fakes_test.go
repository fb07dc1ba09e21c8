package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
	"github.com/dmitrijs2005/gratilog/internal/server/services"
)

type fakeUsers struct {
	mu sync.Mutex

	regErr    error
	saltErr   error
	loginOut  *services.TokenPair
	loginErr  error
	refresh   func(token string) (*services.TokenPair, error)
	logoutErr error

	refreshCalls int
	loggedOut    []string
}

func (f *fakeUsers) Register(_ context.Context, username string, _, _ []byte) (*models.User, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{ID: "id-" + username, UserName: username}, nil
}

func (f *fakeUsers) GetSalt(context.Context, string) ([]byte, error) {
	return []byte("salt"), f.saltErr
}

func (f *fakeUsers) Login(context.Context, string, []byte) (*services.TokenPair, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUsers) RefreshToken(_ context.Context, token string) (*services.TokenPair, error) {
	f.mu.Lock()
	f.refreshCalls++
	f.mu.Unlock()
	return f.refresh(token)
}

func (f *fakeUsers) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return f.logoutErr
}

type fakeEntries struct {
	mine    map[string][]journal.Entry
	public  []journal.Entry
	listErr error

	createErr error
	created   []journal.EntryInput
	createdBy []string

	deleteErr     error
	appreciateErr error
	lastCaller    string
	lastID        uint64
}

func (f *fakeEntries) Create(_ context.Context, userID string, in journal.EntryInput) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	f.created = append(f.created, in)
	f.createdBy = append(f.createdBy, userID)
	return uint64(len(f.created)), nil
}

func (f *fakeEntries) ListMine(_ context.Context, userID string) ([]journal.Entry, error) {
	return f.mine[userID], f.listErr
}

func (f *fakeEntries) ListPublic(context.Context) ([]journal.Entry, error) {
	return f.public, f.listErr
}

func (f *fakeEntries) Delete(_ context.Context, userID string, id uint64) error {
	f.lastCaller, f.lastID = userID, id
	return f.deleteErr
}

func (f *fakeEntries) Appreciate(_ context.Context, userID string, id uint64) (uint64, error) {
	f.lastCaller, f.lastID = userID, id
	if f.appreciateErr != nil {
		return 0, f.appreciateErr
	}
	return 1, nil
}

type fakeStats struct {
	user   journal.UserStats
	system journal.SystemStats
	err    error
}

func (f *fakeStats) UserStats(context.Context, string) (journal.UserStats, error) {
	return f.user, f.err
}

func (f *fakeStats) SystemStats(context.Context) (journal.SystemStats, error) {
	return f.system, f.err
}

type fakeExports struct {
	out *services.ExportResult
	err error
}

func (f *fakeExports) Export(context.Context, string) (*services.ExportResult, error) {
	return f.out, f.err
}
