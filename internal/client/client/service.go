package client

import (
	"context"

	"github.com/dmitrijs2005/gratilog/internal/journal"
)

// Service is the journal API consumed by the view layer. A value is bound to
// one identity (or to none) for its whole life; switching users means
// building a new one.
type Service interface {
	GetMyEntries(ctx context.Context) ([]journal.Entry, error)
	GetPublicEntries(ctx context.Context) ([]journal.Entry, error)
	CreateEntry(ctx context.Context, in journal.EntryInput) (uint64, error)
	AppreciateEntry(ctx context.Context, id uint64) error
	DeleteEntry(ctx context.Context, id uint64) error
	GetMyStats(ctx context.Context) (journal.UserStats, error)
	GetSystemStats(ctx context.Context) (journal.SystemStats, error)
	ExportMyEntries(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Tokens is the credential pair issued by Login and RefreshToken.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Authenticator covers the account endpoints used by the identity provider.
type Authenticator interface {
	Register(ctx context.Context, username string, salt, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (Tokens, string, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, string, error)
	Logout(ctx context.Context, refreshToken string) error
}
