// Package services contains application services for the GratiLog client.
// This file defines the identity provider: register, login, silent restore
// from the locally stored refresh token, and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/client/models"
	"github.com/dmitrijs2005/gratilog/internal/client/repositories/session"
	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/cryptox"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

// AuthService is the identity provider used by the session manager.
//
// It talks to the account endpoints through an anonymous client and keeps
// the current token pair in memory. Only the refresh token is persisted,
// so the next start can restore the session without asking for a password.
type AuthService struct {
	client client.Authenticator
	store  session.Repository
	log    logging.Logger
	now    func() time.Time

	mu       sync.RWMutex
	identity models.Identity
	tokens   client.Tokens
}

// NewAuthService constructs an AuthService bound to the given account API
// and local session store.
func NewAuthService(c client.Authenticator, store session.Repository, log logging.Logger) *AuthService {
	return &AuthService{client: c, store: store, log: log.With("module", "auth"), now: time.Now}
}

func (a *AuthService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return !a.identity.IsZero()
}

func (a *AuthService) Identity() models.Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.identity
}

// Tokens returns the credentials a service handle should be built with.
func (a *AuthService) Tokens() client.Tokens {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tokens
}

// Restore exchanges a stored refresh token for a fresh token pair. Having no
// stored session is not an error. A rejected token wipes the local store.
func (a *AuthService) Restore(ctx context.Context) error {
	stored, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if stored == nil || stored.RefreshToken == "" {
		return nil
	}

	tokens, userID, err := a.client.Refresh(ctx, stored.RefreshToken)
	if err != nil {
		if cerr := a.store.Clear(ctx); cerr != nil {
			a.log.Warn(ctx, "failed to clear stale session", "error", cerr)
		}
		return fmt.Errorf("restore session: %w", err)
	}

	id := stored.Identity()
	if userID != "" {
		id.UserID = userID
	}
	a.signIn(ctx, id, tokens)
	return nil
}

// Login authenticates with username and password. The password never leaves
// the process: only a verifier derived from it is sent.
func (a *AuthService) Login(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return common.ErrorInvalidLoginFormat
	}

	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	verifier := cryptox.VerifierFor(password, salt)
	defer common.WipeByteArray(verifier)

	tokens, userID, err := a.client.Login(ctx, username, verifier)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.signIn(ctx, models.Identity{UserID: userID, Username: username}, tokens)
	return nil
}

// Register creates a new account with a random salt. It does not log in.
func (a *AuthService) Register(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return common.ErrorInvalidLoginFormat
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	verifier := cryptox.VerifierFor(password, salt)
	defer common.WipeByteArray(verifier)

	return a.client.Register(ctx, username, salt, verifier)
}

// Logout forgets the identity locally in every case. Server-side revocation
// is best effort; only a failure to clear the local store is returned.
func (a *AuthService) Logout(ctx context.Context) error {
	a.mu.Lock()
	refresh := a.tokens.RefreshToken
	a.identity = models.Identity{}
	a.tokens = client.Tokens{}
	a.mu.Unlock()

	if refresh != "" {
		if err := a.client.Logout(ctx, refresh); err != nil {
			a.log.Warn(ctx, "refresh token revocation failed", "error", err)
		}
	}

	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// UpdateTokens records a pair obtained by a transparent refresh, keeping the
// stored refresh token valid across restarts.
func (a *AuthService) UpdateTokens(t client.Tokens) {
	a.mu.Lock()
	if a.identity.IsZero() {
		a.mu.Unlock()
		return
	}
	a.tokens = t
	id := a.identity
	a.mu.Unlock()

	a.persist(context.Background(), id, t)
}

func (a *AuthService) signIn(ctx context.Context, id models.Identity, t client.Tokens) {
	a.mu.Lock()
	a.identity = id
	a.tokens = t
	a.mu.Unlock()

	a.persist(ctx, id, t)
}

// persist failures are non-fatal: the session still works, it just will not
// survive a restart.
func (a *AuthService) persist(ctx context.Context, id models.Identity, t client.Tokens) {
	err := a.store.Save(ctx, models.StoredSession{
		Username:     id.Username,
		UserID:       id.UserID,
		RefreshToken: t.RefreshToken,
		UpdatedAt:    a.now(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		a.log.Warn(ctx, "failed to persist session", "error", err)
	}
}
