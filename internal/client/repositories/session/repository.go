// Package session persists the signed-in user's refresh token in the local
// sqlite database so that the next start can restore the session silently.
package session

import (
	"context"

	"github.com/dmitrijs2005/gratilog/internal/client/models"
)

// Repository holds at most one stored session.
type Repository interface {
	// Load returns (nil, nil) when nothing is stored.
	Load(ctx context.Context) (*models.StoredSession, error)
	Save(ctx context.Context, s models.StoredSession) error
	Clear(ctx context.Context) error
}
