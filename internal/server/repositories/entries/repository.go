// Package entries stores journal entries and their denormalised
// appreciation counters.
package entries

import (
	"context"

	"github.com/dmitrijs2005/gratilog/internal/server/models"
)

// Totals are service-wide entry counters.
type Totals struct {
	Entries       uint64
	Public        uint64
	Appreciations uint64
}

type Repository interface {
	// Create inserts entry and fills its ID, CreatedAt and Appreciations.
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)

	// GetByID returns common.ErrorNotFound for unknown ids.
	GetByID(ctx context.Context, id uint64) (*models.Entry, error)

	// ListByUser and ListPublic return newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Entry, error)
	ListPublic(ctx context.Context) ([]*models.Entry, error)

	// Delete removes the entry only when userID owns it, and returns
	// common.ErrorNotFound otherwise.
	Delete(ctx context.Context, id uint64, userID string) error

	IncrementAppreciations(ctx context.Context, id uint64) (uint64, error)
	Totals(ctx context.Context) (Totals, error)
}
