// Package appreciations records which user appreciated which entry.
package appreciations

import "context"

type Repository interface {
	// Create returns common.ErrorAlreadyExists when userID has already
	// appreciated entryID.
	Create(ctx context.Context, entryID uint64, userID string) error
}
