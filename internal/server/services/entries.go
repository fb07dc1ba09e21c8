package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gratilog/internal/common"
	"github.com/dmitrijs2005/gratilog/internal/dbx"
	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/repomanager"
)

// EntryService owns the journal rules: validation, author-only deletion and
// one appreciation per user on other people's public entries.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{db: db, repomanager: m}
}

// Create stores a new entry owned by userID. Validation failures are the
// journal.Err* values.
func (s *EntryService) Create(ctx context.Context, userID string, in journal.EntryInput) (uint64, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := in.Validate(); err != nil {
		return 0, err
	}

	e, err := s.repomanager.Entries(s.db).Create(ctx, models.NewEntry(userID, in))
	if err != nil {
		return 0, fmt.Errorf("error creating entry: %w", err)
	}
	return e.ID, nil
}

func (s *EntryService) ListMine(ctx context.Context, userID string) ([]journal.Entry, error) {
	rows, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return models.EntriesToDomain(rows), nil
}

func (s *EntryService) ListPublic(ctx context.Context) ([]journal.Entry, error) {
	rows, err := s.repomanager.Entries(s.db).ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing public entries: %w", err)
	}
	return models.EntriesToDomain(rows), nil
}

// Delete removes the entry when userID is its author. Anything else,
// including someone else's entry, is common.ErrorEntryNotFound.
func (s *EntryService) Delete(ctx context.Context, userID string, id uint64) error {
	err := s.repomanager.Entries(s.db).Delete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorEntryNotFound
		}
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}

// Appreciate records userID's appreciation of entry id and returns the new
// count. The record and the counter change in one transaction.
func (s *EntryService) Appreciate(ctx context.Context, userID string, id uint64) (uint64, error) {
	var count uint64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		entries := s.repomanager.Entries(tx)

		e, err := entries.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorEntryNotFound
			}
			return fmt.Errorf("error loading entry: %w", err)
		}
		if !e.IsPublic {
			return common.ErrorEntryNotFound
		}
		if e.UserID == userID {
			return common.ErrorSelfAppreciation
		}

		if err := s.repomanager.Appreciations(tx).Create(ctx, id, userID); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorAlreadyAppreciated
			}
			return fmt.Errorf("error recording appreciation: %w", err)
		}

		count, err = entries.IncrementAppreciations(ctx, id)
		if err != nil {
			return fmt.Errorf("error updating appreciations: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
