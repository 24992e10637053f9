// Package directory orchestrates the read and write paths of the
// directory: load → project for reads, validate → save for writes.
package directory

import (
	"context"
	"fmt"

	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/store"
)

// Service is the sync controller between the document store and callers.
type Service struct {
	store store.Store
	log   logger.Logger
}

// NewService creates a directory service on top of a document store.
func NewService(st store.Store, log logger.Logger) *Service {
	return &Service{store: st, log: log}
}

// GetView loads the document and projects it for the given auth state.
// store.ErrNotFound passes through when nothing is persisted yet.
func (s *Service) GetView(ctx context.Context, authenticated bool) (domain.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	view := domain.Project(doc, authenticated)
	s.log.Debug("directory view served",
		logger.Bool("authenticated", authenticated),
		logger.Int("categories", len(view)))
	return view, nil
}

// Commit validates the document invariants and persists the whole
// document. A validation failure aborts the save entirely; the persisted
// document is left untouched.
func (s *Service) Commit(ctx context.Context, doc domain.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	sites := 0
	for _, c := range doc {
		sites += len(c.Sites)
	}
	s.log.Info("directory committed",
		logger.Int("categories", len(doc)),
		logger.Int("sites", sites))
	return nil
}
