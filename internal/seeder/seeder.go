// Package seeder pre-populates an empty document store from a YAML seed
// file at startup. A store that already holds a document is never
// touched: the persisted directory is authoritative.
package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkdeck/linkdeck/internal/directory"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/sources/seed"
	"github.com/linkdeck/linkdeck/internal/store"
)

// Seeder loads the seed file and commits it through the normal
// validation path when the store is empty.
type Seeder struct {
	seedFile string
	store    store.Store
	svc      *directory.Service
	logger   logger.Logger
}

// New creates a seeder. An empty seedFile disables seeding.
func New(seedFile string, st store.Store, svc *directory.Service, log logger.Logger) *Seeder {
	return &Seeder{
		seedFile: seedFile,
		store:    st,
		svc:      svc,
		logger:   log,
	}
}

// EnsureSeeded seeds the store if, and only if, it holds no document yet.
// A malformed seed file is a startup failure, not something to limp past.
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	if s.seedFile == "" {
		s.logger.Debug("no seed file configured, skipping seed")
		return nil
	}

	_, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.logger.Info("document already present, skipping seed")
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("failed to check store before seeding: %w", err)
	}

	f, err := seed.NewLoader(s.seedFile).Load()
	if err != nil {
		return fmt.Errorf("seed load failed: %w", err)
	}

	doc := seed.MapDocument(f)
	if err := s.svc.Commit(ctx, doc); err != nil {
		return fmt.Errorf("seed commit failed: %w", err)
	}

	sites := 0
	for _, c := range doc {
		sites += len(c.Sites)
	}
	s.logger.Info("store seeded",
		logger.String("file", s.seedFile),
		logger.Int("categories", len(doc)),
		logger.Int("sites", sites))
	return nil
}
