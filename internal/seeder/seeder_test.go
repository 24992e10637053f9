package seeder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linkdeck/linkdeck/internal/directory"
	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/store"
)

type memStore struct {
	doc   domain.Document
	has   bool
	saves int
}

func (m *memStore) Load(ctx context.Context) (domain.Document, error) {
	if !m.has {
		return nil, store.ErrNotFound
	}
	return m.doc.Clone(), nil
}

func (m *memStore) Save(ctx context.Context, doc domain.Document) error {
	m.doc = doc.Clone()
	m.has = true
	m.saves++
	return nil
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

const validSeed = `
categories:
  - name: Tools
    sites:
      - name: Grafana
        url: https://grafana.example.com
`

func TestEnsureSeededEmptyStore(t *testing.T) {
	ms := &memStore{}
	log := logger.New("error", true)
	s := New(writeSeed(t, validSeed), ms, directory.NewService(ms, log), log)

	if err := s.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded failed: %v", err)
	}
	if ms.saves != 1 {
		t.Fatalf("saves = %d, want 1", ms.saves)
	}
	if ms.doc.Find("Tools") != 0 {
		t.Errorf("seeded document missing Tools category: %+v", ms.doc)
	}
}

func TestEnsureSeededSkipsNonEmptyStore(t *testing.T) {
	existing := domain.Document{{Name: "Existing", Sites: []domain.Site{{Name: "X", URL: "http://x"}}}}
	ms := &memStore{has: true, doc: existing.Clone()}
	log := logger.New("error", true)
	s := New(writeSeed(t, validSeed), ms, directory.NewService(ms, log), log)

	if err := s.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded failed: %v", err)
	}
	if ms.saves != 0 {
		t.Error("a non-empty store must never be overwritten by the seed")
	}
}

func TestEnsureSeededNoFileConfigured(t *testing.T) {
	ms := &memStore{}
	log := logger.New("error", true)
	s := New("", ms, directory.NewService(ms, log), log)

	if err := s.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded failed: %v", err)
	}
	if ms.saves != 0 {
		t.Error("seeding should be disabled without a seed file")
	}
}

func TestEnsureSeededInvalidSeedFails(t *testing.T) {
	// Duplicate category names fail commit validation.
	badSeed := `
categories:
  - name: Tools
  - name: Tools
`
	ms := &memStore{}
	log := logger.New("error", true)
	s := New(writeSeed(t, badSeed), ms, directory.NewService(ms, log), log)

	err := s.EnsureSeeded(context.Background())
	if err == nil {
		t.Fatal("invalid seed should fail startup")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("err = %v, want a wrapped *domain.ValidationError", err)
	}
	if ms.saves != 0 {
		t.Error("invalid seed must not be persisted")
	}
}
