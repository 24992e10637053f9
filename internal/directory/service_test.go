package directory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/store"
)

// memStore is an in-memory store.Store for tests.
type memStore struct {
	doc     domain.Document
	has     bool
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load(ctx context.Context) (domain.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.has {
		return nil, store.ErrNotFound
	}
	return m.doc.Clone(), nil
}

func (m *memStore) Save(ctx context.Context, doc domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = doc.Clone()
	m.has = true
	m.saves++
	return nil
}

func testLogger() logger.Logger {
	return logger.New("error", true)
}

func TestGetViewNotFound(t *testing.T) {
	svc := NewService(&memStore{}, testLogger())

	_, err := svc.GetView(context.Background(), false)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}

func TestGetViewProjection(t *testing.T) {
	ms := &memStore{
		has: true,
		doc: domain.Document{
			{Name: "Tools", Sites: []domain.Site{
				{Name: "A", URL: "http://a"},
				{Name: "B", URL: "http://b", Private: true},
			}},
		},
	}
	svc := NewService(ms, testLogger())
	ctx := context.Background()

	anon, err := svc.GetView(ctx, false)
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if len(anon[0].Sites) != 1 || anon[0].Sites[0].Name != "A" {
		t.Errorf("anonymous view should hide private sites, got %+v", anon[0].Sites)
	}

	full, err := svc.GetView(ctx, true)
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if !reflect.DeepEqual(full, ms.doc) {
		t.Errorf("authenticated view should be the full document, got %+v", full)
	}
}

func TestCommitRejectsInvalidDocument(t *testing.T) {
	before := domain.Document{{Name: "Tools", Sites: []domain.Site{{Name: "A", URL: "http://a"}}}}
	ms := &memStore{has: true, doc: before.Clone()}
	svc := NewService(ms, testLogger())

	bad := domain.Document{{Name: "Tools"}, {Name: "Tools"}}
	err := svc.Commit(context.Background(), bad)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *domain.ValidationError", err)
	}
	if ms.saves != 0 {
		t.Error("a rejected commit must not write")
	}
	if !reflect.DeepEqual(ms.doc, before) {
		t.Errorf("persisted document changed after failed commit: %+v", ms.doc)
	}
}

func TestCommitSaves(t *testing.T) {
	ms := &memStore{}
	svc := NewService(ms, testLogger())

	doc := domain.Document{{Name: "Tools", Sites: []domain.Site{{Name: "A", URL: "http://a"}}}}
	if err := svc.Commit(context.Background(), doc); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if ms.saves != 1 || !reflect.DeepEqual(ms.doc, doc) {
		t.Errorf("commit should persist the document, got %+v", ms.doc)
	}
}

func TestCommitWrapsStorageError(t *testing.T) {
	sentinel := errors.New("disk on fire")
	svc := NewService(&memStore{saveErr: sentinel}, testLogger())

	doc := domain.Document{{Name: "Tools", Sites: []domain.Site{{Name: "A", URL: "http://a"}}}}
	err := svc.Commit(context.Background(), doc)
	if !errors.Is(err, sentinel) {
		t.Errorf("storage errors should propagate with cause, got %v", err)
	}
}
