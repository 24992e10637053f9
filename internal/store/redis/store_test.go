package redis

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/store"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestLoadNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Load() on empty store: err = %v, want store.ErrNotFound", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	doc := domain.Document{
		{Name: "Tools", Sites: []domain.Site{
			{Name: "A", URL: "http://a", Desc: "alpha"},
			{Name: "B", URL: "http://b", Private: true},
		}},
		{Name: "Media", Sites: []domain.Site{}},
	}

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := domain.Document{{Name: "Tools", Sites: []domain.Site{{Name: "A", URL: "http://a"}}}}
	second := domain.Document{{Name: "Media", Sites: []domain.Site{}}}

	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("save should fully replace the document, got %+v", got)
	}
}

func TestDocumentKeyHasNoTTL(t *testing.T) {
	s, mr := newTestStore(t)

	if err := s.Save(context.Background(), domain.Document{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if mr.TTL(KeyDocument) != 0 {
		t.Errorf("document key must not expire, got ttl %v", mr.TTL(KeyDocument))
	}
}
