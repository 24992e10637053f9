// Package redis stores the directory document as a single JSON value in
// Redis. This is the default backend.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/store"
)

// KeyDocument is the fixed key holding the whole directory document.
// The document is authoritative data, so it is stored without TTL.
const KeyDocument = "linkdeck:directory:document"

// Store handles Redis persistence for the directory document.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed document store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load reads and decodes the document. Returns store.ErrNotFound when
// nothing has been persisted yet.
func (s *Store) Load(ctx context.Context) (domain.Document, error) {
	data, err := s.client.Get(ctx, KeyDocument).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Save overwrites the whole document. Serialization failures abort
// before anything is written.
func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := s.client.Set(ctx, KeyDocument, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
