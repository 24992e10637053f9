// Package store defines the persistence contract for the directory
// document. The document is one JSON blob under one fixed key; there is
// no per-entity update primitive, only whole-document load and save.
package store

import (
	"context"
	"errors"

	"github.com/linkdeck/linkdeck/internal/domain"
)

// ErrNotFound is returned by Load when no document has been persisted yet.
var ErrNotFound = errors.New("directory document not found")

// Store persists the directory as a single blob.
//
// Save is a full overwrite: callers always supply the complete intended
// document. Two concurrent saves race at last-write-wins granularity,
// which is accepted for a single-operator tool. A save either fully
// replaces the document or fails without side effects.
type Store interface {
	Load(ctx context.Context) (domain.Document, error)
	Save(ctx context.Context, doc domain.Document) error
}
