// Package object stores the directory document as a single object in an
// S3-compatible bucket (MinIO, R2, S3). Useful when the static site and
// the document live in the same bucket.
package object

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/linkdeck/linkdeck/internal/domain"
	"github.com/linkdeck/linkdeck/internal/store"
	"github.com/linkdeck/linkdeck/internal/utils"
)

// Options configures the bucket connection and the document location.
type Options struct {
	Endpoint  string // ex: "s3.example.com:9000"
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	ObjectKey string // ex: "sites.json"
}

// Store handles object-storage persistence for the directory document.
type Store struct {
	client *minio.Client
	bucket string
	key    string
}

// New creates an object-storage document store.
func New(opts Options) (*Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return &Store{client: client, bucket: opts.Bucket, key: opts.ObjectKey}, nil
}

// Load reads and decodes the document object. Returns store.ErrNotFound
// when the object does not exist.
func (s *Store) Load(ctx context.Context) (domain.Document, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get document object: %w", err)
	}
	defer utils.Close(obj)

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject defers the existence check to the first read.
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document object: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Save overwrites the document object in one put.
func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to save document object: %w", err)
	}
	return nil
}
