// Package storage archives RFQ submissions as JSON documents in an
// S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"time"
)

// ContentTypeJSON is the content type of every archived document.
const ContentTypeJSON = "application/json"

// ErrNotFound is returned when a key has no object behind it.
var ErrNotFound = errors.New("archive object not found")

// Document describes one archived object.
type Document struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	Modified    time.Time
	Labels      map[string]string
}

// Archive stores and serves JSON documents by key.
type Archive interface {
	// PutJSON encodes v and uploads it under key.
	PutJSON(ctx context.Context, key string, v any, labels map[string]string) (Document, error)
	// Open streams a document. Callers close the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, Document, error)
	// Remove deletes a document; removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// SignedURL returns a download URL valid for ttl.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// RFQKey is the archive key of an RFQ document.
func RFQKey(id string) string {
	return path.Join("rfqs", id+".json")
}
