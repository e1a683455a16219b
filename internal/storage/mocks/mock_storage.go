package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"capilia/internal/storage"
)

// MockArchive is a testify mock of storage.Archive.
type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) PutJSON(ctx context.Context, key string, v any, labels map[string]string) (storage.Document, error) {
	args := m.Called(ctx, key, v, labels)
	return args.Get(0).(storage.Document), args.Error(1)
}

func (m *MockArchive) Open(ctx context.Context, key string) (io.ReadCloser, storage.Document, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, storage.Document{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.Document), args.Error(2)
}

func (m *MockArchive) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockArchive) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
