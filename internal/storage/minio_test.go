package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"capilia/internal/config"
)

func TestNewMinIOValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		msg  string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, msg: "endpoint"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"}, msg: "credentials"},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, msg: "bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewMinIO(context.Background(), tt.cfg)
			assert.Nil(t, a)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestMapError(t *testing.T) {
	err := mapError("rfqs/x.json", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "rfqs/x.json")

	err = mapError("rfqs/x.json", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.ErrorContains(t, err, "get rfqs/x.json")
}

func TestRFQKey(t *testing.T) {
	assert.Equal(t, "rfqs/0b6c.json", RFQKey("0b6c"))
}
