// Package storage persists uploaded resumes on local disk or in S3.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go-jobboard/config"
	"go-jobboard/internal/domain"

	"github.com/google/uuid"
)

// ResumeKey builds a collision-free object key that keeps the original extension.
func ResumeKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "resumes/" + uuid.NewString() + ext
}

// New picks the backend named by STORAGE_PROVIDER.
func New(ctx context.Context, cfg *config.Config) (domain.FileStorage, error) {
	switch cfg.StorageProvider {
	case "", "local":
		return NewLocalStore(cfg.StorageLocalDir)
	case "s3":
		return NewS3Store(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Endpoint:        cfg.S3Endpoint,
		})
	}
	return nil, fmt.Errorf("storage: unknown provider %q", cfg.StorageProvider)
}
