package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"family-timeline/internal/config"
	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the bucket when it does not exist
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("bucket created", "bucket", cfg.BucketName)
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Sign generates a presigned PUT url for a fresh object key under folder
func (a *Adapter) Sign(ctx context.Context, folder string) (*domain.UploadCredential, error) {

	objectKey := folder + "/" + uuid.NewString()

	presignedURL, err := a.client.PresignHeader(ctx, http.MethodPut, a.config.BucketName, objectKey, a.config.PresignDuration, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.PresignDuration)

	return &domain.UploadCredential{
		Provider:  config.UploadProviderMinio,
		Folder:    folder,
		Method:    http.MethodPut,
		UploadURL: presignedURL.String(),
		PublicID:  objectKey,
		PublicURL: a.publicURL(objectKey),
		ExpiresAt: &expiresAt,
	}, nil
}

func (a *Adapter) publicURL(objectKey string) string {
	base := strings.TrimSuffix(a.config.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if a.config.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + a.config.Endpoint
	}
	return base + "/" + a.config.BucketName + "/" + objectKey
}
