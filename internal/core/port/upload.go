package port

import (
	"context"

	"family-timeline/internal/core/domain"
)

// UploadSigner issues credentials against a media host
type UploadSigner interface {
	Sign(ctx context.Context, folder string) (*domain.UploadCredential, error)
}

// UploadService is an interface to define upload service
type UploadService interface {
	SignUpload(ctx context.Context, folder string) (*domain.UploadCredential, error)
}
