package port

import (
	"context"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

// PhotoRepository is an interface to define photo repository interactions
type PhotoRepository interface {
	Create(ctx context.Context, photo domain.NewPhoto) (*domain.Photo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	List(ctx context.Context, limit int, cursor *uuid.UUID) ([]domain.Photo, *uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.PhotoPatch) (*domain.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PhotoService is an interface to define photo service
type PhotoService interface {
	CreatePhoto(ctx context.Context, photo domain.NewPhoto) (*domain.Photo, error)
	ListPhotos(ctx context.Context, limit int, cursor *uuid.UUID) ([]domain.Photo, *uuid.UUID, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, patch domain.PhotoPatch) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}
