package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"family-timeline/internal/core/domain"
	"family-timeline/internal/core/port"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const photosTable = "photos"

var photoColumns = []string{"id", "url", "public_id", "taken_at", "description", "uploaded_at"}

type sqlPhotoRepository struct {
	db SQLQuerier
}

// NewSqlPhotoRepository creates sqlPhotoRepository that implements port.PhotoRepository
func NewSqlPhotoRepository(db SQLQuerier) port.PhotoRepository {
	return &sqlPhotoRepository{
		db: db,
	}
}

// Create inserts a photo and returns it as stored
func (s *sqlPhotoRepository) Create(ctx context.Context, photo domain.NewPhoto) (*domain.Photo, error) {
	query, args, err := psql.
		Insert(photosTable).
		Columns("url", "public_id", "taken_at", "description").
		Values(photo.URL, photo.PublicID, photo.TakenAt, photo.Description).
		Suffix("RETURNING " + joinColumns(photoColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building photo insert: %w", err)
	}

	var photoDB dbPhoto
	if err := photoDB.scan(s.db.QueryRowContext(ctx, query, args...)); err != nil {
		return nil, fmt.Errorf("error inserting photo: %w", err)
	}

	return photoDB.ToDomain(), nil
}

// FindByID finds a photo by id
func (s *sqlPhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	query, args, err := psql.
		Select(photoColumns...).
		From(photosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building photo select: %w", err)
	}

	var photoDB dbPhoto
	if err := photoDB.scan(s.db.QueryRowContext(ctx, query, args...)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}

	return photoDB.ToDomain(), nil
}

// List retrieves photos newest first with keyset pagination on (taken_at, id).
// The returned cursor is the id of the last photo of the page, nil on the last page.
// A cursor whose photo has been deleted ends the listing.
func (s *sqlPhotoRepository) List(ctx context.Context, limit int, cursor *uuid.UUID) ([]domain.Photo, *uuid.UUID, error) {
	limit = domain.ClampPageSize(limit)

	builder := psql.
		Select(photoColumns...).
		From(photosTable).
		OrderBy("taken_at DESC", "id DESC").
		Limit(uint64(limit + 1))

	if cursor != nil {
		cursorPhoto, err := s.FindByID(ctx, *cursor)
		if err != nil {
			if errors.Is(err, domain.ErrPhotoNotFound) {
				return []domain.Photo{}, nil, nil
			}
			return nil, nil, fmt.Errorf("error resolving cursor: %w", err)
		}
		builder = builder.Where(sq.Expr("(taken_at, id) < (?, ?)", cursorPhoto.TakenAt, cursorPhoto.ID))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("error building photo list: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying photos: %w", err)
	}
	defer rows.Close()

	photos := make([]domain.Photo, 0, limit)
	for rows.Next() {
		var photoDB dbPhoto
		if err := photoDB.scan(rows); err != nil {
			return nil, nil, fmt.Errorf("error scanning photo: %w", err)
		}
		photos = append(photos, *photoDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating photos: %w", err)
	}

	var nextCursor *uuid.UUID
	if len(photos) > limit {
		photos = photos[:limit]
		lastID := photos[len(photos)-1].ID
		nextCursor = &lastID
	}

	return photos, nextCursor, nil
}

// Update applies a partial update and returns the updated photo
func (s *sqlPhotoRepository) Update(ctx context.Context, id uuid.UUID, patch domain.PhotoPatch) (*domain.Photo, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	builder := psql.
		Update(photosTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(photoColumns))

	if patch.TakenAt != nil {
		builder = builder.Set("taken_at", *patch.TakenAt)
	}
	if patch.SetDescription {
		builder = builder.Set("description", patch.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building photo update: %w", err)
	}

	var photoDB dbPhoto
	if err := photoDB.scan(s.db.QueryRowContext(ctx, query, args...)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error updating photo: %w", err)
	}

	return photoDB.ToDomain(), nil
}

// Delete deletes a photo row
func (s *sqlPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.
		Delete(photosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building photo delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

// dbPhoto represents a photo in DB
type dbPhoto struct {
	ID          uuid.UUID      `db:"id"`
	URL         string         `db:"url"`
	PublicID    string         `db:"public_id"`
	TakenAt     time.Time      `db:"taken_at"`
	Description sql.NullString `db:"description"`
	UploadedAt  time.Time      `db:"uploaded_at"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (p *dbPhoto) scan(row rowScanner) error {
	return row.Scan(&p.ID, &p.URL, &p.PublicID, &p.TakenAt, &p.Description, &p.UploadedAt)
}

// ToDomain converts to domain.Photo
func (p *dbPhoto) ToDomain() *domain.Photo {
	photo := &domain.Photo{
		ID:         p.ID,
		URL:        p.URL,
		PublicID:   p.PublicID,
		TakenAt:    p.TakenAt,
		UploadedAt: p.UploadedAt,
	}
	if p.Description.Valid {
		description := p.Description.String
		photo.Description = &description
	}
	return photo
}
