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

const videoJobsTable = "video_jobs"

var videoJobColumns = []string{"id", "status", "output_url", "date_from", "date_to", "created_at", "updated_at"}

type sqlVideoJobRepository struct {
	db SQLQuerier
}

// NewSqlVideoJobRepository creates sqlVideoJobRepository that implements port.VideoJobRepository
func NewSqlVideoJobRepository(db SQLQuerier) port.VideoJobRepository {
	return &sqlVideoJobRepository{
		db: db,
	}
}

// Create inserts a pending job
func (s *sqlVideoJobRepository) Create(ctx context.Context, from, to time.Time) (*domain.VideoJob, error) {
	query, args, err := psql.
		Insert(videoJobsTable).
		Columns("status", "date_from", "date_to").
		Values(string(domain.JobStatusPending), from, to).
		Suffix("RETURNING " + joinColumns(videoJobColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building video job insert: %w", err)
	}

	var jobDB dbVideoJob
	if err := jobDB.scan(s.db.QueryRowContext(ctx, query, args...)); err != nil {
		return nil, fmt.Errorf("error inserting video job: %w", err)
	}

	return jobDB.ToDomain(), nil
}

// FindByID finds a job by id
func (s *sqlVideoJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.VideoJob, error) {
	query, args, err := psql.
		Select(videoJobColumns...).
		From(videoJobsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building video job select: %w", err)
	}

	var jobDB dbVideoJob
	if err := jobDB.scan(s.db.QueryRowContext(ctx, query, args...)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoJobNotFound
		}
		return nil, err
	}

	return jobDB.ToDomain(), nil
}

// Transition updates the status only while the job is still in `from`
func (s *sqlVideoJobRepository) Transition(ctx context.Context, id uuid.UUID, from, to domain.JobStatus, outputURL *string) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}

	builder := psql.
		Update(videoJobsTable).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(from)})
	if outputURL != nil {
		builder = builder.Set("output_url", *outputURL)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building video job transition: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM video_jobs WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrVideoJobNotFound
	}
	return fmt.Errorf("%w: job is no longer %s", domain.ErrInvalidTransition, from)
}

// FailStale marks processing jobs not updated since updatedBefore as failed and returns their ids
func (s *sqlVideoJobRepository) FailStale(ctx context.Context, updatedBefore time.Time) ([]uuid.UUID, error) {
	query, args, err := psql.
		Update(videoJobsTable).
		Set("status", string(domain.JobStatusFailed)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"status": string(domain.JobStatusProcessing)},
			sq.Lt{"updated_at": updatedBefore},
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building stale job update: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error failing stale jobs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning job id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stale jobs: %w", err)
	}

	return ids, nil
}

// dbVideoJob represents a video job in DB
type dbVideoJob struct {
	ID        uuid.UUID      `db:"id"`
	Status    string         `db:"status"`
	OutputURL sql.NullString `db:"output_url"`
	DateFrom  time.Time      `db:"date_from"`
	DateTo    time.Time      `db:"date_to"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (j *dbVideoJob) scan(row rowScanner) error {
	return row.Scan(&j.ID, &j.Status, &j.OutputURL, &j.DateFrom, &j.DateTo, &j.CreatedAt, &j.UpdatedAt)
}

// ToDomain converts to domain.VideoJob
func (j *dbVideoJob) ToDomain() *domain.VideoJob {
	job := &domain.VideoJob{
		ID:        j.ID,
		Status:    domain.JobStatus(j.Status),
		DateFrom:  j.DateFrom,
		DateTo:    j.DateTo,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	if j.OutputURL.Valid {
		outputURL := j.OutputURL.String
		job.OutputURL = &outputURL
	}
	return job
}
