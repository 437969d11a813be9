// AngelaMos | 2026
// repository.go

package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, userID, id string) (*Job, error)
	ListByUser(ctx context.Context, userID string) ([]Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, userID, id string) error

	// ListScheduledBetween returns scheduled jobs across all accounts whose
	// time falls in [start, end). Used by the daily reminder.
	ListScheduledBetween(ctx context.Context, start, end time.Time) ([]Job, error)

	CountScheduledBetween(
		ctx context.Context,
		userID string,
		start, end time.Time,
	) (int, error)
	SumCompletedRevenueBetween(
		ctx context.Context,
		userID string,
		start, end time.Time,
	) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const jobColumns = `
	j.id, j.user_id, j.client_id, j.scheduled_at, j.price_cents, j.status,
	j.notes, j.created_at, j.updated_at, c.name AS client_name`

func (r *repository) Create(ctx context.Context, j *Job) error {
	query := `
		INSERT INTO jobs (id, user_id, client_id, scheduled_at, price_cents, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		j.ID,
		j.UserID,
		j.ClientID,
		j.ScheduledAt,
		j.PriceCents,
		j.Status,
		j.Notes,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create job: %w", core.ClassifyPgError(err))
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN clients c ON c.id = j.client_id
		WHERE j.id = $1 AND j.user_id = $2`

	var j Job
	err := r.db.GetContext(ctx, &j, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get job: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", core.ClassifyPgError(err))
	}

	return &j, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN clients c ON c.id = j.client_id
		WHERE j.user_id = $1
		ORDER BY j.scheduled_at DESC`

	jobs := []Job{}
	err := r.db.SelectContext(ctx, &jobs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", core.ClassifyPgError(err))
	}

	return jobs, nil
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	query := `
		UPDATE jobs
		SET client_id = $3, scheduled_at = $4, price_cents = $5, status = $6,
			notes = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		j.ID,
		j.UserID,
		j.ClientID,
		j.ScheduledAt,
		j.PriceCents,
		j.Status,
		j.Notes,
	).Scan(&j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update job: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update job: %w", core.ClassifyPgError(err))
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM jobs WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete job: %w", core.ClassifyPgError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete job: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListScheduledBetween(
	ctx context.Context,
	start, end time.Time,
) ([]Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN clients c ON c.id = j.client_id
		WHERE j.status = $1 AND j.scheduled_at >= $2 AND j.scheduled_at < $3
		ORDER BY j.scheduled_at ASC`

	jobs := []Job{}
	err := r.db.SelectContext(ctx, &jobs, query, StatusScheduled, start, end)
	if err != nil {
		return nil, fmt.Errorf(
			"list scheduled jobs: %w",
			core.ClassifyPgError(err),
		)
	}

	return jobs, nil
}

func (r *repository) CountScheduledBetween(
	ctx context.Context,
	userID string,
	start, end time.Time,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM jobs
		WHERE user_id = $1 AND status = $2
			AND scheduled_at >= $3 AND scheduled_at < $4`

	var count int
	err := r.db.GetContext(ctx, &count, query,
		userID, StatusScheduled, start, end)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", core.ClassifyPgError(err))
	}

	return count, nil
}

func (r *repository) SumCompletedRevenueBetween(
	ctx context.Context,
	userID string,
	start, end time.Time,
) (int64, error) {
	query := `
		SELECT COALESCE(SUM(price_cents), 0)
		FROM jobs
		WHERE user_id = $1 AND status = $2
			AND scheduled_at >= $3 AND scheduled_at < $4`

	var total int64
	err := r.db.GetContext(ctx, &total, query,
		userID, StatusCompleted, start, end)
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", core.ClassifyPgError(err))
	}

	return total, nil
}
