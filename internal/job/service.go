// AngelaMos | 2026
// service.go

package job

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateJobRequest,
) (*Job, error) {
	status := req.Status
	if status == "" {
		status = StatusScheduled
	}

	j := &Job{
		ID:          uuid.New().String(),
		UserID:      userID,
		ClientID:    req.ClientID,
		ScheduledAt: req.ScheduledAt,
		PriceCents:  req.PriceCents,
		Status:      status,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID, j.ID)
}

func (s *Service) GetByID(
	ctx context.Context,
	userID, id string,
) (*Job, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Job, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateJobRequest,
) (*Job, error) {
	j := &Job{
		ID:          id,
		UserID:      userID,
		ClientID:    req.ClientID,
		ScheduledAt: req.ScheduledAt,
		PriceCents:  req.PriceCents,
		Status:      req.Status,
		Notes:       req.Notes,
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// TodayWindow returns [midnight, next midnight) in server-local time.
func TodayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0,
		now.Location(),
	)
	return start, start.AddDate(0, 0, 1)
}

// JobsToday returns scheduled jobs across all accounts for the current
// server-local day.
func (s *Service) JobsToday(ctx context.Context) ([]Job, error) {
	start, end := TodayWindow(s.now())
	return s.repo.ListScheduledBetween(ctx, start, end)
}

// Stats summarizes the user's schedule: scheduled jobs today, scheduled jobs
// in the next seven days, and completed revenue over the trailing seven days.
func (s *Service) Stats(
	ctx context.Context,
	userID string,
) (*DashboardStats, error) {
	now := s.now()
	dayStart, dayEnd := TodayWindow(now)

	today, err := s.repo.CountScheduledBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.repo.CountScheduledBetween(
		ctx,
		userID,
		dayStart,
		dayStart.AddDate(0, 0, 7),
	)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.SumCompletedRevenueBetween(
		ctx,
		userID,
		dayStart.AddDate(0, 0, -7),
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		JobsToday:        today,
		UpcomingJobs:     upcoming,
		WeekRevenueCents: revenue,
		WeekRevenue:      core.FormatCents(revenue),
	}, nil
}

// ExportCSV writes every job for the user as CSV rows with a header line.
func (s *Service) ExportCSV(
	ctx context.Context,
	userID string,
	w io.Writer,
) error {
	jobs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := []string{
		"client", "scheduled_at", "price", "status", "notes",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, j := range jobs {
		record := []string{
			j.ClientName,
			j.ScheduledAt.Format(time.RFC3339),
			strconv.FormatInt(j.PriceCents, 10),
			j.Status,
			j.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func ToJobResponse(j *Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		ClientID:    j.ClientID,
		ClientName:  j.ClientName,
		ScheduledAt: j.ScheduledAt,
		PriceCents:  j.PriceCents,
		Price:       core.FormatCents(j.PriceCents),
		Status:      j.Status,
		Notes:       j.Notes,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
