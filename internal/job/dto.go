// AngelaMos | 2026
// dto.go

package job

import (
	"time"
)

type CreateJobRequest struct {
	ClientID    string    `json:"client_id"    validate:"required,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	PriceCents  int64     `json:"price_cents"  validate:"gte=0"`
	Status      string    `json:"status"       validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes       string    `json:"notes"        validate:"max=2000"`
}

type UpdateJobRequest struct {
	ClientID    string    `json:"client_id"    validate:"required,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	PriceCents  int64     `json:"price_cents"  validate:"gte=0"`
	Status      string    `json:"status"       validate:"required,oneof=scheduled completed cancelled"`
	Notes       string    `json:"notes"        validate:"max=2000"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	PriceCents  int64     `json:"price_cents"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

type DashboardStats struct {
	JobsToday        int    `json:"jobs_today"`
	UpcomingJobs     int    `json:"upcoming_jobs"`
	WeekRevenueCents int64  `json:"week_revenue_cents"`
	WeekRevenue      string `json:"week_revenue"`
}
