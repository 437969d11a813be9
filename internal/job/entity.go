// AngelaMos | 2026
// entity.go

package job

import (
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Job is a scheduled visit for a client. Status moves freely between the
// three values; there is no enforced transition order.
type Job struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	ClientID    string    `db:"client_id"`
	ScheduledAt time.Time `db:"scheduled_at"`
	PriceCents  int64     `db:"price_cents"`
	Status      string    `db:"status"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	ClientName string `db:"client_name"`
}
