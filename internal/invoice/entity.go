// AngelaMos | 2026
// entity.go

package invoice

import (
	"time"
)

const (
	StatusDraft = "draft"
	StatusSent  = "sent"
	StatusPaid  = "paid"
)

// Invoice holds a snapshot total computed from its items at creation.
// The total is never recomputed from stored items afterward.
type Invoice struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	ClientID      string    `db:"client_id"`
	InvoiceNumber string    `db:"invoice_number"`
	IssueDate     time.Time `db:"issue_date"`
	DueDate       time.Time `db:"due_date"`
	TotalCents    int64     `db:"total_cents"`
	Status        string    `db:"status"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type InvoiceItem struct {
	ID             string `db:"id"`
	InvoiceID      string `db:"invoice_id"`
	Description    string `db:"description"`
	Quantity       int64  `db:"quantity"`
	UnitPriceCents int64  `db:"unit_price_cents"`
}

func (i *InvoiceItem) LineTotalCents() int64 {
	return i.Quantity * i.UnitPriceCents
}
