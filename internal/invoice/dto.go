// AngelaMos | 2026
// dto.go

package invoice

import (
	"time"
)

type CreateItemRequest struct {
	Description    string `json:"description"      validate:"required,max=500"`
	Quantity       int64  `json:"quantity"         validate:"required,gt=0"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	ClientID  string              `json:"client_id"  validate:"required,uuid"`
	IssueDate time.Time           `json:"issue_date" validate:"required"`
	DueDate   time.Time           `json:"due_date"   validate:"required"`
	Notes     string              `json:"notes"      validate:"max=2000"`
	Items     []CreateItemRequest `json:"items"      validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid"`
}

type ItemResponse struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type InvoiceResponse struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"client_id"`
	InvoiceNumber string         `json:"invoice_number"`
	IssueDate     time.Time      `json:"issue_date"`
	DueDate       time.Time      `json:"due_date"`
	TotalCents    int64          `json:"total_cents"`
	Total         string         `json:"total"`
	Status        string         `json:"status"`
	Notes         string         `json:"notes"`
	Items         []ItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
