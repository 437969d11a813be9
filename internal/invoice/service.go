// AngelaMos | 2026
// service.go

package invoice

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

// numberAttempts bounds regeneration when a random invoice number collides
// with an existing one for the same account.
const numberAttempts = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GenerateInvoiceNumber produces INV-<year>-<4 digits>. Uniqueness per
// account is enforced by the database; callers retry on collision.
func GenerateInvoiceNumber(year int) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%d-%04d", year, n.Int64()), nil
}

// ComputeTotalCents sums quantity times unit price over the item set. The
// result is stored on the invoice and never recomputed.
func ComputeTotalCents(items []InvoiceItem) int64 {
	var total int64
	for i := range items {
		total += items[i].LineTotalCents()
	}
	return total
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateInvoiceRequest,
) (*Invoice, []InvoiceItem, error) {
	invoiceID := uuid.New().String()

	items := make([]InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, InvoiceItem{
			ID:             uuid.New().String(),
			InvoiceID:      invoiceID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		})
	}

	inv := &Invoice{
		ID:         invoiceID,
		UserID:     userID,
		ClientID:   req.ClientID,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		TotalCents: ComputeTotalCents(items),
		Status:     StatusDraft,
		Notes:      req.Notes,
	}

	year := s.now().Year()

	for attempt := 0; attempt < numberAttempts; attempt++ {
		number, err := GenerateInvoiceNumber(year)
		if err != nil {
			return nil, nil, err
		}
		inv.InvoiceNumber = number

		err = s.repo.CreateWithItems(ctx, inv, items)
		if err == nil {
			return inv, items, nil
		}
		if !errors.Is(err, core.ErrDuplicateKey) {
			return nil, nil, err
		}
	}

	return nil, nil, fmt.Errorf(
		"create invoice: exhausted invoice number attempts: %w",
		core.ErrDuplicateKey,
	)
}

func (s *Service) GetByID(
	ctx context.Context,
	userID, id string,
) (*Invoice, []InvoiceItem, error) {
	inv, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.ListItems(ctx, inv.ID)
	if err != nil {
		return nil, nil, err
	}

	return inv, items, nil
}

// GetForOwner fetches without scoping so the caller can tell a missing
// invoice (ErrNotFound) from one owned by a different account (ErrForbidden).
// The forbidden case never returns invoice contents.
func (s *Service) GetForOwner(
	ctx context.Context,
	userID, id string,
) (*Invoice, []InvoiceItem, error) {
	inv, err := s.repo.GetByIDUnscoped(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if inv.UserID != userID {
		return nil, nil, fmt.Errorf("get invoice: %w", core.ErrForbidden)
	}

	items, err := s.repo.ListItems(ctx, inv.ID)
	if err != nil {
		return nil, nil, err
	}

	return inv, items, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Invoice, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	userID, id, status string,
) error {
	return s.repo.UpdateStatus(ctx, userID, id, status)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// ExportCSV writes every invoice for the user as CSV rows with a header line.
func (s *Service) ExportCSV(
	ctx context.Context,
	userID string,
	w io.Writer,
) error {
	invoices, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := []string{
		"invoice_number", "issue_date", "due_date", "total_cents", "status",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, inv := range invoices {
		record := []string{
			inv.InvoiceNumber,
			inv.IssueDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			strconv.FormatInt(inv.TotalCents, 10),
			inv.Status,
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

func ToInvoiceResponse(inv *Invoice, items []InvoiceItem) InvoiceResponse {
	itemResp := make([]ItemResponse, 0, len(items))
	for i := range items {
		itemResp = append(itemResp, ItemResponse{
			ID:             items[i].ID,
			Description:    items[i].Description,
			Quantity:       items[i].Quantity,
			UnitPriceCents: items[i].UnitPriceCents,
			LineTotalCents: items[i].LineTotalCents(),
		})
	}

	return InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		TotalCents:    inv.TotalCents,
		Total:         core.FormatCents(inv.TotalCents),
		Status:        inv.Status,
		Notes:         inv.Notes,
		Items:         itemResp,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
