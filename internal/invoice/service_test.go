// AngelaMos | 2026
// service_test.go

package invoice

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type fakeRepo struct {
	Repository

	created     []*Invoice
	items       map[string][]InvoiceItem
	failCreates int
	invoices    map[string]*Invoice
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:    map[string][]InvoiceItem{},
		invoices: map[string]*Invoice{},
	}
}

func (f *fakeRepo) CreateWithItems(
	_ context.Context,
	inv *Invoice,
	items []InvoiceItem,
) error {
	if f.failCreates > 0 {
		f.failCreates--
		return core.ErrDuplicateKey
	}
	copied := *inv
	f.created = append(f.created, &copied)
	f.invoices[inv.ID] = &copied
	f.items[inv.ID] = items
	return nil
}

func (f *fakeRepo) GetByIDUnscoped(
	_ context.Context,
	id string,
) (*Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return inv, nil
}

func (f *fakeRepo) ListItems(
	_ context.Context,
	invoiceID string,
) ([]InvoiceItem, error) {
	return f.items[invoiceID], nil
}

func TestComputeTotalCents(t *testing.T) {
	items := []InvoiceItem{
		{Quantity: 2, UnitPriceCents: 1500},
		{Quantity: 1, UnitPriceCents: 250},
		{Quantity: 3, UnitPriceCents: 0},
	}

	if got := ComputeTotalCents(items); got != 3250 {
		t.Fatalf("ComputeTotalCents = %d, want 3250", got)
	}

	if got := ComputeTotalCents(nil); got != 0 {
		t.Fatalf("ComputeTotalCents(nil) = %d, want 0", got)
	}
}

func TestGenerateInvoiceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-2026-\d{4}$`)

	for i := 0; i < 50; i++ {
		number, err := GenerateInvoiceNumber(2026)
		if err != nil {
			t.Fatalf("GenerateInvoiceNumber: %v", err)
		}
		if !pattern.MatchString(number) {
			t.Fatalf("number %q does not match %s", number, pattern)
		}
	}
}

func TestCreateComputesSnapshotTotal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := CreateInvoiceRequest{
		ClientID:  "client-1",
		IssueDate: time.Now(),
		DueDate:   time.Now().AddDate(0, 0, 14),
		Items: []CreateItemRequest{
			{Description: "Mowing", Quantity: 2, UnitPriceCents: 2500},
			{Description: "Edging", Quantity: 1, UnitPriceCents: 1000},
		},
	}

	inv, items, err := svc.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if inv.TotalCents != 6000 {
		t.Fatalf("TotalCents = %d, want 6000", inv.TotalCents)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if inv.Status != StatusDraft {
		t.Fatalf("status = %q, want %q", inv.Status, StatusDraft)
	}
	if inv.ClientID != "client-1" {
		t.Fatalf("client_id = %q, want client-1", inv.ClientID)
	}

	for _, it := range items {
		if it.InvoiceID != inv.ID {
			t.Fatalf("item invoice_id = %q, want %q", it.InvoiceID, inv.ID)
		}
	}
}

func TestCreateRetriesOnDuplicateNumber(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreates = 2
	svc := NewService(repo)

	req := CreateInvoiceRequest{
		ClientID:  "client-1",
		IssueDate: time.Now(),
		DueDate:   time.Now(),
		Items: []CreateItemRequest{
			{Description: "Visit", Quantity: 1, UnitPriceCents: 100},
		},
	}

	inv, _, err := svc.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create should succeed after retries: %v", err)
	}
	if inv.InvoiceNumber == "" {
		t.Fatal("invoice number not set")
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d invoices, want 1", len(repo.created))
	}
}

func TestCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreates = numberAttempts
	svc := NewService(repo)

	req := CreateInvoiceRequest{
		ClientID:  "client-1",
		IssueDate: time.Now(),
		DueDate:   time.Now(),
		Items: []CreateItemRequest{
			{Description: "Visit", Quantity: 1, UnitPriceCents: 100},
		},
	}

	_, _, err := svc.Create(context.Background(), "user-1", req)
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetForOwnerHidesForeignInvoices(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	repo.invoices["inv-1"] = &Invoice{ID: "inv-1", UserID: "owner"}

	_, _, err := svc.GetForOwner(context.Background(), "intruder", "inv-1")
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_, _, err = svc.GetForOwner(context.Background(), "owner", "missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	inv, _, err := svc.GetForOwner(context.Background(), "owner", "inv-1")
	if err != nil {
		t.Fatalf("owner fetch failed: %v", err)
	}
	if inv.ID != "inv-1" {
		t.Fatalf("got invoice %q", inv.ID)
	}
}
