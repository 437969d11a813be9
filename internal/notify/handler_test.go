// AngelaMos | 2026
// handler_test.go

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fieldpro/fieldpro-api/internal/client"
	"github.com/fieldpro/fieldpro-api/internal/company"
	"github.com/fieldpro/fieldpro-api/internal/config"
	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/email"
	"github.com/fieldpro/fieldpro-api/internal/invoice"
	"github.com/fieldpro/fieldpro-api/internal/job"
	"github.com/fieldpro/fieldpro-api/internal/middleware"
)

type fakeInvoiceRepo struct {
	invoice.Repository

	invoices map[string]*invoice.Invoice
}

func (f *fakeInvoiceRepo) GetByIDUnscoped(
	_ context.Context,
	id string,
) (*invoice.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvoiceRepo) ListItems(
	_ context.Context,
	_ string,
) ([]invoice.InvoiceItem, error) {
	return []invoice.InvoiceItem{
		{Description: "Visit", Quantity: 1, UnitPriceCents: 2500},
	}, nil
}

type fakeClientRepo struct {
	client.Repository
}

func (f *fakeClientRepo) GetByID(
	_ context.Context,
	_, _ string,
) (*client.Client, error) {
	return &client.Client{Name: "Dana Alvarez"}, nil
}

type fakeCompanyRepo struct {
	company.Repository

	profile *company.Profile
}

func (f *fakeCompanyRepo) GetByUserID(
	_ context.Context,
	_ string,
) (*company.Profile, error) {
	if f.profile != nil {
		return f.profile, nil
	}
	return &company.Profile{CompanyName: "GreenLine Lawn Care"}, nil
}

type fakeJobRepo struct {
	job.Repository

	jobs []job.Job
}

func (f *fakeJobRepo) ListScheduledBetween(
	_ context.Context,
	_, _ time.Time,
) ([]job.Job, error) {
	return f.jobs, nil
}

type recordingSender struct {
	sent []email.Message
	fail error
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) error {
	if s.fail != nil {
		return s.fail
	}
	s.sent = append(s.sent, msg)
	return nil
}

func newTestHandler(
	sender email.Sender,
	cfg config.EmailConfig,
	invRepo *fakeInvoiceRepo,
	jobRepo *fakeJobRepo,
) *Handler {
	if invRepo == nil {
		invRepo = &fakeInvoiceRepo{invoices: map[string]*invoice.Invoice{}}
	}
	if jobRepo == nil {
		jobRepo = &fakeJobRepo{}
	}
	return NewHandler(
		invoice.NewService(invRepo),
		client.NewService(&fakeClientRepo{}),
		company.NewService(&fakeCompanyRepo{}),
		job.NewService(jobRepo),
		sender,
		cfg,
		"https://app.fieldpro.example",
	)
}

func authedRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, "user-1")
	return r.WithContext(ctx)
}

func testConfig() config.EmailConfig {
	return config.EmailConfig{
		FromAddress: "noreply@fieldpro.app",
		NotifyEmail: "owner@example.com",
	}
}

func TestSendInvoiceMissingFields(t *testing.T) {
	h := newTestHandler(&recordingSender{}, testConfig(), nil, nil)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": ""}`,
	))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSendInvoiceNotFound(t *testing.T) {
	h := newTestHandler(&recordingSender{}, testConfig(), nil, nil)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": "missing", "clientEmail": "dana@example.com"}`,
	))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSendInvoiceForeignOwnerIsForbidden(t *testing.T) {
	invRepo := &fakeInvoiceRepo{invoices: map[string]*invoice.Invoice{
		"inv-1": {
			ID:            "inv-1",
			UserID:        "someone-else",
			InvoiceNumber: "INV-2026-9999",
			TotalCents:    12345,
		},
	}}
	sender := &recordingSender{}
	h := newTestHandler(sender, testConfig(), invRepo, nil)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": "inv-1", "clientEmail": "dana@example.com"}`,
	))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if strings.Contains(w.Body.String(), "INV-2026-9999") ||
		strings.Contains(w.Body.String(), "12345") {
		t.Fatal("forbidden response must not leak invoice contents")
	}
	if len(sender.sent) != 0 {
		t.Fatal("no email should be sent")
	}
}

func TestSendInvoiceWithoutProviderFails(t *testing.T) {
	invRepo := &fakeInvoiceRepo{invoices: map[string]*invoice.Invoice{
		"inv-1": {ID: "inv-1", UserID: "user-1"},
	}}
	h := newTestHandler(nil, testConfig(), invRepo, nil)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": "inv-1", "clientEmail": "dana@example.com"}`,
	))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestSendInvoiceSuccess(t *testing.T) {
	invRepo := &fakeInvoiceRepo{invoices: map[string]*invoice.Invoice{
		"inv-1": {
			ID:            "inv-1",
			UserID:        "user-1",
			InvoiceNumber: "INV-2026-0042",
			TotalCents:    2500,
		},
	}}
	sender := &recordingSender{}
	h := newTestHandler(sender, testConfig(), invRepo, nil)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": "inv-1", "clientEmail": "dana@example.com"}`,
	))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sends = %d, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "dana@example.com" {
		t.Fatalf("to = %q", msg.To)
	}
	if !strings.Contains(msg.Subject, "INV-2026-0042") {
		t.Fatalf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "$25.00") {
		t.Fatal("email body missing total")
	}
	if !strings.Contains(msg.HTML, "https://app.fieldpro.example/invoices/inv-1") {
		t.Fatal("email body missing online-view link")
	}

	var body struct {
		Data SendInvoiceResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.InvoiceID != "inv-1" {
		t.Fatalf("invoiceId = %q", body.Data.InvoiceID)
	}
}

func TestSendInvoiceFromPrefersCompanyEmail(t *testing.T) {
	invRepo := &fakeInvoiceRepo{invoices: map[string]*invoice.Invoice{
		"inv-1": {
			ID:            "inv-1",
			UserID:        "user-1",
			InvoiceNumber: "INV-2026-0042",
			TotalCents:    2500,
		},
	}}
	sender := &recordingSender{}
	h := NewHandler(
		invoice.NewService(invRepo),
		client.NewService(&fakeClientRepo{}),
		company.NewService(&fakeCompanyRepo{profile: &company.Profile{
			CompanyName: "GreenLine Lawn Care",
			Email:       "billing@greenline.example",
		}}),
		job.NewService(&fakeJobRepo{}),
		sender,
		testConfig(),
		"https://app.fieldpro.example",
	)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": "inv-1", "clientEmail": "dana@example.com"}`,
	))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sends = %d, want 1", len(sender.sent))
	}
	if got := sender.sent[0].From; got != "GreenLine Lawn Care <billing@greenline.example>" {
		t.Fatalf("from = %q", got)
	}
}

func TestSendInvoiceFromFallsBackToConfigured(t *testing.T) {
	invRepo := &fakeInvoiceRepo{invoices: map[string]*invoice.Invoice{
		"inv-1": {ID: "inv-1", UserID: "user-1", InvoiceNumber: "INV-2026-0042"},
	}}
	sender := &recordingSender{}
	h := newTestHandler(sender, testConfig(), invRepo, nil)

	w := httptest.NewRecorder()
	h.SendInvoice(w, authedRequest(
		http.MethodPost,
		"/api/send-invoice",
		`{"invoiceId": "inv-1", "clientEmail": "dana@example.com"}`,
	))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := sender.sent[0].From; got != "GreenLine Lawn Care <noreply@fieldpro.app>" {
		t.Fatalf("from = %q", got)
	}
}

func TestRemindersRequireProvider(t *testing.T) {
	h := newTestHandler(nil, testConfig(), nil, nil)

	w := httptest.NewRecorder()
	h.SendJobReminders(w, httptest.NewRequest(
		http.MethodGet,
		"/api/send-job-reminders",
		nil,
	))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestRemindersRequireRecipient(t *testing.T) {
	cfg := testConfig()
	cfg.NotifyEmail = ""
	h := newTestHandler(&recordingSender{}, cfg, nil, nil)

	w := httptest.NewRecorder()
	h.SendJobReminders(w, httptest.NewRequest(
		http.MethodGet,
		"/api/send-job-reminders",
		nil,
	))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestRemindersNoJobsSendsNothing(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(sender, testConfig(), nil, &fakeJobRepo{})

	w := httptest.NewRecorder()
	h.SendJobReminders(w, httptest.NewRequest(
		http.MethodGet,
		"/api/send-job-reminders",
		nil,
	))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(sender.sent) != 0 {
		t.Fatal("no email should be sent on an empty day")
	}
	if !strings.Contains(w.Body.String(), "No jobs scheduled for today.") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRemindersSendDigest(t *testing.T) {
	sender := &recordingSender{}
	jobRepo := &fakeJobRepo{jobs: []job.Job{
		{ClientName: "Dana Alvarez", PriceCents: 5000, ScheduledAt: time.Now()},
		{ClientName: "Lee & Sons", PriceCents: 7500, ScheduledAt: time.Now()},
	}}
	h := newTestHandler(sender, testConfig(), nil, jobRepo)

	w := httptest.NewRecorder()
	h.SendJobReminders(w, httptest.NewRequest(
		http.MethodGet,
		"/api/send-job-reminders",
		nil,
	))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sends = %d, want 1", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.To != "owner@example.com" {
		t.Fatalf("to = %q", msg.To)
	}
	if !strings.Contains(msg.HTML, "Dana Alvarez") {
		t.Fatal("digest missing client name")
	}
	if !strings.Contains(msg.HTML, "Lee &amp; Sons") {
		t.Fatal("client names must be escaped")
	}

	var body struct {
		Data ReminderResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.Count != 2 {
		t.Fatalf("count = %d, want 2", body.Data.Count)
	}
}
