// AngelaMos | 2026
// handler.go

package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fieldpro/fieldpro-api/internal/client"
	"github.com/fieldpro/fieldpro-api/internal/company"
	"github.com/fieldpro/fieldpro-api/internal/config"
	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/email"
	"github.com/fieldpro/fieldpro-api/internal/invoice"
	"github.com/fieldpro/fieldpro-api/internal/job"
	"github.com/fieldpro/fieldpro-api/internal/middleware"
)

type SendInvoiceRequest struct {
	InvoiceID   string `json:"invoiceId"   validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
}

type SendInvoiceResponse struct {
	Message   string `json:"message"`
	InvoiceID string `json:"invoiceId"`
}

type ReminderResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type Handler struct {
	invoices  *invoice.Service
	clients   *client.Service
	company   *company.Service
	jobs      *job.Service
	sender    email.Sender
	cfg       config.EmailConfig
	baseURL   string
	validator *validator.Validate
}

func NewHandler(
	invoices *invoice.Service,
	clients *client.Service,
	companySvc *company.Service,
	jobs *job.Service,
	sender email.Sender,
	cfg config.EmailConfig,
	baseURL string,
) *Handler {
	return &Handler{
		invoices:  invoices,
		clients:   clients,
		company:   companySvc,
		jobs:      jobs,
		sender:    sender,
		cfg:       cfg,
		baseURL:   baseURL,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the notification endpoints. Invoice delivery requires
// a bearer token; the reminder endpoint is open so a scheduler can hit it.
// sendLimiter throttles outbound email; it runs after the authenticator so
// invoice sends are keyed per user, while the reminder trigger is keyed per IP.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	sendLimiter func(http.Handler) http.Handler,
) {
	r.Route("/api", func(r chi.Router) {
		r.With(authenticator, sendLimiter).Post("/send-invoice", h.SendInvoice)
		r.With(sendLimiter).Get("/send-job-reminders", h.SendJobReminders)
	})
}

func (h *Handler) SendInvoice(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req SendInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invoiceId and clientEmail are required")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "invoiceId and clientEmail are required")
		return
	}

	inv, items, err := h.invoices.GetForOwner(r.Context(), userID, req.InvoiceID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "invoice does not belong to the caller")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if h.sender == nil {
		core.InternalServerError(w, email.ErrNotConfigured)
		return
	}

	data := invoice.RenderData{Invoice: inv, Items: items, BaseURL: h.baseURL}

	if c, err := h.clients.GetByID(r.Context(), userID, inv.ClientID); err == nil {
		data.Client = c
	}

	companyName := ""
	if p, err := h.company.GetByUserID(r.Context(), userID); err == nil {
		data.Company = p
		companyName = p.CompanyName
	}

	html, err := invoice.RenderEmail(data)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	msg := email.Message{
		From:    h.senderAddress(data.Company, companyName),
		To:      req.ClientEmail,
		Subject: invoice.EmailSubject(inv, companyName),
		HTML:    html,
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, SendInvoiceResponse{
		Message:   "Invoice sent to " + req.ClientEmail,
		InvoiceID: inv.ID,
	})
}

// senderAddress prefers the company profile's email over the configured
// fallback, formatted with the company name as display name when present.
func (h *Handler) senderAddress(
	profile *company.Profile,
	companyName string,
) string {
	addr := h.cfg.FromAddress
	if profile != nil && strings.TrimSpace(profile.Email) != "" {
		addr = strings.TrimSpace(profile.Email)
	}
	if strings.TrimSpace(companyName) != "" {
		return fmt.Sprintf("%s <%s>", companyName, addr)
	}
	return addr
}

func (h *Handler) SendJobReminders(w http.ResponseWriter, r *http.Request) {
	if h.sender == nil {
		core.InternalServerError(w, email.ErrNotConfigured)
		return
	}

	if strings.TrimSpace(h.cfg.NotifyEmail) == "" {
		core.InternalServerError(
			w,
			errors.New("notification recipient not configured"),
		)
		return
	}

	jobs, err := h.jobs.JobsToday(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if len(jobs) == 0 {
		core.OK(w, ReminderResponse{
			Message: "No jobs scheduled for today.",
			Count:   0,
		})
		return
	}

	msg := email.Message{
		From:    h.cfg.FromAddress,
		To:      h.cfg.NotifyEmail,
		Subject: fmt.Sprintf("Job reminders: %d scheduled today", len(jobs)),
		HTML:    buildReminderBody(jobs),
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ReminderResponse{
		Message: fmt.Sprintf("Sent reminders for %d jobs.", len(jobs)),
		Count:   len(jobs),
	})
}

func buildReminderBody(jobs []job.Job) string {
	var b strings.Builder
	b.WriteString(`<h2>Today's schedule</h2><ul>`)
	for i := range jobs {
		fmt.Fprintf(&b,
			`<li><strong>%s</strong> &mdash; %s (%s)%s</li>`,
			template.HTMLEscapeString(jobs[i].ClientName),
			jobs[i].ScheduledAt.Format("3:04 PM"),
			core.FormatCents(jobs[i].PriceCents),
			notesSuffix(jobs[i].Notes),
		)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func notesSuffix(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}
	return " &ndash; " + template.HTMLEscapeString(notes)
}
