// AngelaMos | 2026
// handler.go

package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/job"
	"github.com/fieldpro/fieldpro-api/internal/middleware"
)

// Handler aggregates the home-screen summary from the domain services. The
// dependencies are plain functions so the package stays decoupled from
// service construction.
type Handler struct {
	jobStats     func(ctx context.Context, userID string) (*job.DashboardStats, error)
	clientCount  func(ctx context.Context, userID string) (int, error)
	invoiceCount func(ctx context.Context, userID string) (int, error)
}

type HandlerConfig struct {
	JobStats     func(ctx context.Context, userID string) (*job.DashboardStats, error)
	ClientCount  func(ctx context.Context, userID string) (int, error)
	InvoiceCount func(ctx context.Context, userID string) (int, error)
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		jobStats:     cfg.JobStats,
		clientCount:  cfg.ClientCount,
		invoiceCount: cfg.InvoiceCount,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.GetSummary)
	})
}

type SummaryResponse struct {
	JobsToday    int    `json:"jobs_today"`
	UpcomingJobs int    `json:"upcoming_jobs"`
	WeekRevenue  string `json:"week_revenue"`
	ClientCount  int    `json:"client_count"`
	InvoiceCount int    `json:"invoice_count"`
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	stats, err := h.jobStats(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	clients, err := h.clientCount(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	invoices, err := h.invoiceCount(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, SummaryResponse{
		JobsToday:    stats.JobsToday,
		UpcomingJobs: stats.UpcomingJobs,
		WeekRevenue:  stats.WeekRevenue,
		ClientCount:  clients,
		InvoiceCount: invoices,
	})
}
