// AngelaMos | 2026
// handler.go

package invoice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fieldpro/fieldpro-api/internal/client"
	"github.com/fieldpro/fieldpro-api/internal/company"
	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/middleware"
)

type Handler struct {
	service   *Service
	clients   *client.Service
	company   *company.Service
	validator *validator.Validate
}

func NewHandler(
	service *Service,
	clients *client.Service,
	companySvc *company.Service,
) *Handler {
	return &Handler{
		service:   service,
		clients:   clients,
		company:   companySvc,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/invoices", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/export", h.Export)
		r.Get("/{invoiceID}", h.Get)
		r.Get("/{invoiceID}/document", h.Document)
		r.Put("/{invoiceID}/status", h.UpdateStatus)
		r.Delete("/{invoiceID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	invoices, err := h.service.List(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	resp := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		resp = append(resp, ToInvoiceResponse(&invoices[i], nil))
	}

	core.OK(w, InvoiceListResponse{Invoices: resp})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	inv, items, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrConstraint) {
			core.JSONError(w, core.ConstraintError("client does not exist"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToInvoiceResponse(inv, items))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	inv, items, err := h.service.GetByID(
		r.Context(),
		userID,
		chi.URLParam(r, "invoiceID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToInvoiceResponse(inv, items))
}

// Document renders the invoice as a standalone HTML page.
func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	inv, items, err := h.service.GetByID(
		r.Context(),
		userID,
		chi.URLParam(r, "invoiceID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	data := RenderData{Invoice: inv, Items: items}

	if c, err := h.clients.GetByID(r.Context(), userID, inv.ClientID); err == nil {
		data.Client = c
	}

	if p, err := h.company.GetByUserID(r.Context(), userID); err == nil {
		data.Company = p
	}

	html, err := RenderDocument(data)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck // response write failures are unrecoverable
	_, _ = w.Write([]byte(html))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	invoiceID := chi.URLParam(r, "invoiceID")

	err := h.service.UpdateStatus(r.Context(), userID, invoiceID, req.Status)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	inv, items, err := h.service.GetByID(r.Context(), userID, invoiceID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToInvoiceResponse(inv, items))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "invoiceID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)

	if err := h.service.ExportCSV(r.Context(), userID, w); err != nil {
		// headers are already written; the truncated body signals failure
		return
	}
}
