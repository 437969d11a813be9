// AngelaMos | 2026
// handler.go

package job

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/jobs", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/export", h.Export)
		r.Get("/{jobID}", h.Get)
		r.Put("/{jobID}", h.Update)
		r.Delete("/{jobID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	jobs, err := h.service.List(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	resp := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, ToJobResponse(&jobs[i]))
	}

	core.OK(w, JobListResponse{Jobs: resp})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	j, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrConstraint) {
			core.JSONError(w, core.ConstraintError("client does not exist"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToJobResponse(j))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	j, err := h.service.GetByID(r.Context(), userID, chi.URLParam(r, "jobID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "job")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToJobResponse(j))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	j, err := h.service.Update(
		r.Context(),
		userID,
		chi.URLParam(r, "jobID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "job")
			return
		}
		if errors.Is(err, core.ErrConstraint) {
			core.JSONError(w, core.ConstraintError("client does not exist"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToJobResponse(j))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "jobID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "job")
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
	w.Header().Set("Content-Disposition", `attachment; filename="jobs.csv"`)

	if err := h.service.ExportCSV(r.Context(), userID, w); err != nil {
		// headers are already written; the truncated body signals failure
		return
	}
}
