package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/neo-insight/internal/domain/report/entity"
	"github.com/vadim/neo-insight/internal/domain/report/service"
	"github.com/vadim/neo-insight/internal/httpx/response"
)

// ReportService defines the interface for saved report operations
type ReportService interface {
	Get(ctx context.Context, id string) (*entity.Report, error)
	List(ctx context.Context, in service.ListInput) (*service.ListOutput, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string, format entity.Format) (*service.DownloadOutput, error)
}

// ReportHandler handles HTTP requests for saved reports
type ReportHandler struct {
	reports ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(s ReportService) *ReportHandler {
	return &ReportHandler{reports: s}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.List())
		r.Get("/{id}", h.Get())
		r.Get("/{id}/download", h.Download())
		r.Delete("/{id}", h.Delete())
	})
}

// ListReportsResponse represents the response for listing reports
type ListReportsResponse struct {
	Reports []entity.Report `json:"reports"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// List handles GET /reports
func (h *ReportHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))

		out, err := h.reports.List(r.Context(), service.ListInput{
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		// Lists carry summaries only
		reports := make([]entity.Report, len(out.Reports))
		for i, rep := range out.Reports {
			rep.Posts = nil
			reports[i] = rep
		}

		response.OK(w, ListReportsResponse{
			Reports: reports,
			Total:   out.Total,
			Limit:   out.Limit,
			Offset:  out.Offset,
		})
	}
}

// Get handles GET /reports/{id}
func (h *ReportHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		rep, err := h.reports.Get(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, rep)
	}
}

// Download handles GET /reports/{id}/download?format=html|json|text
func (h *ReportHandler) Download() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		format, err := entity.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}

		out, err := h.reports.Download(r.Context(), id, format)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Attachment(w, out.ContentType, out.Filename, out.Content)
	}
}

// Delete handles DELETE /reports/{id}
func (h *ReportHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := h.reports.Delete(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}

		response.NoContent(w)
	}
}
