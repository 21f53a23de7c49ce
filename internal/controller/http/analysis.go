package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/analysis/policy"
	reportentity "github.com/vadim/neo-insight/internal/domain/report/entity"
	"github.com/vadim/neo-insight/internal/httpx/response"
)

// AnalysisPolicy defines the interface for analysis operations
// Interface is defined by consumer (handler), not provider (policy)
type AnalysisPolicy interface {
	Analyze(ctx context.Context, in policy.AnalyzeInput) (*policy.AnalyzeOutput, error)
	AnalyzeDocument(ctx context.Context, in policy.AnalyzeDocumentInput) (*policy.AnalyzeOutput, error)
	Latest() (*policy.Snapshot, error)
	ExportLatest(format reportentity.Format) (*policy.ExportOutput, error)
}

// AnalysisHandler handles HTTP requests for analyses
type AnalysisHandler struct {
	policy          AnalysisPolicy
	maxDocumentSize int64
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(p AnalysisPolicy, maxDocumentSize int64) *AnalysisHandler {
	return &AnalysisHandler{
		policy:          p,
		maxDocumentSize: maxDocumentSize,
	}
}

// RegisterRoutes registers analysis routes
func (h *AnalysisHandler) RegisterRoutes(r chi.Router) {
	r.Route("/analyses", func(r chi.Router) {
		r.Post("/", h.Analyze())
		r.Post("/document", h.AnalyzeDocument())
		r.Get("/latest", h.Latest())
		r.Get("/latest/export", h.ExportLatest())
	})
}

// AnalyzeRequest represents the request body for analyzing posts
type AnalyzeRequest struct {
	Title string        `json:"title"`
	Save  bool          `json:"save"`
	Posts []entity.Post `json:"posts"`
}

// AnalysisResponse represents an analysis in API responses
type AnalysisResponse struct {
	Result     entity.AnalysisResult `json:"result"`
	Posts      []entity.Post         `json:"posts"`
	ReportID   string                `json:"report_id,omitempty"`
	ReportURL  string                `json:"report_url,omitempty"`
	AnalyzedAt *time.Time            `json:"analyzed_at,omitempty"`
}

// Analyze handles POST /analyses
func (h *AnalysisHandler) Analyze() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxDocumentSize)

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if isTooLarge(err) {
				response.PayloadTooLarge(w, "request body too large")
				return
			}
			response.BadRequest(w, "invalid JSON")
			return
		}

		out, err := h.policy.Analyze(r.Context(), policy.AnalyzeInput{
			Title: req.Title,
			Posts: req.Posts,
			Save:  req.Save,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeAnalysis(w, out)
	}
}

// AnalyzeDocument handles POST /analyses/document.
// The body is the saved page itself, or a multipart form with a "document" file field.
func (h *AnalysisHandler) AnalyzeDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxDocumentSize)

		q := r.URL.Query()
		save, err := parseBool(q.Get("save"))
		if err != nil {
			response.BadRequest(w, "save must be true or false")
			return
		}

		doc, err := h.readDocument(r)
		if err != nil {
			if isTooLarge(err) {
				response.PayloadTooLarge(w, "document too large")
				return
			}
			response.BadRequest(w, err.Error())
			return
		}
		defer doc.Close()

		out, err := h.policy.AnalyzeDocument(r.Context(), policy.AnalyzeDocumentInput{
			Title:    q.Get("title"),
			Document: doc,
			Save:     save,
		})
		if err != nil {
			if isTooLarge(err) {
				response.PayloadTooLarge(w, "document too large")
				return
			}
			handleDomainError(w, err)
			return
		}

		writeAnalysis(w, out)
	}
}

// readDocument returns the uploaded page from a multipart form or the raw body
func (h *AnalysisHandler) readDocument(r *http.Request) (io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	if err := r.ParseMultipartForm(h.maxDocumentSize); err != nil {
		if isTooLarge(err) {
			return nil, err
		}
		return nil, errors.New("invalid multipart form")
	}
	file, _, err := r.FormFile("document")
	if err != nil {
		return nil, errors.New("document file is required")
	}
	return file, nil
}

// Latest handles GET /analyses/latest
func (h *AnalysisHandler) Latest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := h.policy.Latest()
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, AnalysisResponse{
			Result:     snap.Result,
			Posts:      snap.Posts,
			AnalyzedAt: &snap.AnalyzedAt,
		})
	}
}

// ExportLatest handles GET /analyses/latest/export?format=html|json|text
func (h *AnalysisHandler) ExportLatest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := reportentity.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}

		out, err := h.policy.ExportLatest(format)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Attachment(w, out.ContentType, out.Filename, out.Content)
	}
}

func writeAnalysis(w http.ResponseWriter, out *policy.AnalyzeOutput) {
	resp := AnalysisResponse{
		Result: out.Result,
		Posts:  out.Posts,
	}
	if out.Report == nil {
		response.OK(w, resp)
		return
	}

	resp.ReportID = out.Report.ID
	resp.ReportURL = out.Report.URL
	response.Created(w, resp)
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
