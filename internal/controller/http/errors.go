package http

import (
	"errors"
	"net/http"

	analysis "github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/report/entity"
	"github.com/vadim/neo-insight/internal/httpx/response"
)

// handleDomainError maps domain errors to HTTP responses
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrReportNotFound), errors.Is(err, analysis.ErrNoAnalysis):
		response.NotFound(w, err.Error())
	case errors.Is(err, analysis.ErrInvalidPostType), errors.Is(err, analysis.ErrInvalidPostIndex),
		errors.Is(err, analysis.ErrInvalidDocument), errors.Is(err, analysis.ErrNoPosts),
		errors.Is(err, entity.ErrEmptyTitle), errors.Is(err, entity.ErrTitleTooLong),
		errors.Is(err, entity.ErrInconsistentCounts), errors.Is(err, entity.ErrInvalidFormat):
		response.BadRequest(w, err.Error())
	case errors.Is(err, analysis.ErrTooManyPosts):
		response.PayloadTooLarge(w, err.Error())
	case errors.Is(err, entity.ErrPersistenceDisabled):
		response.ServiceUnavailable(w, err.Error())
	default:
		response.InternalError(w, "internal server error")
	}
}
