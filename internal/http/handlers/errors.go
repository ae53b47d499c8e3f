package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"travelrecords/internal/domain"
	"travelrecords/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidID     = "INVALID_ID"
	CodeDuplicateID   = "DUPLICATE_ID"
	CodeIDImmutable   = "ID_IMMUTABLE"
	CodeNotFound      = "NOT_FOUND"
	CodeDeleteBlocked = "DELETE_BLOCKED"
	CodeInternal      = "INTERNAL_ERROR"
)

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps ErrorBody under "error".
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	var (
		verr domain.ValidationError
		ierr domain.InvalidIDError
	)
	switch {
	case errors.As(err, &ierr):
		respondError(c, http.StatusBadRequest, CodeInvalidID, err.Error(), idDetails(ierr))
	case errors.As(err, &verr):
		respondError(c, http.StatusUnprocessableEntity, CodeInvalidInput, err.Error(), detailsOrNil(verr.Details))
	case domain.IsImmutableID(err):
		respondError(c, http.StatusBadRequest, CodeIDImmutable, err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, CodeDuplicateID, err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	case domain.IsDeleteBlocked(err):
		respondError(c, http.StatusUnprocessableEntity, CodeDeleteBlocked, err.Error(), nil)
	default:
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err,
		)
		respondError(c, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
	}
}

func idDetails(e domain.InvalidIDError) any {
	if e.Value == "" {
		return nil
	}
	field := e.Field
	if field == "" {
		field = "id"
	}
	return map[string]any{field: e.Value}
}

func detailsOrNil(d map[string]any) any {
	if len(d) == 0 {
		return nil
	}
	return d
}
