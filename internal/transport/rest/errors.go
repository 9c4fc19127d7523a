package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

// conflictResponse is the 409 body for page count conflicts. Given is
// always present and null when the draft had no total.
type conflictResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Existing int    `json:"existing"`
	Given    *int   `json:"given"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and answered with 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		conflict *domain.PageCountConflictError
		invalid  *domain.ValidationError
	)

	switch {
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error:    "total page count differs from the recorded edition",
			Code:     domain.PageCountConflictCode,
			Existing: conflict.Existing,
			Given:    conflict.Given,
		})
	case errors.As(err, &invalid):
		resp := errorResponse{Error: "validation failed", Code: "VALIDATION"}
		for _, fe := range invalid.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, errBodyTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error(), Code: "BODY_TOO_LARGE"})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAccountFrozen):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "account frozen", Code: "ACCOUNT_FROZEN"})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
