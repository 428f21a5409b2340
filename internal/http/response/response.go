package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anbessa/iam-backend/internal/apperr"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "response encode failed", "error", err)
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	JSON(w, r, status, errorBody{Error: errorDetail{Code: code, Message: message, Details: details}})
}

// AppError maps the error taxonomy onto HTTP statuses. Validation errors
// carry their field tags in the details payload; internal errors never leak
// their cause to the client.
func AppError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		var details any
		if fields := apperr.FieldsOf(err); len(fields) > 0 {
			details = fields
		}
		Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), details)
	case apperr.KindNotFound:
		Error(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case apperr.KindForbidden:
		Error(w, r, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
	case apperr.KindUnauthorized:
		Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", err.Error(), nil)
	default:
		slog.ErrorContext(r.Context(), "internal error", "error", err)
		Error(w, r, http.StatusInternalServerError, "INTERNAL", apperr.MsgInternal, nil)
	}
}
