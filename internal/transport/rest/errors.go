package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
	"github.com/lexidrill/lexidrill-backend/pkg/ctxutil"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps domain errors onto HTTP statuses. A credentials
// problem is the client's to fix, so missing or rejected keys become
// 401; malformed model output and upstream failures surface as 502.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := http.StatusBadGateway
	detail := errorDetail{Code: "upstream_error", Message: err.Error()}

	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrAPIKeyMissing):
		status = http.StatusUnauthorized
		detail.Code = "api_key_missing"
		detail.Message = domain.ErrAPIKeyMissing.Error()
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		detail.Code = "validation_failed"
		detail.Fields = vErr.Errors
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		detail.Code = "validation_failed"
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		detail.Code = "not_found"
	case errors.Is(err, domain.ErrModelOutput):
		detail.Code = "model_output_invalid"
	case domain.IsAuthError(err):
		status = http.StatusUnauthorized
		detail.Code = "api_key_rejected"
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", ctxutil.RequestIDFromCtx(r.Context()),
		)
	}

	writeJSON(w, status, errorBody{Error: detail})
}

func decodeBody(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, log, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}
