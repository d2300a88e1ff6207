package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	apperrors "github.com/vango-dev/vanext/internal/errors"
)

// errorBody is the wire shape of every failed request. Error is a string
// for not-found, bad-request and internal errors, and the issue list for
// validation failures.
type errorBody struct {
	Error any `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a response. Anything that is not a tagged
// validation or not-found error is logged and answered with a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var e *apperrors.Error
	if !errors.As(err, &e) {
		e = apperrors.Internal(err)
	}

	switch e.Kind {
	case apperrors.KindValidation:
		if len(e.Issues) > 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: e.Issues})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: e.Message})
	case apperrors.KindNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{Error: e.Message})
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal"})
	}
}

// decodeJSON reads a single JSON value from r into dst. Empty and
// malformed bodies, and bodies with data after the value, are validation
// errors.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.New(apperrors.CodeMalformedJSON).WithMessage("Request body is empty")
		}
		return apperrors.New(apperrors.CodeMalformedJSON).Wrap(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.New(apperrors.CodeMalformedJSON).Wrap(errors.New("unexpected data after JSON value"))
	}
	return nil
}
