package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/mathpractice/internal/domain"
)

// apiFunc is an HTTP handler that reports failure by returning an error.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

// authedFunc is an apiFunc that runs after RequireAuth has resolved the caller.
type authedFunc func(w http.ResponseWriter, r *http.Request, userID int64) error

// handle adapts fn to http.Handler, translating its error into a response.
func handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeErrorFor(w, r, err)
		}
	}
}

// writeErrorFor maps err to a status code and writes {"error": msg}.
func writeErrorFor(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		slog.DebugContext(r.Context(), "request rejected",
			"method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
