package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("http.encode.failed", "err", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, kind, message string) {
	respondJSON(w, log, status, ErrorResponse{
		Error:     message,
		Kind:      kind,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
