package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aalvaropc/starapp/internal/domain"
	"github.com/aalvaropc/starapp/internal/usecase"
)

type handlers struct {
	reveal *usecase.RevealReading
	signs  *usecase.ListSigns
	log    *slog.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.log.Error("http.health.write_failed", "err", err)
	}
}

func (h *handlers) listSigns(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.signs.Execute())
}

func (h *handlers) getSign(w http.ResponseWriter, r *http.Request) {
	entry, err := h.signs.Find(chi.URLParam(r, "sign"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, entry)
}

// zodiac resolves GET /api/zodiac?day=&month=&year=. The raw query values
// are passed through untouched so the resolver reports missing or
// non-numeric fields itself.
func (h *handlers) zodiac(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := domain.DateInput{
		Day:   q.Get("day"),
		Month: q.Get("month"),
		Year:  q.Get("year"),
	}

	reading, err := h.reveal.Execute(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Debug("reading.ok",
		"sign", string(reading.Entry.Sign),
		"birth_date", reading.BirthDate.String(),
	)
	respondJSON(w, h.log, http.StatusOK, reading)
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("http.handler.failed", "path", r.URL.Path, "err", err)
	} else {
		h.log.Debug("http.handler.rejected", "path", r.URL.Path, "kind", kind)
	}
	respondError(w, r, h.log, status, kind, msg)
}
