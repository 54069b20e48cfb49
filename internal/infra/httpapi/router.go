// Package httpapi exposes the zodiac resolver over a small read-only JSON API.
package httpapi

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aalvaropc/starapp/internal/usecase"
)

type Deps struct {
	Reveal         *usecase.RevealReading
	Signs          *usecase.ListSigns
	Logger         *slog.Logger
	AllowedOrigins []string
}

// NewRouter wires middleware and routes.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Signs == nil {
		deps.Signs = usecase.NewListSigns()
	}

	h := &handlers{reveal: deps.Reveal, signs: deps.Signs, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/signs", h.listSigns)
		r.Get("/signs/{sign}", h.getSign)
		r.Get("/zodiac", h.zodiac)
	})

	return r
}
