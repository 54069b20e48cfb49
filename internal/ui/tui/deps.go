package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/starapp/internal/domain"
)

// Revealer resolves one set of raw date fields.
type Revealer interface {
	Execute(ctx context.Context, in domain.DateInput) (domain.Reading, error)
}

type Deps struct {
	Reveal Revealer

	Accent string // hex; empty means the default purple

	Logger *slog.Logger
	Debug  bool
}
