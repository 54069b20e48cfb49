package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/starapp/internal/domain"
)

func cmdReveal(deps Deps, in domain.DateInput) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}

		if deps.Reveal == nil {
			err := errors.New("Reveal is nil")
			log.Error("reading.failed", "err", err)
			return readingRevealedMsg{input: in, err: err}
		}

		reading, err := deps.Reveal.Execute(context.Background(), in)
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				log.Info("reading.rejected", "kind", string(ve.Kind), "reason", string(ve.Reason))
			} else {
				log.Error("reading.failed", "err", err)
			}
			return readingRevealedMsg{input: in, err: err}
		}

		if deps.Debug {
			log.Debug("reading.ok",
				"sign", string(reading.Entry.Sign),
				"birthstone", reading.Entry.Birthstone,
				"birth_date", reading.BirthDate.String(),
			)
		} else {
			log.Info("reading.ok", "sign", string(reading.Entry.Sign))
		}

		return readingRevealedMsg{input: in, reading: reading}
	}
}
