package tui

import (
	"context"
	"errors"

	"github.com/aalvaropc/starapp/internal/domain"
)

// userMessage turns an error into the text shown in the alert box.
// Validation errors already carry their user-facing message.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "Request canceled"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			return "Not found"
		case domain.KindInvalidConfig:
			return "Invalid config (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}
