package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/aalvaropc/starapp/internal/domain"
)

// statusFor maps an error to a status code, a machine-readable kind and a
// message that is safe to show to clients.
func statusFor(err error) (int, string, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, string(ve.Kind), ve.Error()
	}

	switch {
	case domain.IsKind(err, domain.KindNotFound):
		return http.StatusNotFound, string(domain.KindNotFound), "Not found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "unavailable", "Request canceled"
	default:
		return http.StatusInternalServerError, string(domain.KindExecution), "Unexpected error"
	}
}
