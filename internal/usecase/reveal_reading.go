package usecase

import (
	"context"
	"errors"

	"github.com/aalvaropc/starapp/internal/domain"
	"github.com/aalvaropc/starapp/internal/ports"
)

type RevealReading struct {
	clock ports.Clock
}

func NewRevealReading(clock ports.Clock) *RevealReading {
	return &RevealReading{clock: clock}
}

// Execute resolves the zodiac sign for raw input, using the clock's current
// date as the reference for the future-date check.
func (uc *RevealReading) Execute(ctx context.Context, in domain.DateInput) (domain.Reading, error) {
	if err := ctx.Err(); err != nil {
		return domain.Reading{}, err
	}
	if uc.clock == nil {
		return domain.Reading{}, errors.New("reveal: clock is nil")
	}

	return domain.ValidateAndResolve(in, uc.clock.Now())
}
