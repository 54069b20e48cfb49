package tui

import "github.com/aalvaropc/starapp/internal/domain"

type readingRevealedMsg struct {
	input   domain.DateInput
	reading domain.Reading
	err     error
}
