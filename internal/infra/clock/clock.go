package clock

import (
	"time"

	"github.com/aalvaropc/starapp/internal/ports"
)

// System reads the wall clock in the local zone.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Used for --today and in tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// ParseDate builds a Fixed clock from a YYYY-MM-DD string in the local zone.
func ParseDate(s string) (Fixed, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return Fixed{}, err
	}
	return Fixed{T: t}, nil
}

var (
	_ ports.Clock = System{}
	_ ports.Clock = Fixed{}
)
