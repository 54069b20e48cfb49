package ports

import "time"

// Clock supplies "today" for the future-date check.
type Clock interface {
	Now() time.Time
}
