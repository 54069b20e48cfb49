package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/aalvaropc/starapp/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("starapp %s (commit=%s, date=%s)", Version, Commit, Date)
}
