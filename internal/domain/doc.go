// Package domain contains the core domain model for StarApp.
//
// The domain is transport- and presentation-agnostic: it does not depend on the TUI,
// net/http, YAML parsing, or the filesystem. It never reads the system clock; callers
// pass the reference date explicitly. Infra/adapters map into/from these types.
package domain
