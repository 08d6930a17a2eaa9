package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/textplot/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/textplot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/textplot/internal/version.Date={{.Date}}
)

// String formats the build information for `textplot version`.
func String() string {
	return fmt.Sprintf("textplot %s (commit %s, built %s)", Version, Commit, Date)
}
