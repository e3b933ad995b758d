package version

import "fmt"

// Set at build time:
// go build -ldflags "-X github.com/RendijsSmukulis/codevoid.io/internal/version.Version=v1.0.0".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("codevoid %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
