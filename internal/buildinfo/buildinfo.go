package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/ArcInstitute/bridge-rna-designer/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("bridgerna %s (commit=%s, date=%s)", Version, Commit, Date)
}
