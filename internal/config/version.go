package config

import "fmt"

// Build information, set with -ldflags at release time
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags overrides the build information
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}

// VersionString renders the build information for display
func VersionString() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
