// Package version exposes the simratemon build metadata stamped by the
// release pipeline.
package version

// Stamped via -ldflags "-X .../internal/version.version=..." at build time;
// development builds report the zero values below.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version string.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit hash.
func GetCommit() string {
	return commit
}

// GetDate returns the build date.
func GetDate() string {
	return date
}

// GetFullVersion returns the version with commit and build date appended.
func GetFullVersion() string {
	return version + " (commit: " + commit + ", built: " + date + ")"
}
