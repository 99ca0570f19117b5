// Package version exposes build metadata stamped at link time.
package version

// Overridden via -ldflags "-X .../internal/version.Version=..." in release
// builds; the zero values identify a local development binary.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
