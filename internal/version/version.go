// Package version exposes build-time version information.
// The variables are meant to be overridden via -ldflags at build time.
package version

var (
	// Version is the semantic version of the build.
	//nolint:gochecknoglobals // Set via -ldflags at build time.
	Version = "1.0.0"

	// Commit is the git commit the binary was built from.
	//nolint:gochecknoglobals // Set via -ldflags at build time.
	Commit = "none"

	// BuildTime is the timestamp of the build.
	//nolint:gochecknoglobals // Set via -ldflags at build time.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
