// Package version carries build-time version information,
// overridden via -ldflags at release time.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
)
