package buildinfo

var (
	// Version is the release version, set via ldflags during build.
	Version = "dev"
	// Commit is the source revision, set via ldflags during build.
	Commit = "none"
	// Date is the build time, set via ldflags during build.
	Date = "unknown"
)
