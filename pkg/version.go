package tjdelta

var (
	// Version of tjdelta, set during the build.
	Version = "v0.1.0"
	// Build timestamp, set during the build.
	Build = "n/a"
)
