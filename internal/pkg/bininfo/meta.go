// Values in this file are injected at build time with -ldflags "-X ...".
// Keep the variable names stable.

package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a plus sign when available.
	Version = "v0.0.0"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)
