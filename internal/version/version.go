package version

// version is injected at build time via -ldflags.
var version = "dev"

// Version returns the build version string.
func Version() string {
	return version
}
