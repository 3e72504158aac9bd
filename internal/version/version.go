// Package version carries the build stamp of the binary.
package version

// Set via ldflags at build time, e.g.
// go build -ldflags="-X 'github.com/idoru/create-cloudflare-monorepo/internal/version.Version=v1.0.0'"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "" // RFC 3339 build time, omitted when empty
)

// Info renders the version line printed by --version and the version command
func Info() string {
	info := Version + " (" + Commit
	if Date != "" {
		info += ", built " + Date
	}
	return info + ")"
}
