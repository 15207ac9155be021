package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/studydeck-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line printed at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
