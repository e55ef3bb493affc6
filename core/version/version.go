package version

import "fmt"

// Version information, set via -ldflags at build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("static-host %s (built %s, commit %s)", Version, BuildDate, GitCommit)
}
