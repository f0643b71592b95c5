// Package version holds build metadata injected at link time via -ldflags.
package version

import "runtime"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)
