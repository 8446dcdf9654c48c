// Package version reports which projectpack build is running.
package version

import (
	"fmt"
	"runtime"
)

// AppName is reported in logs and version output.
const AppName = "projectpack"

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X projectpack/pkg/version.Version=v0.3.0 -X projectpack/pkg/version.Commit=$(git rev-parse --short HEAD) -X projectpack/pkg/version.BuildTime=$(date -u +%FT%TZ)"
var (
	Version   = "dev"     // Release tag; "dev" for local builds.
	Commit    = "none"    // Short commit hash.
	BuildTime = "unknown" // UTC build time, RFC 3339.
)

// Info is the build metadata together with the runtime it runs on.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string // runtime.Version()
	Platform  string // GOOS/GOARCH
}

// Get collects Info for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats i for `projectpack version`.
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		AppName, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
