package version

import (
	"os"
	"runtime"
	"time"

	model "github.com/lazedo/yxa/pkg/hostaddr"
)

var (
	// Version is the version of the daemon
	Version = "dev"
	// BuildTime is the time when the daemon was built
	BuildTime = "unknown"
	// CommitID is the git commit ID of the daemon
	CommitID = "unknown"
)

// formatBuildTime formats the build time to a readable string
func formatBuildTime() string {
	if BuildTime == "unknown" {
		return BuildTime
	}

	t, err := time.Parse(time.RFC3339, BuildTime)
	if err != nil {
		return BuildTime
	}

	return t.Format("Mon Jan 2 15:04:05 2006")
}

// Info returns daemon version information
func Info() *model.VersionInfo {
	hostname, _ := os.Hostname()
	return &model.VersionInfo{
		Version:       Version,
		APIVersion:    "v1",
		GoVersion:     runtime.Version(),
		GitCommit:     CommitID,
		BuildTime:     BuildTime,
		FormattedTime: formatBuildTime(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		Hostname:      hostname,
	}
}
