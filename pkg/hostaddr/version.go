package model

// VersionInfo represents daemon version information
type VersionInfo struct {
	// Version is the version of the daemon
	Version string `json:"version"`
	// APIVersion is the version of the API
	APIVersion string `json:"apiVersion"`
	// GoVersion is the version of Go used to build the daemon
	GoVersion string `json:"goVersion"`
	// GitCommit is the git commit ID of the daemon
	GitCommit string `json:"gitCommit"`
	// BuildTime is the time when the daemon was built
	BuildTime string `json:"buildTime"`
	// FormattedTime is the formatted build time
	FormattedTime string `json:"formattedTime"`
	// OS is the operating system the daemon is running on
	OS string `json:"os"`
	// Arch is the architecture the daemon is running on
	Arch string `json:"arch"`
	// Hostname is the host the daemon reports addresses for
	Hostname string `json:"hostname,omitempty"`
}
