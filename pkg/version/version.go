package version

import (
	"fmt"
	"runtime"
)

const (
	Major = 1
	Minor = 0
	Patch = 0

	// PreRelease is empty for stable builds.
	PreRelease = ""

	AppName = "CryptoHomeboy"
)

// Version returns the semantic version without prefix.
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if PreRelease != "" {
		v += "-" + PreRelease
	}
	return v
}

// GetFullVersionString returns the application name with a v-prefixed version.
func GetFullVersionString() string {
	return fmt.Sprintf("%s v%s (%s, %s/%s)", AppName, Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// IsPreRelease reports whether this is a pre-release build.
func IsPreRelease() bool {
	return PreRelease != ""
}
