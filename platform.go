package appdirs

import "strings"

// Platform classifies the host operating system for directory resolution.
type Platform int

const (
	// PlatformUnix covers Linux, the BSDs, and anything not otherwise
	// recognized.
	PlatformUnix Platform = iota

	// PlatformMac is macOS (darwin).
	PlatformMac

	// PlatformWindows is Windows.
	PlatformWindows
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformMac:
		return "mac"
	case PlatformWindows:
		return "windows"
	default:
		return "unix"
	}
}

// detectPlatform maps an operating system family string to a Platform.
// Matching is by substring: "darwin"/"mac" select mac, "windows"/"win"
// select windows, everything else falls back to unix. The mac check runs
// first because "darwin" contains "win". There is no error path; unknown
// systems are treated as unix.
func detectPlatform(goos string) Platform {
	s := strings.ToLower(goos)
	switch {
	case strings.Contains(s, "darwin"), strings.Contains(s, "mac"):
		return PlatformMac
	case strings.Contains(s, "windows"), strings.Contains(s, "win"):
		return PlatformWindows
	default:
		return PlatformUnix
	}
}

// platform classifies the resolver's environment. Evaluated fresh on every
// call so results reflect the environment at call time.
func (r *Resolver) platform() Platform {
	return detectPlatform(r.env.GOOS())
}
