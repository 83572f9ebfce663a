package appdirs

import "path/filepath"

// FolderKind selects which Windows per-user special folder to resolve.
type FolderKind int

const (
	// FolderLocalAppData is the machine-local application data root
	// (%LOCALAPPDATA%). It is the zero value, making non-roaming the
	// default.
	FolderLocalAppData FolderKind = iota

	// FolderRoamingAppData is the roaming application data root
	// (%APPDATA%), synced across machines on a domain network.
	FolderRoamingAppData
)

// folderStrategy attempts one way of locating a special folder, returning
// "" when its mechanism is unavailable.
type folderStrategy func(env Environment, kind FolderKind) string

// folderStrategies are tried in order until one produces a path:
// the standard environment variables, then the conventional AppData
// layout under the user profile, then a legacy "Application Data"
// directory under the home directory as a last resort.
var folderStrategies = []folderStrategy{
	folderFromEnv,
	folderFromProfile,
	folderFromHome,
}

// WindowsFolder resolves a Windows special folder to its filesystem path.
// It never fails: when every lookup mechanism is unavailable the result is
// a best-effort "Application Data" path under whatever home directory can
// be determined, so downstream joining still produces a usable path.
func (r *Resolver) WindowsFolder(kind FolderKind) string {
	for _, strategy := range folderStrategies {
		if dir := strategy(r.env, kind); dir != "" {
			return dir
		}
	}
	return ""
}

func folderFromEnv(env Environment, kind FolderKind) string {
	if kind == FolderRoamingAppData {
		return env.Getenv("APPDATA")
	}
	return env.Getenv("LOCALAPPDATA")
}

func folderFromProfile(env Environment, kind FolderKind) string {
	profile := env.Getenv("USERPROFILE")
	if profile == "" {
		return ""
	}
	if kind == FolderRoamingAppData {
		return filepath.Join(profile, "AppData", "Roaming")
	}
	return filepath.Join(profile, "AppData", "Local")
}

func folderFromHome(env Environment, kind FolderKind) string {
	home, err := env.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, "Application Data")
}
