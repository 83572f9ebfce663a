package appdirs

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyAppName indicates a Dirs was constructed without an application
// name. The package-level directory functions do not enforce this; only
// [New] does.
var ErrEmptyAppName = errors.New("appname is required")

// UserCacheDir returns the user-specific cache directory for the
// application.
//
// Platform bases:
//   - windows: %LOCALAPPDATA%\<appauthor>\<appname>\Cache
//   - mac:     ~/Library/Caches/<appname>
//   - unix:    $XDG_CACHE_HOME/<appname> or ~/.cache/<appname>
//
// On unix appname is lowercased. opinion controls only the trailing
// "Cache" segment on Windows; pass false to write cache files directly
// into the application's appdata directory. appauthor is used on Windows
// only and may be empty, in which case its segment is dropped.
func UserCacheDir(appname, appauthor, version string, opinion bool) string {
	return defaultResolver.UserCacheDir(appname, appauthor, version, opinion)
}

// UserDataDir returns the user-specific data directory for the
// application.
//
// Platform bases:
//   - windows: %LOCALAPPDATA%\<appauthor>\<appname>, or %APPDATA%\... when
//     roaming is true
//   - mac:     ~/Library/Application Support/<appname>
//   - unix:    $XDG_CONFIG_HOME/<appname> or ~/.config/<appname>
//
// The unix base is deliberately the XDG *config* home rather than the data
// home: Linux applications conventionally colocate config and data under
// ~/.config. roaming selects the Windows roaming profile folder and has no
// effect elsewhere.
func UserDataDir(appname, appauthor, version string, roaming bool) string {
	return defaultResolver.UserDataDir(appname, appauthor, version, roaming)
}

// SiteDataDir returns the site-wide (shared across users) data directory
// for the application.
//
// Platform bases:
//   - windows: %LOCALAPPDATA%\<appauthor>\<appname>
//   - mac:     /Library/Application Support/<appname>
//   - unix:    /etc/xdg/<appname>
//
// The Windows result is not recommended on modern installs: the resolved
// directory may be a protected system path the process cannot write to.
// Callers are warned, not blocked.
func SiteDataDir(appname, appauthor, version string) string {
	return defaultResolver.SiteDataDir(appname, appauthor, version)
}

// UserCacheDir computes the user cache directory against the resolver's
// environment. See the package-level [UserCacheDir] for the conventions.
func (r *Resolver) UserCacheDir(appname, appauthor, version string, opinion bool) string {
	switch r.platform() {
	case PlatformWindows:
		suffix := ""
		if opinion {
			suffix = "Cache"
		}
		return r.joinPath(r.WindowsFolder(FolderLocalAppData), appauthor, appname, version, suffix)
	case PlatformMac:
		return r.joinPath("~/Library/Caches", appname, version)
	default:
		base := r.env.Getenv("XDG_CACHE_HOME")
		if base == "" {
			base = "~/.cache"
		}
		return r.joinPath(base, strings.ToLower(appname), version)
	}
}

// UserDataDir computes the user data directory against the resolver's
// environment. See the package-level [UserDataDir] for the conventions.
func (r *Resolver) UserDataDir(appname, appauthor, version string, roaming bool) string {
	switch r.platform() {
	case PlatformWindows:
		kind := FolderLocalAppData
		if roaming {
			kind = FolderRoamingAppData
		}
		return r.joinPath(r.WindowsFolder(kind), appauthor, appname, version)
	case PlatformMac:
		return r.joinPath("~/Library/Application Support", appname, version)
	default:
		base := r.env.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			base = "~/.config"
		}
		return r.joinPath(base, strings.ToLower(appname), version)
	}
}

// SiteDataDir computes the site-wide data directory against the resolver's
// environment. See the package-level [SiteDataDir] for the conventions.
func (r *Resolver) SiteDataDir(appname, appauthor, version string) string {
	switch r.platform() {
	case PlatformWindows:
		return r.joinPath(r.WindowsFolder(FolderLocalAppData), appauthor, appname, version)
	case PlatformMac:
		return r.joinPath("/Library/Application Support", appname, version)
	default:
		return r.joinPath("/etc/xdg", strings.ToLower(appname), version)
	}
}

// Dirs bundles an application identity with resolution policy so callers
// can compute every directory variant without re-passing arguments.
type Dirs struct {
	// AppName is the application name. Required.
	AppName string

	// AppAuthor is the author or owning company. Used on Windows only.
	AppAuthor string

	// Version, when set, is appended as a final path segment to every
	// directory.
	Version string

	// Roaming selects the Windows roaming appdata folder for UserData.
	Roaming bool

	// Opinion controls the trailing "Cache" segment on Windows for
	// UserCache. Defaults to true.
	Opinion bool

	resolver *Resolver
}

// Option configures a Dirs.
type Option func(*Dirs)

// WithVersion appends version as a final path segment to every directory.
func WithVersion(version string) Option {
	return func(d *Dirs) { d.Version = version }
}

// WithRoaming selects the Windows roaming appdata folder for UserData.
func WithRoaming(roaming bool) Option {
	return func(d *Dirs) { d.Roaming = roaming }
}

// WithOpinion controls the trailing "Cache" segment on Windows for
// UserCache.
func WithOpinion(opinion bool) Option {
	return func(d *Dirs) { d.Opinion = opinion }
}

// WithEnvironment resolves directories against env instead of the real
// process environment.
func WithEnvironment(env Environment) Option {
	return func(d *Dirs) { d.resolver = NewResolver(env) }
}

// New creates a Dirs for the application. appname must be non-empty;
// appauthor may be empty outside Windows. Opinion defaults to true.
func New(appname, appauthor string, opts ...Option) (*Dirs, error) {
	if appname == "" {
		return nil, ErrEmptyAppName
	}
	d := &Dirs{
		AppName:   appname,
		AppAuthor: appauthor,
		Opinion:   true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.resolver == nil {
		d.resolver = defaultResolver
	}
	return d, nil
}

// UserCache returns the user cache directory for the application.
func (d *Dirs) UserCache() string {
	return d.resolver.UserCacheDir(d.AppName, d.AppAuthor, d.Version, d.Opinion)
}

// UserData returns the user data directory for the application.
func (d *Dirs) UserData() string {
	return d.resolver.UserDataDir(d.AppName, d.AppAuthor, d.Version, d.Roaming)
}

// SiteData returns the site-wide data directory for the application.
func (d *Dirs) SiteData() string {
	return d.resolver.SiteDataDir(d.AppName, d.AppAuthor, d.Version)
}
