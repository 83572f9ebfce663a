// Package appdirs resolves per-platform, per-application standard
// filesystem locations: user cache, user data/config, and site-wide data
// directories.
//
// The package is a pure path derivation utility. It performs no I/O beyond
// read-only environment lookups, creates no directories, and mutates
// nothing. Every function returns a freshly computed string and is safe to
// call concurrently.
//
// # Directory Conventions
//
// Given an application named "MyApp" by author "Acme":
//
//	| Function     | Windows                                   | macOS                                | Unix                  |
//	|--------------|-------------------------------------------|--------------------------------------|-----------------------|
//	| UserCacheDir | %LOCALAPPDATA%\Acme\MyApp\Cache           | ~/Library/Caches/MyApp               | ~/.cache/myapp        |
//	| UserDataDir  | %LOCALAPPDATA%\Acme\MyApp (or %APPDATA%)  | ~/Library/Application Support/MyApp  | ~/.config/myapp       |
//	| SiteDataDir  | %LOCALAPPDATA%\Acme\MyApp                 | /Library/Application Support/MyApp   | /etc/xdg/myapp        |
//
// On unix the application name is lowercased; on Windows and macOS it is
// used verbatim. The XDG_CACHE_HOME and XDG_CONFIG_HOME environment
// variables override the unix bases. Note that UserDataDir deliberately
// uses the XDG config home rather than the data home: Linux applications
// conventionally colocate config and data under ~/.config.
//
// # Degraded Output Over Failure
//
// The directory functions never fail. A missing author on Windows, an
// unset environment variable, or an unresolvable special folder each
// degrade to a best-effort path with the absent segment dropped. The only
// caller contract enforced is a non-empty application name, and only by
// the [New] constructor; the package-level functions proceed silently.
//
// # Simulating Platforms
//
// Directory resolution reads the host environment through the
// [Environment] interface. Build a [Resolver] around a fake Environment to
// compute paths for any platform/environment combination without touching
// the real process environment:
//
//	r := appdirs.NewResolver(fakeEnv)
//	dir := r.UserCacheDir("MyApp", "Acme", "", true)
package appdirs
