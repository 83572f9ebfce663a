package appdirs

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

const (
	testApp    = "MyApp"
	testAuthor = "Acme"
)

func winVars() map[string]string {
	return map[string]string{
		"LOCALAPPDATA": `C:\Users\test\AppData\Local`,
		"APPDATA":      `C:\Users\test\AppData\Roaming`,
	}
}

func TestUserCacheDir(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		version string
		opinion bool
		want    string
	}{
		{
			name:    "windows opinionated",
			env:     windowsEnv(winVars()),
			opinion: true,
			want:    filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp, "Cache"),
		},
		{
			name:    "windows without opinion",
			env:     windowsEnv(winVars()),
			opinion: false,
			want:    filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp),
		},
		{
			name:    "windows with version",
			env:     windowsEnv(winVars()),
			version: "2.0",
			opinion: true,
			want:    filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp, "2.0", "Cache"),
		},
		{
			name:    "mac",
			env:     macEnv(),
			opinion: true,
			want:    filepath.Join("/Users/test", "Library", "Caches", testApp),
		},
		{
			name:    "mac ignores opinion",
			env:     macEnv(),
			opinion: false,
			want:    filepath.Join("/Users/test", "Library", "Caches", testApp),
		},
		{
			name:    "unix default base lowercases appname",
			env:     unixEnv(nil),
			opinion: true,
			want:    filepath.Join("/home/test", ".cache", "myapp"),
		},
		{
			name:    "unix honors XDG_CACHE_HOME",
			env:     unixEnv(map[string]string{"XDG_CACHE_HOME": "/custom/cache"}),
			opinion: true,
			want:    filepath.Join("/custom/cache", "myapp"),
		},
		{
			name:    "unix with version",
			env:     unixEnv(nil),
			version: "2.0",
			opinion: true,
			want:    filepath.Join("/home/test", ".cache", "myapp", "2.0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.env)
			got := r.UserCacheDir(testApp, testAuthor, tt.version, tt.opinion)
			if got != tt.want {
				t.Errorf("UserCacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserDataDir(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		version string
		roaming bool
		want    string
	}{
		{
			name: "windows local",
			env:  windowsEnv(winVars()),
			want: filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp),
		},
		{
			name:    "windows roaming",
			env:     windowsEnv(winVars()),
			roaming: true,
			want:    filepath.Join(`C:\Users\test\AppData\Roaming`, testAuthor, testApp),
		},
		{
			name: "mac",
			env:  macEnv(),
			want: filepath.Join("/Users/test", "Library", "Application Support", testApp),
		},
		{
			name: "unix uses config home not data home",
			env:  unixEnv(nil),
			want: filepath.Join("/home/test", ".config", "myapp"),
		},
		{
			name: "unix honors XDG_CONFIG_HOME",
			env:  unixEnv(map[string]string{"XDG_CONFIG_HOME": "/custom/config"}),
			want: filepath.Join("/custom/config", "myapp"),
		},
		{
			name:    "unix roaming has no effect",
			env:     unixEnv(nil),
			roaming: true,
			want:    filepath.Join("/home/test", ".config", "myapp"),
		},
		{
			name:    "mac with version",
			env:     macEnv(),
			version: "2.0",
			want:    filepath.Join("/Users/test", "Library", "Application Support", testApp, "2.0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.env)
			got := r.UserDataDir(testApp, testAuthor, tt.version, tt.roaming)
			if got != tt.want {
				t.Errorf("UserDataDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserDataDirRoamingDiffers(t *testing.T) {
	r := NewResolver(windowsEnv(winVars()))

	local := r.UserDataDir(testApp, testAuthor, "", false)
	roaming := r.UserDataDir(testApp, testAuthor, "", true)
	if local == roaming {
		t.Errorf("roaming and local resolved to the same path %q", local)
	}
}

func TestSiteDataDir(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		version string
		want    string
	}{
		{
			name: "windows reuses local appdata",
			env:  windowsEnv(winVars()),
			want: filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp),
		},
		{
			name: "mac",
			env:  macEnv(),
			want: filepath.Join("/Library", "Application Support", testApp),
		},
		{
			name: "unix",
			env:  unixEnv(nil),
			want: filepath.Join("/etc", "xdg", "myapp"),
		},
		{
			name:    "unix with version",
			env:     unixEnv(nil),
			version: "2.0",
			want:    filepath.Join("/etc", "xdg", "myapp", "2.0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.env)
			got := r.SiteDataDir(testApp, testAuthor, tt.version)
			if got != tt.want {
				t.Errorf("SiteDataDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingAuthorOnWindowsDegrades(t *testing.T) {
	r := NewResolver(windowsEnv(winVars()))

	got := r.UserDataDir(testApp, "", "", false)
	want := filepath.Join(`C:\Users\test\AppData\Local`, testApp)
	if got != want {
		t.Errorf("UserDataDir() = %q, want %q", got, want)
	}
}

func TestVersionAppendsOneSegment(t *testing.T) {
	envs := map[string]Environment{
		"windows": windowsEnv(winVars()),
		"mac":     macEnv(),
		"unix":    unixEnv(nil),
	}

	for name, env := range envs {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(env)

			funcs := map[string]func(version string) string{
				"UserCacheDir": func(v string) string { return r.UserCacheDir(testApp, testAuthor, v, false) },
				"UserDataDir":  func(v string) string { return r.UserDataDir(testApp, testAuthor, v, false) },
				"SiteDataDir":  func(v string) string { return r.SiteDataDir(testApp, testAuthor, v) },
			}

			for fname, fn := range funcs {
				bare := fn("")
				versioned := fn("2.0")
				if want := filepath.Join(bare, "2.0"); versioned != want {
					t.Errorf("%s with version = %q, want %q", fname, versioned, want)
				}
			}
		})
	}
}

func TestAppNameIsPathComponent(t *testing.T) {
	envs := map[string]Environment{
		"windows": windowsEnv(winVars()),
		"mac":     macEnv(),
		"unix":    unixEnv(nil),
	}

	for name, env := range envs {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(env)
			dirs := []string{
				r.UserCacheDir(testApp, testAuthor, "", true),
				r.UserDataDir(testApp, testAuthor, "", false),
				r.SiteDataDir(testApp, testAuthor, ""),
			}

			want := testApp
			if name == "unix" {
				want = strings.ToLower(testApp)
			}
			for _, dir := range dirs {
				if dir == "" {
					t.Fatal("resolved directory is empty")
				}
				found := false
				for _, comp := range strings.Split(dir, string(filepath.Separator)) {
					if comp == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("path %q missing component %q", dir, want)
				}
			}
		})
	}
}

func TestResolutionIsIdempotent(t *testing.T) {
	r := NewResolver(unixEnv(map[string]string{"XDG_CACHE_HOME": "/custom/cache"}))

	first := r.UserCacheDir(testApp, testAuthor, "2.0", true)
	second := r.UserCacheDir(testApp, testAuthor, "2.0", true)
	if first != second {
		t.Errorf("repeated call changed result: %q != %q", first, second)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	// Against the real host environment: results must be non-empty and
	// carry the appname (lowercased on unix hosts).
	want := testApp
	if detectPlatform(runtime.GOOS) == PlatformUnix {
		want = strings.ToLower(testApp)
	}

	dirs := map[string]string{
		"UserCacheDir": UserCacheDir(testApp, testAuthor, "", true),
		"UserDataDir":  UserDataDir(testApp, testAuthor, "", false),
		"SiteDataDir":  SiteDataDir(testApp, testAuthor, ""),
	}

	for name, dir := range dirs {
		if dir == "" {
			t.Errorf("%s returned empty path", name)
			continue
		}
		if !strings.Contains(dir, want) {
			t.Errorf("%s = %q, want it to contain %q", name, dir, want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("empty appname is rejected", func(t *testing.T) {
		_, err := New("", testAuthor)
		if !errors.Is(err, ErrEmptyAppName) {
			t.Errorf("New(\"\", ...) error = %v, want ErrEmptyAppName", err)
		}
	})

	t.Run("opinion defaults to true", func(t *testing.T) {
		d, err := New(testApp, testAuthor)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		if !d.Opinion {
			t.Error("Opinion = false, want true by default")
		}
	})

	t.Run("options are applied", func(t *testing.T) {
		d, err := New(testApp, testAuthor,
			WithVersion("2.0"),
			WithRoaming(true),
			WithOpinion(false),
			WithEnvironment(windowsEnv(winVars())),
		)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		if got, want := d.UserData(), filepath.Join(`C:\Users\test\AppData\Roaming`, testAuthor, testApp, "2.0"); got != want {
			t.Errorf("UserData() = %q, want %q", got, want)
		}
		if got, want := d.UserCache(), filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp, "2.0"); got != want {
			t.Errorf("UserCache() = %q, want %q", got, want)
		}
		if got, want := d.SiteData(), filepath.Join(`C:\Users\test\AppData\Local`, testAuthor, testApp, "2.0"); got != want {
			t.Errorf("SiteData() = %q, want %q", got, want)
		}
	})

	t.Run("methods match resolver functions", func(t *testing.T) {
		env := unixEnv(nil)
		d, err := New(testApp, testAuthor, WithEnvironment(env))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		r := NewResolver(env)
		if got, want := d.UserData(), r.UserDataDir(testApp, testAuthor, "", false); got != want {
			t.Errorf("UserData() = %q, want %q", got, want)
		}
		if got, want := d.UserCache(), r.UserCacheDir(testApp, testAuthor, "", true); got != want {
			t.Errorf("UserCache() = %q, want %q", got, want)
		}
		if got, want := d.SiteData(), r.SiteDataDir(testApp, testAuthor, ""); got != want {
			t.Errorf("SiteData() = %q, want %q", got, want)
		}
	})
}
