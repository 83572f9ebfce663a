package appdirs

import (
	"path/filepath"
	"strings"
)

// joinPath joins the non-empty segments with the native path separator.
// Empty segments are dropped before joining, so an absent author or
// version never leaves a doubled separator. A leading "~" on the first
// surviving segment is expanded to the user's home directory. With no
// surviving segments the result is "".
func (r *Resolver) joinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	parts[0] = r.expandHome(parts[0])
	return filepath.Join(parts...)
}

// expandHome replaces a leading "~" with the user's home directory. Paths
// not starting with "~" pass through untouched, as does the input when the
// home directory cannot be determined.
func (r *Resolver) expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := r.env.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
