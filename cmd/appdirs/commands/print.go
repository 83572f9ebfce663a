package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/internal/logging"
)

// report is the set of resolved directories printed by the root command.
type report struct {
	App       string `json:"app" yaml:"app" toml:"app"`
	Author    string `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	UserData  string `json:"user_data_dir" yaml:"user_data_dir" toml:"user_data_dir"`
	UserCache string `json:"user_cache_dir" yaml:"user_cache_dir" toml:"user_cache_dir"`
	SiteData  string `json:"site_data_dir" yaml:"site_data_dir" toml:"site_data_dir"`
}

// render writes the report to w in the requested format. An empty format
// selects text.
func render(w io.Writer, rep report, format string) error {
	switch format {
	case "", "text":
		return renderText(w, rep)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rep)
	case "toml":
		return toml.NewEncoder(w).Encode(rep)
	default:
		err := errors.Wrapf(apperrors.ErrInvalidFormat, "%q", format)
		return apperrors.NewUserError(err, "Use text, json, yaml, or toml")
	}
}

func renderText(w io.Writer, rep report) error {
	label := func(s string) string { return s }
	if logging.SupportsColor(w) {
		c := color.New(color.FgCyan)
		label = func(s string) string { return c.Sprint(s) }
	}

	title := rep.App
	if rep.Version != "" {
		title += " " + rep.Version
	}
	fmt.Fprintf(w, "-- directories for %s\n", title)
	fmt.Fprintf(w, "%s %s\n", label("user data dir: "), rep.UserData)
	fmt.Fprintf(w, "%s %s\n", label("user cache dir:"), rep.UserCache)
	fmt.Fprintf(w, "%s %s\n", label("site data dir: "), rep.SiteData)
	return nil
}
