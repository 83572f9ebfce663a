// Package commands implements the CLI commands for appdirs.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/appdirs"
	"github.com/thoreinstein/appdirs/cmd"
	"github.com/thoreinstein/appdirs/internal/config"
	apperrors "github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/internal/logging"
)

// appFlag holds the value of the --app flag.
var appFlag string

// authorFlag holds the value of the --author flag.
var authorFlag string

// appVersionFlag holds the value of the --app-version flag.
var appVersionFlag string

// roamingFlag holds the value of the --roaming flag.
var roamingFlag bool

// opinionFlag holds the value of the --opinion flag.
var opinionFlag bool

// formatFlag holds the value of the -o/--format flag.
var formatFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg holds the loaded configuration.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&appFlag, "app", "a", "",
		"application name (falls back to the config file)")
	rootCmd.Flags().StringVar(&authorFlag, "author", "",
		"application author or company, used on Windows only")
	rootCmd.Flags().StringVar(&appVersionFlag, "app-version", "",
		"application version, appended as a final path segment")
	rootCmd.Flags().BoolVar(&roamingFlag, "roaming", false,
		"use the roaming appdata folder for the user data dir (Windows)")
	rootCmd.Flags().BoolVar(&opinionFlag, "opinion", true,
		`append the conventional "Cache" segment to the cache dir (Windows)`)
	rootCmd.Flags().StringVarP(&formatFlag, "format", "o", "",
		"output format: text, json, yaml, toml")

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("appdirs version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "appdirs",
	Short: "Print standard application directories for this platform",
	Long: `appdirs prints the standard per-platform filesystem locations for an
application: the user cache directory, the user data directory, and the
site-wide data directory.

Paths follow each platform's conventions: %LOCALAPPDATA%/%APPDATA% on
Windows, ~/Library on macOS, and the XDG base directories on unix. The
command only derives path strings; it never creates directories.

Frequently used values for --app and --author can be stored in the config
file or supplied through APPDIRS_* environment variables.`,
	Example: `  # All directories for an application
  appdirs --app MyApp --author Acme

  # Versioned cache path without the Windows "Cache" suffix
  appdirs --app MyApp --author Acme --app-version 2.0 --opinion=false

  # Machine readable output
  appdirs --app MyApp -o json

  See Also: appdirs bases, appdirs version`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: runRoot,
}

func runRoot(cobraCmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return apperrors.NewConfigError(configLoadErr)
	}

	app := appFlag
	author := authorFlag
	version := appVersionFlag
	roaming := roamingFlag
	format := formatFlag
	if cfg != nil {
		if app == "" {
			app = cfg.App
		}
		if author == "" {
			author = cfg.Author
		}
		if version == "" {
			version = cfg.Version
		}
		if !cobraCmd.Flags().Changed("roaming") && cfg.Roaming {
			roaming = true
		}
		if format == "" {
			format = cfg.Format
		}
	}

	if app == "" {
		return apperrors.NewUserError(apperrors.ErrMissingApp,
			"Pass --app or set app in the config file")
	}

	dirs, err := appdirs.New(app, author,
		appdirs.WithVersion(version),
		appdirs.WithRoaming(roaming),
		appdirs.WithOpinion(opinionFlag),
	)
	if err != nil {
		return apperrors.NewUserError(err, "Pass a non-empty --app")
	}

	logging.FromContext(cobraCmd.Context()).Debug("resolving directories",
		"app", app, "author", author, "version", version, "roaming", roaming)

	rep := report{
		App:       app,
		Author:    author,
		Version:   version,
		UserData:  dirs.UserData(),
		UserCache: dirs.UserCache(),
		SiteData:  dirs.SiteData(),
	}
	return render(cobraCmd.OutOrStdout(), rep, format)
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return apperrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("APPDIRS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1 // Debug
				case "2":
					v = 2 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return apperrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
