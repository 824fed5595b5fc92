package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/atomicstack/toolbox/internal/update"
	"github.com/google/shlex"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath     string
	ActivityPath string
	Trace        bool
}

type Features struct {
	Verbose bool
}

const (
	envCatalog     = "TOOLBOX_CATALOG"
	envShell       = "TOOLBOX_SHELL"
	envWidth       = "TOOLBOX_WIDTH"
	envHeight      = "TOOLBOX_HEIGHT"
	envMouse       = "TOOLBOX_MOUSE"
	envUpdateCheck = "TOOLBOX_UPDATE_CHECK"
	envUpdateURL   = "TOOLBOX_UPDATE_URL"
	envPrefs       = "TOOLBOX_PREFS"
	envActivityLog = "TOOLBOX_ACTIVITY_LOG"
	envLogFile     = "TOOLBOX_LOG_FILE"
	envTrace       = "TOOLBOX_TRACE"
	envVerbose     = "TOOLBOX_VERBOSE"

	defaultCatalog = "config.toml"
	defaultShell   = "bash -c"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	getenv := func(key string) string { return env[key] }
	stateDir := logging.StateDirFrom(getenv)

	fs := flag.NewFlagSet("toolbox", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, defaultCatalog), "path to the program catalog (TOML)")
	shell := fs.String("shell", envOrDefault(env, envShell, defaultShell), "command prefix used to run scripts")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse input")
	updateCheck := fs.Bool("update-check", envOrBool(env, envUpdateCheck, true), "check for a newer release at startup")
	updateURL := fs.String("update-url", envOrDefault(env, envUpdateURL, update.DefaultURL), "release metadata endpoint")
	prefsPath := fs.String("prefs", envOrDefault(env, envPrefs, defaultPrefsPath(getenv)), "path to the preference file")
	activityLog := fs.String("activity-log", envOrDefault(env, envActivityLog, logging.ActivityPathIn(stateDir)), "path to the activity log")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, logging.LogPathIn(stateDir)), "path to the log file")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "name the script path in status messages after each run")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	shellArgs, err := shlex.Split(*shell)
	if err != nil {
		return Config{}, fmt.Errorf("parse shell %q: %w", *shell, err)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath: *catalogPath,
			Shell:       shellArgs,
			Width:       *width,
			Height:      *height,
			Mouse:       *mouse,
			UpdateCheck: *updateCheck,
			UpdateURL:   *updateURL,
			PrefsPath:   *prefsPath,
			Verbose:     *verbose,
		},
		Logging: Logging{
			FilePath:     *logFile,
			ActivityPath: *activityLog,
			Trace:        *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"catalog":     *catalogPath,
			"shell":       *shell,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"mouse":       strconv.FormatBool(*mouse),
			"updateCheck": strconv.FormatBool(*updateCheck),
			"updateURL":   *updateURL,
			"prefs":       *prefsPath,
			"activityLog": *activityLog,
			"logFile":     *logFile,
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
		},
		Args: append([]string(nil), fs.Args()...),
	}

	return cfg, nil
}

// defaultPrefsPath is empty when the config directory is unknown; the store
// reports that error when it is opened.
func defaultPrefsPath(getenv func(string) string) string {
	path, err := prefs.DefaultPathFrom(getenv)
	if err != nil {
		return ""
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.CatalogPath) == "" {
		return errors.New("catalog path must not be empty")
	}
	if len(cfg.App.Shell) == 0 {
		return errors.New("shell command must not be empty")
	}
	return nil
}
