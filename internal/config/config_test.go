package config

import (
	"reflect"
	"testing"

	"github.com/atomicstack/toolbox/internal/update"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"XDG_STATE_HOME=/state", "XDG_CONFIG_HOME=/conf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogPath != "config.toml" {
		t.Fatalf("expected default catalog, got %q", cfg.App.CatalogPath)
	}
	if !reflect.DeepEqual(cfg.App.Shell, []string{"bash", "-c"}) {
		t.Fatalf("expected default shell, got %v", cfg.App.Shell)
	}
	if !cfg.App.Mouse || !cfg.App.UpdateCheck {
		t.Fatalf("expected mouse and update check enabled by default")
	}
	if cfg.App.UpdateURL != update.DefaultURL {
		t.Fatalf("expected default update url, got %q", cfg.App.UpdateURL)
	}
	if cfg.Logging.ActivityPath != "/state/toolbox/activity.log" {
		t.Fatalf("expected XDG activity path, got %q", cfg.Logging.ActivityPath)
	}
	if cfg.Logging.FilePath != "/state/toolbox/toolbox.log" {
		t.Fatalf("expected XDG log path, got %q", cfg.Logging.FilePath)
	}
	if cfg.App.PrefsPath != "/conf/toolbox/preferences.yaml" {
		t.Fatalf("expected XDG prefs path, got %q", cfg.App.PrefsPath)
	}
	if cfg.Logging.Trace || cfg.Features.Verbose {
		t.Fatalf("expected trace and verbose off")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsDefaultsFollowSuppliedHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/process/state")
	t.Setenv("XDG_CONFIG_HOME", "/process/config")
	cfg, err := LoadArgs(nil, []string{"HOME=/home/tb"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.ActivityPath != "/home/tb/.local/state/toolbox/activity.log" {
		t.Fatalf("expected activity log under supplied HOME, got %q", cfg.Logging.ActivityPath)
	}
	if cfg.Logging.FilePath != "/home/tb/.local/state/toolbox/toolbox.log" {
		t.Fatalf("expected log file under supplied HOME, got %q", cfg.Logging.FilePath)
	}
	if cfg.App.PrefsPath != "/home/tb/.config/toolbox/preferences.yaml" {
		t.Fatalf("expected prefs under supplied HOME, got %q", cfg.App.PrefsPath)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TOOLBOX_CATALOG=/env/catalog.toml",
		"TOOLBOX_SHELL=zsh -c",
		"TOOLBOX_MOUSE=false",
		"TOOLBOX_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"--catalog", "/flag/tools.toml", "--shell", "sh -e -c", "--width", "100", "extra"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogPath != "/flag/tools.toml" {
		t.Fatalf("expected flag to win, got %q", cfg.App.CatalogPath)
	}
	if !reflect.DeepEqual(cfg.App.Shell, []string{"sh", "-e", "-c"}) {
		t.Fatalf("expected split shell, got %v", cfg.App.Shell)
	}
	if cfg.App.Mouse {
		t.Fatalf("expected mouse disabled from env")
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if cfg.App.Width != 100 || cfg.Flags["width"] != "100" {
		t.Fatalf("expected width 100, got %d / %q", cfg.App.Width, cfg.Flags["width"])
	}
	if !reflect.DeepEqual(cfg.Args, []string{"extra"}) {
		t.Fatalf("expected positional args, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"--width", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestLoadArgsRejectsUnbalancedShell(t *testing.T) {
	if _, err := LoadArgs([]string{"--shell", `bash "-c`}, nil); err == nil {
		t.Fatalf("expected shell parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"--shell", "   "}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected empty shell to fail validation")
	}
	cfg, err = LoadArgs([]string{"--catalog", ""}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected empty catalog to fail validation")
	}
}
