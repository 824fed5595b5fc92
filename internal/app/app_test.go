package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/atomicstack/toolbox/internal/theme"
)

func TestLoadPreferencesMissingFileUsesDefault(t *testing.T) {
	store, saved, err := LoadPreferences(filepath.Join(t.TempDir(), "preferences.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store == nil {
		t.Fatalf("expected a usable store")
	}
	if saved != theme.DefaultID {
		t.Fatalf("expected default theme, got %q", saved)
	}
}

func TestLoadPreferencesReturnsSavedTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := (&prefs.Store{Path: path}).Save(prefs.Preferences{Theme: "ocean"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, saved, err := LoadPreferences(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != "ocean" {
		t.Fatalf("expected ocean, got %q", saved)
	}
}

func TestLoadPreferencesUnknownThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("theme: not-a-theme\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, saved, err := LoadPreferences(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != theme.DefaultID {
		t.Fatalf("expected default theme, got %q", saved)
	}
}

func TestRunMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	logging.Configure(filepath.Join(dir, "toolbox.log"))
	t.Cleanup(func() { logging.Configure("") })

	err := Run(Config{CatalogPath: filepath.Join(dir, "missing.toml")})
	if err == nil {
		t.Fatalf("expected error for a missing catalog")
	}
	if !strings.Contains(err.Error(), "load catalog") {
		t.Fatalf("expected load catalog error, got %v", err)
	}
}
