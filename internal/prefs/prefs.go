package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName = "toolbox"
	fileName   = "preferences.yaml"
)

// Preferences is the persisted cosmetic state.
type Preferences struct {
	Theme string `yaml:"theme"`
}

// Store reads and writes preferences at a fixed path.
type Store struct {
	Path     string
	Defaults Preferences
}

// DefaultPath returns the preference file under the user config directory.
func DefaultPath() (string, error) {
	return DefaultPathFrom(os.Getenv)
}

// DefaultPathFrom resolves DefaultPath against getenv: $XDG_CONFIG_HOME, then
// $HOME/.config, then the platform config directory.
func DefaultPathFrom(getenv func(string) string) (string, error) {
	if dir := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, appDirName, fileName), nil
	}
	if home := strings.TrimSpace(getenv("HOME")); home != "" {
		return filepath.Join(home, ".config", appDirName, fileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, fileName), nil
}

// NewStore returns a store for path, falling back to DefaultPath when path is
// empty.
func NewStore(path string, defaults Preferences) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{Path: path, Defaults: defaults}, nil
}

// Load returns the stored preferences. Missing or unreadable files yield the
// defaults; the error is returned alongside for logging.
func (s *Store) Load() (Preferences, error) {
	prefs := s.Defaults
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read preferences %s: %w", s.Path, err)
	}
	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return prefs, fmt.Errorf("parse preferences %s: %w", s.Path, err)
	}
	if loaded.Theme != "" {
		prefs.Theme = loaded.Theme
	}
	return prefs, nil
}

// Save writes prefs, creating the parent directory when needed.
func (s *Store) Save(prefs Preferences) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create preferences dir %s: %w", dir, err)
	}
	data, err := yaml.Marshal(&prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
