package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/toolbox/internal/catalog"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/logging/events"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/atomicstack/toolbox/internal/runner"
	"github.com/atomicstack/toolbox/internal/sysinfo"
	"github.com/atomicstack/toolbox/internal/theme"
	"github.com/atomicstack/toolbox/internal/ui"
	"github.com/atomicstack/toolbox/internal/update"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Version is the release reported in the header and by the version command.
const Version = "0.6.7"

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Shell       []string
	Width       int
	Height      int
	Mouse       bool
	UpdateCheck bool
	UpdateURL   string
	PrefsPath   string
	Verbose     bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	for _, warning := range cat.Warnings() {
		logging.Error(errors.New(warning))
	}

	opts := ui.Options{
		Catalog: cat,
		Runner:  runner.New(cfg.Shell),
		System:  sysinfo.Collect(),
		Version: Version,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Verbose: cfg.Verbose,
	}
	if store, saved, err := LoadPreferences(cfg.PrefsPath); err == nil {
		opts.Prefs = store
		opts.Theme = saved
	} else {
		logging.Error(err)
	}
	if cfg.UpdateCheck {
		opts.Updates = update.NewChecker(cfg.UpdateURL, Version)
	}

	session := uuid.New().String()
	logging.Activity(fmt.Sprintf("Session %s started (%s)", session, cfg.CatalogPath))

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(ui.NewModel(opts), programOpts...)
	_, err = program.Run()

	events.App.Stop(session, err)
	logging.Activity(fmt.Sprintf("Session %s ended", session))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadPreferences opens the preference store at path and returns the saved
// theme id. A store that cannot be read still comes back usable, with the
// default theme.
func LoadPreferences(path string) (*prefs.Store, string, error) {
	store, err := prefs.NewStore(path, prefs.Preferences{Theme: theme.DefaultID})
	if err != nil {
		return nil, theme.DefaultID, fmt.Errorf("open preferences: %w", err)
	}
	saved, err := store.Load()
	if err != nil {
		logging.Error(err)
	}
	return store, theme.Resolve(saved.Theme).ID, nil
}
