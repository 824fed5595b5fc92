package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/logging/events"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/atomicstack/toolbox/internal/runner"
	"github.com/atomicstack/toolbox/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const loadingTickInterval = 100 * time.Millisecond

// scriptFinishedMsg reports the outcome once the terminal is back in UI mode.
type scriptFinishedMsg struct {
	path    string
	outcome runner.Outcome
}

type updateResultMsg struct {
	latest string
	err    error
}

type preferenceSavedMsg struct {
	theme string
	err   error
}

type loadingTickMsg struct{}

type loadingDoneMsg struct{}

func (m *Model) runSelectedProgram() tea.Cmd {
	p, ok := m.catalog.Program(m.categories.Cursor, m.programs.Cursor)
	if !ok {
		return nil
	}
	return m.requestRun(p.Script)
}

func (m *Model) runSelectedMatch() tea.Cmd {
	match, ok := m.selectedMatch()
	if !ok {
		return nil
	}
	return m.requestRun(match.Script)
}

// requestRun checks path and hands the terminal to the script. Failed checks
// are reported without ever releasing the display.
func (m *Model) requestRun(path string) tea.Cmd {
	if m.runner == nil || path == "" {
		return nil
	}
	events.Script.Request(path)
	if err := m.runner.Check(path); err != nil {
		events.Script.Rejected(path, err)
		logging.Error(err)
		logging.Activity(fmt.Sprintf("Error running script: %s - %v", path, err))
		m.forceClearInfo()
		m.errMsg = fmt.Sprintf("Error running script: %v", err)
		return nil
	}
	m.errMsg = ""
	m.forceClearInfo()
	execution := m.runner.Command(path)
	m.indicator.Start()
	run := tea.Exec(execution, func(err error) tea.Msg {
		return scriptFinishedMsg{path: path, outcome: execution.Outcome(err)}
	})
	return tea.Batch(run, m.loadingTick())
}

func (m *Model) handleScriptFinishedMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(scriptFinishedMsg)
	if !ok {
		return nil
	}
	out := done.outcome
	events.Script.Finished(done.path, out.ExitCode, out.Message)
	switch {
	case !out.Started:
		logging.Error(fmt.Errorf("%s: %s", done.path, out.Message))
		logging.Activity(fmt.Sprintf("Error running script: %s - %s", done.path, out.Message))
		m.errMsg = out.Message
	case !out.Succeeded:
		logging.Activity(fmt.Sprintf("Script executed: %s (exit status %d)", done.path, out.ExitCode))
		m.errMsg = out.Message
	default:
		logging.Activity("Script executed: " + done.path)
		m.errMsg = ""
		if m.verbose {
			m.setInfo(fmt.Sprintf("%s: %s", out.Message, done.path))
		} else {
			m.setInfo(out.Message)
		}
	}
	return m.joinIndicator()
}

// startUpdateCheck queries the release endpoint in the background while the
// loading indicator runs.
func (m *Model) startUpdateCheck() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	if !m.indicator.Start() {
		return nil
	}
	checker := m.updates
	check := m.bus.Execute(command.Request{
		ID:    "update",
		Label: "check for updates",
		Handler: func() tea.Msg {
			latest, err := checker.Latest(context.Background())
			return updateResultMsg{latest: latest, err: err}
		},
	})
	return tea.Batch(check, m.loadingTick())
}

func (m *Model) handleUpdateResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(updateResultMsg)
	if !ok {
		return nil
	}
	events.Update.Result(result.latest, result.err)
	if result.err != nil {
		logging.Error(fmt.Errorf("check for updates: %w", result.err))
		logging.Activity(fmt.Sprintf("Error checking for updates: %v", result.err))
	}
	m.newVersion = result.latest
	return m.joinIndicator()
}

func (m *Model) saveThemeCmd(id string) tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	saver := m.prefs
	return m.bus.Execute(command.Request{
		ID:    "prefs",
		Label: "save theme " + id,
		Handler: func() tea.Msg {
			return preferenceSavedMsg{theme: id, err: saver.Save(prefs.Preferences{Theme: id})}
		},
	})
}

func (m *Model) handlePreferenceSavedMsg(msg tea.Msg) tea.Cmd {
	saved, ok := msg.(preferenceSavedMsg)
	if !ok || saved.err == nil {
		return nil
	}
	logging.Error(fmt.Errorf("save theme %s: %w", saved.theme, saved.err))
	logging.Activity(fmt.Sprintf("Failed to save color scheme: %v", saved.err))
	m.setInfo(fmt.Sprintf("Failed to save color scheme: %v", saved.err))
	return nil
}

func (m *Model) loadingTick() tea.Cmd {
	return tea.Tick(loadingTickInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{}
	})
}

func (m *Model) handleLoadingTickMsg(tea.Msg) tea.Cmd {
	if !m.loading() {
		return nil
	}
	return m.loadingTick()
}

// joinIndicator waits for the animation goroutine off the event loop. Input
// stays ignored until loadingDoneMsg arrives.
func (m *Model) joinIndicator() tea.Cmd {
	if !m.loading() {
		return nil
	}
	indicator := m.indicator
	return func() tea.Msg {
		indicator.Wait()
		return loadingDoneMsg{}
	}
}

func (m *Model) handleLoadingDoneMsg(tea.Msg) tea.Cmd {
	return nil
}
