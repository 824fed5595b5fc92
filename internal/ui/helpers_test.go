package ui

import (
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/toolbox/internal/catalog"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/atomicstack/toolbox/internal/progress"
	"github.com/atomicstack/toolbox/internal/runner"
	tea "github.com/charmbracelet/bubbletea"
)

const testCatalog = `
[Network]
ping = "ping.sh"

[Disk]
cleanup = "cleanup.sh"
check = "check.sh"
`

type fakeExecution struct {
	path    string
	outcome runner.Outcome
}

func (e *fakeExecution) Run() error                   { return nil }
func (e *fakeExecution) SetStdin(io.Reader)           {}
func (e *fakeExecution) SetStdout(io.Writer)          {}
func (e *fakeExecution) SetStderr(io.Writer)          {}
func (e *fakeExecution) Outcome(error) runner.Outcome { return e.outcome }

// fakeRunner applies the real precondition checks unless checkErr is set and
// records every script it is asked to launch.
type fakeRunner struct {
	realCheck bool
	checkErr  error
	commands  []string
}

func (r *fakeRunner) Check(path string) error {
	if r.realCheck {
		return runner.Check(path)
	}
	return r.checkErr
}

func (r *fakeRunner) Command(path string) runner.Execution {
	r.commands = append(r.commands, path)
	return &fakeExecution{path: path, outcome: runner.Outcome{Started: true, Succeeded: true, Message: "Script executed successfully"}}
}

type fakeSaver struct {
	mu    sync.Mutex
	saved []string
	err   error
}

func (s *fakeSaver) Save(p prefs.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, p.Theme)
	return s.err
}

func testLogs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	logging.Configure(filepath.Join(dir, "toolbox.log"))
	logging.ConfigureActivity(filepath.Join(dir, "activity.log"))
	t.Cleanup(func() {
		logging.Configure("")
		logging.ConfigureActivity("")
	})
	return dir
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, _ := newLoggedModel(t, opts)
	return m
}

// newLoggedModel also returns the directory the logs are written to.
func newLoggedModel(t *testing.T, opts Options) (*Model, string) {
	t.Helper()
	dir := testLogs(t)
	if opts.Catalog == nil {
		cat, err := catalog.Parse([]byte(testCatalog), "/opt/toolbox")
		if err != nil {
			t.Fatalf("parse catalog: %v", err)
		}
		opts.Catalog = cat
	}
	if opts.Runner == nil {
		opts.Runner = &fakeRunner{}
	}
	if opts.Progress == nil {
		opts.Progress = progress.New(1, time.Millisecond)
	}
	if opts.Version == "" {
		opts.Version = "0.6.7"
	}
	return NewModel(opts), dir
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func labels(l *level) []string {
	out := make([]string, 0, l.Len())
	for _, item := range l.Items {
		out = append(out, item.Label)
	}
	return out
}

func catalogCategory(name string) catalog.Category {
	return catalog.Category{Name: name}
}
