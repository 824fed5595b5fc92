package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	appDir             = "toolbox"
	defaultLogFile     = "toolbox.log"
	defaultActivityLog = "activity.log"
	activityTimeLayout = "2006-01-02 15:04:05"
)

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	activityPath = defaultActivityLog

	now = time.Now
)

// StateDir returns the directory holding the log files: $XDG_STATE_HOME/toolbox,
// falling back to ~/.local/state/toolbox.
func StateDir() string {
	return StateDirFrom(os.Getenv)
}

// StateDirFrom resolves StateDir against getenv instead of the process
// environment.
func StateDirFrom(getenv func(string) string) string {
	if dir := strings.TrimSpace(getenv("XDG_STATE_HOME")); dir != "" {
		return filepath.Join(dir, appDir)
	}
	home := strings.TrimSpace(getenv("HOME"))
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, ".local", "state", appDir)
}

// DefaultLogPath is the error and trace log location.
func DefaultLogPath() string {
	return LogPathIn(StateDir())
}

// DefaultActivityPath is the activity log location.
func DefaultActivityPath() string {
	return ActivityPathIn(StateDir())
}

// LogPathIn names the error and trace log inside dir.
func LogPathIn(dir string) string {
	return filepath.Join(dir, defaultLogFile)
}

// ActivityPathIn names the activity log inside dir.
func ActivityPathIn(dir string) string {
	return filepath.Join(dir, defaultActivityLog)
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}

	traceMu.Lock()
	path := logPath
	traceMu.Unlock()

	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	log.SetOutput(f)
	log.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	enabled := traceEnabled
	path := logPath
	traceMu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Activity appends a timestamped line to the activity log. Failures are
// reported on stderr and otherwise ignored.
func Activity(action string) {
	traceMu.Lock()
	path := activityPath
	traceMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "activity logging failed: %v\n", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", now().Format(activityTimeLayout), action); err != nil {
		fmt.Fprintf(os.Stderr, "activity logging failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	logPath = ensureDir(path, defaultLogFile)
}

// ConfigureActivity sets the activity log destination with the same fallback
// rules as Configure.
func ConfigureActivity(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	activityPath = ensureDir(path, defaultActivityLog)
}

func ensureDir(path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return fallback
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		return fallback
	}
	return path
}
