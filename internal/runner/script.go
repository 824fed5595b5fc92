package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// DefaultShell is the command prefix used to launch scripts.
var DefaultShell = []string{"bash", "-c"}

const continuePrompt = "Press any key to continue..."

// Outcome summarises one script run.
type Outcome struct {
	Started   bool
	Succeeded bool
	ExitCode  int
	Message   string
}

// Execution is a script invocation that takes over the terminal while it
// runs. bubbletea releases the display before Run and restores it afterwards.
type Execution interface {
	tea.ExecCommand
	Outcome(err error) Outcome
}

// Runner validates and launches catalog scripts through a shell.
type Runner struct {
	Shell []string
}

// New returns a runner that launches scripts with the given shell prefix.
func New(shell []string) *Runner {
	if len(shell) == 0 {
		shell = DefaultShell
	}
	return &Runner{Shell: append([]string(nil), shell...)}
}

// Check runs the script preconditions.
func (r *Runner) Check(path string) error {
	return Check(path)
}

// Command prepares path for execution. Callers must Check first.
func (r *Runner) Command(path string) Execution {
	return r.Script(path)
}

// Script returns the concrete execution for path.
func (r *Runner) Script(path string) *Script {
	shell := r.Shell
	if len(shell) == 0 {
		shell = DefaultShell
	}
	args := append([]string(nil), shell...)
	if args[len(args)-1] == "-c" {
		args = append(args, shellQuote(path))
	} else {
		args = append(args, path)
	}
	return &Script{
		Path:   path,
		args:   args,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Script runs one catalog entry with the terminal attached directly to the
// child process.
type Script struct {
	Path string

	args     []string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	started  bool
	exitCode int
}

func (s *Script) SetStdin(r io.Reader)  { s.stdin = r }
func (s *Script) SetStdout(w io.Writer) { s.stdout = w }
func (s *Script) SetStderr(w io.Writer) { s.stderr = w }

// Args returns the argv used to launch the script.
func (s *Script) Args() []string {
	return append([]string(nil), s.args...)
}

// Run clears the screen, runs the script and waits for one key press so the
// output stays readable before the caller redraws.
func (s *Script) Run() error {
	fmt.Fprint(s.stdout, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	err := s.Exec()
	if err != nil {
		fmt.Fprintf(s.stdout, "Error running script: %v\n", err)
	}
	fmt.Fprint(s.stdout, continuePrompt)
	waitForKey(s.stdin)
	fmt.Fprintln(s.stdout)
	return err
}

// Exec runs the script with the configured stdio and records its exit
// status. A non-zero exit is not an error.
func (s *Script) Exec() error {
	cmd := exec.Command(s.args[0], s.args[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		s.started = true
	case errors.As(err, &exitErr):
		s.started = true
		s.exitCode = exitErr.ExitCode()
		fmt.Fprintln(s.stdout, "Script exited with non-zero status code")
		err = nil
	default:
		err = fmt.Errorf("start %s: %w", s.Path, err)
	}
	return err
}

// Outcome interprets the error bubbletea reports after Run.
func (s *Script) Outcome(err error) Outcome {
	if err != nil || !s.started {
		if err == nil {
			err = errors.New("script did not start")
		}
		return Outcome{ExitCode: -1, Message: fmt.Sprintf("Error running script: %v", err)}
	}
	if s.exitCode != 0 {
		return Outcome{
			Started:  true,
			ExitCode: s.exitCode,
			Message:  fmt.Sprintf("Script exited with status %d", s.exitCode),
		}
	}
	return Outcome{Started: true, Succeeded: true, Message: "Script executed successfully"}
}

// waitForKey consumes a single key press, switching a terminal to raw mode
// for the duration of the read.
func waitForKey(r io.Reader) {
	if r == nil {
		return
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		if state, err := term.MakeRaw(fd); err == nil {
			defer term.Restore(fd, state)
		}
	}
	// Escape sequences arrive in one read; a larger buffer swallows them.
	buf := make([]byte, 16)
	_, _ = r.Read(buf)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
