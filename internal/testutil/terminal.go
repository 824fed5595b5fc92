package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the launcher into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	RequireTmux(t)
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "toolbox")
	cmd := exec.Command("go", "build", "-o", bin, "./")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// LauncherScript returns a shell script that runs bin with args, records its
// exit status in exitPath and then idles so the pane stays open. Values are
// embedded in the script because the tmux server, not the client, supplies
// the session environment.
func LauncherScript(bin, dir, exitPath string, args ...string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString(shellQuote(bin))
	for _, arg := range args {
		b.WriteString(" " + shellQuote(arg))
	}
	b.WriteString(" 2> " + shellQuote(filepath.Join(dir, "stderr")) + "\n")
	b.WriteString("printf '%s' $? > " + shellQuote(exitPath) + "\n")
	b.WriteString("sleep 300\n")
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// WaitForText polls the pane until it shows want. exitPath, when set, names
// a file the launcher wrapper writes its exit status to; a non-zero status
// fails the test early.
func WaitForText(t *testing.T, ctx context.Context, socket, target, want, exitPath string) string {
	t.Helper()
	loggedPaneMissing := false
	last := ""
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %q: %v\nlast capture:\n%s", want, ctx.Err(), last)
		case <-time.After(50 * time.Millisecond):
			if code := readExitCode(exitPath); code != "" && code != "0" {
				t.Fatalf("toolbox exited early with code %s", code)
			}
			out, err := CapturePane(t, socket, target)
			if err != nil {
				if err == ErrPaneUnavailable {
					if !loggedPaneMissing {
						t.Logf("waiting for pane %s to become available", target)
						loggedPaneMissing = true
					}
					continue
				}
				t.Fatalf("capture-pane error: %v", err)
			}
			last = out
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

// WaitForExit polls exitPath until the launcher wrapper records a status.
func WaitForExit(t *testing.T, ctx context.Context, exitPath string) string {
	t.Helper()
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for exit: %v", ctx.Err())
		case <-time.After(50 * time.Millisecond):
			if code := readExitCode(exitPath); code != "" {
				return code
			}
		}
	}
}

func readExitCode(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
