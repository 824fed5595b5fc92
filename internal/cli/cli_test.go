package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/fatih/color"
)

type fixture struct {
	dir string
	cfg app.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	logging.Configure(filepath.Join(dir, "toolbox.log"))
	logging.ConfigureActivity(filepath.Join(dir, "activity.log"))
	t.Cleanup(func() {
		logging.Configure("")
		logging.ConfigureActivity("")
	})

	write := func(name, body string, mode os.FileMode) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), mode); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("ping.sh", "#!/bin/sh\necho pong\n", 0o755)
	write("check.sh", "#!/bin/sh\nexit 4\n", 0o755)
	write("cleanup.sh", "#!/bin/sh\necho clean\n", 0o644)
	write("config.toml", `
[Network]
ping = "ping.sh"

[Disk]
cleanup = "cleanup.sh"
check = "check.sh"
report = "missing.sh"
`, 0o644)

	return fixture{
		dir: dir,
		cfg: app.Config{
			CatalogPath: filepath.Join(dir, "config.toml"),
			Shell:       []string{"sh", "-c"},
			PrefsPath:   filepath.Join(dir, "preferences.yaml"),
		},
	}
}

func run(cfg app.Config, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(cfg, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestListShowsScriptStatus(t *testing.T) {
	f := newFixture(t)
	code, out, errOut := run(f.cfg, "list")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, errOut)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 rows, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "CATEGORY") {
		t.Fatalf("expected header first, got %q", lines[0])
	}
	for _, want := range []struct{ program, status string }{
		{"ping", "ok"},
		{"cleanup", "not executable"},
		{"check", "ok"},
		{"report", "missing"},
	} {
		found := false
		for _, line := range lines[1:] {
			if strings.Contains(line, want.program) && strings.HasSuffix(line, want.status) {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s with status %q in %q", want.program, want.status, out)
		}
	}
}

func TestListMissingCatalog(t *testing.T) {
	f := newFixture(t)
	f.cfg.CatalogPath = filepath.Join(f.dir, "nope.toml")
	code, _, errOut := run(f.cfg, "list")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "load catalog") {
		t.Fatalf("expected load error, got %q", errOut)
	}
}

func TestCheckReportsFailure(t *testing.T) {
	f := newFixture(t)
	code, out, _ := run(f.cfg, "check", "cleanup")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out, "FAIL Disk/cleanup") || !strings.Contains(out, "not executable") {
		t.Fatalf("expected not executable failure, got %q", out)
	}

	code, out, _ = run(f.cfg, "check", "PING")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out, "ok Network/ping") {
		t.Fatalf("expected ok line, got %q", out)
	}
}

func TestCheckUnknownNameSuggests(t *testing.T) {
	f := newFixture(t)
	code, _, errOut := run(f.cfg, "check", "chk")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, `no program named "chk"`) || !strings.Contains(errOut, "check") {
		t.Fatalf("expected suggestion for check, got %q", errOut)
	}
}

func TestSuggestLimitsResults(t *testing.T) {
	got := suggest("c", []string{"cleanup", "check", "ping", "cron", "cat"})
	if len(got) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %v", maxSuggestions, got)
	}
	for _, name := range got {
		if name == "ping" {
			t.Fatalf("expected ping not suggested, got %v", got)
		}
	}
}

func TestRunExecutesScript(t *testing.T) {
	f := newFixture(t)
	code, out, errOut := run(f.cfg, "run", "ping")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, errOut)
	}
	if out != "pong\n" {
		t.Fatalf("expected script output, got %q", out)
	}
	data, err := os.ReadFile(filepath.Join(f.dir, "activity.log"))
	if err != nil {
		t.Fatalf("read activity log: %v", err)
	}
	if !strings.Contains(string(data), "Script executed: "+filepath.Join(f.dir, "ping.sh")) {
		t.Fatalf("expected activity entry, got %q", data)
	}
}

func TestRunPropagatesExitStatus(t *testing.T) {
	f := newFixture(t)
	code, _, errOut := run(f.cfg, "run", "check")
	if code != 4 {
		t.Fatalf("expected exit 4, got %d", code)
	}
	if !strings.Contains(errOut, "Script exited with status 4") {
		t.Fatalf("expected status message, got %q", errOut)
	}
}

func TestRunRejectsNonExecutable(t *testing.T) {
	f := newFixture(t)
	code, out, errOut := run(f.cfg, "run", "cleanup")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "" {
		t.Fatalf("expected script not started, got %q", out)
	}
	if !strings.Contains(errOut, "not executable") {
		t.Fatalf("expected not executable error, got %q", errOut)
	}
}

func TestThemesMarksSavedTheme(t *testing.T) {
	f := newFixture(t)
	if err := (&prefs.Store{Path: f.cfg.PrefsPath}).Save(prefs.Preferences{Theme: "ocean"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	code, out, _ := run(f.cfg, "themes")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 themes, got %d", len(lines))
	}
	marked := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "*") {
			marked++
			if !strings.Contains(line, "ocean") {
				t.Fatalf("expected ocean marked, got %q", line)
			}
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one marked theme, got %d", marked)
	}
}

func TestVersionOffline(t *testing.T) {
	f := newFixture(t)
	code, out, _ := run(f.cfg, "version", "--offline")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != "toolbox v"+app.Version+"\n" {
		t.Fatalf("expected version line, got %q", out)
	}
}

func TestVersionReportsUpdate(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v9.0.0"}`)
	}))
	defer srv.Close()
	f.cfg.UpdateURL = srv.URL

	code, out, _ := run(f.cfg, "version")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Update v9.0.0 available") {
		t.Fatalf("expected update notice, got %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)
	code, _, errOut := run(f.cfg, "frobnicate")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "unknown command") {
		t.Fatalf("expected unknown command error, got %q", errOut)
	}
}
