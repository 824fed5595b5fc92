package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/cli"
	"github.com/atomicstack/toolbox/internal/config"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/logging/events"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.ConfigureActivity(runtimeCfg.Logging.ActivityPath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if len(runtimeCfg.Args) > 0 {
		os.Exit(cli.Execute(runtimeCfg.App, runtimeCfg.Args))
	}
	if !probeTerminal(os.Stdin.Fd(), os.Stdout.Fd()).Interactive {
		fmt.Fprintln(os.Stderr, "Error: the launcher needs a terminal; try 'toolbox list' or 'toolbox run NAME'")
		os.Exit(1)
	}
	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles the resolved configuration with the start mode
// and the terminal probe.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+3)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["activityLog"] = cfg.Logging.ActivityPath
	mode := "tui"
	if len(cfg.Args) > 0 {
		mode = "cli:" + cfg.Args[0]
	}
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"mode":     mode,
		"terminal": probeTerminal(os.Stdin.Fd(), os.Stdout.Fd()),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// terminalInfo describes whether the launcher can draw: it reads keys from
// stdin and renders on stdout.
type terminalInfo struct {
	Interactive bool   `json:"interactive"`
	Stdin       bool   `json:"stdin"`
	Stdout      bool   `json:"stdout"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Error       string `json:"error,omitempty"`
}

func probeTerminal(in, out uintptr) terminalInfo {
	info := terminalInfo{
		Stdin:  isatty.IsTerminal(in),
		Stdout: isatty.IsTerminal(out),
	}
	info.Interactive = info.Stdin && info.Stdout
	if !info.Stdout {
		return info
	}
	width, height, err := term.GetSize(int(out))
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
