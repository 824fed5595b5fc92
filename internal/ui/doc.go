// Package ui contains the Bubble Tea program that powers the launcher.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, input, rendering, and script execution.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, script results, update checks).
//   - Navigation helpers (internal/ui/navigation.go) move between the
//     Categories, Programs, Search, Help and SystemInfo screens. Search input
//     (internal/ui/input.go) keeps text entry isolated from the event loop.
//   - Pointer events are hit-tested against the same geometry the view uses
//     (internal/ui/mouse.go).
//
// State ownership:
//   - List state lives in internal/ui/state.Level, which tracks items,
//     filtering, cursor and viewport.
//   - The catalog is owned by the model; favorites are toggled in place and
//     never persisted.
//   - Background work (update checks, preference writes) runs through the
//     internal/ui/command bus.
//
// Script execution:
//   - A selected script is checked first; failures are reported in the footer
//     without leaving the UI.
//   - Valid scripts run through tea.Exec, which releases the terminal for the
//     duration of the child process and restores it afterwards on every path.
//     The result arrives as scriptFinishedMsg while the progress indicator
//     keeps input suspended until it has been joined.
package ui
