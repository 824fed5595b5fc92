package events

import "github.com/atomicstack/toolbox/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type ScriptTracer struct{}

type UpdateTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Search  = SearchTracer{}
	Script  = ScriptTracer{}
	Update  = UpdateTracer{}
	Command = CommandTracer{}
)

func (UITracer) ScreenChange(from, to string) {
	logging.Trace("screen.change", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(screen string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) QuitArm() {
	logging.Trace("quit.arm", nil)
}

func (UITracer) QuitCancel() {
	logging.Trace("quit.cancel", nil)
}

func (UITracer) Favorite(category, program string, favorite bool) {
	logging.Trace("favorite.toggle", map[string]interface{}{
		"category": category,
		"program":  program,
		"favorite": favorite,
	})
}

func (UITracer) Theme(from, to string) {
	logging.Trace("theme.cycle", map[string]interface{}{"from": from, "to": to})
}

func (SearchTracer) Append(query string) {
	logging.Trace("search.append", map[string]interface{}{"query": query})
}

func (SearchTracer) Backspace(query string) {
	logging.Trace("search.backspace", map[string]interface{}{"query": query})
}

func (ScriptTracer) Request(path string) {
	logging.Trace("script.request", map[string]interface{}{"path": path})
}

func (ScriptTracer) Rejected(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("script.rejected", payload)
}

func (ScriptTracer) Finished(path string, exitCode int, message string) {
	logging.Trace("script.finished", map[string]interface{}{
		"path":    path,
		"exit":    exitCode,
		"message": message,
	})
}

func (UpdateTracer) Result(latest string, err error) {
	payload := map[string]interface{}{"latest": latest}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("update.result", payload)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
