package events

import "github.com/atomicstack/popup-modal/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

// PageEnter records a dialog opened from the page.
func (UITracer) PageEnter(pageID, dialogID, label, filter string) {
	logging.Trace("page.enter", map[string]interface{}{
		"page":   pageID,
		"dialog": dialogID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) PageCursor(pageID string, cursor int) {
	logging.Trace("page.cursor", map[string]interface{}{"page": pageID, "cursor": cursor})
}

// ScrollBlocked records page scrolling refused while a dialog holds the lock.
func (UITracer) ScrollBlocked(pageID, input string) {
	logging.Trace("page.scroll-blocked", map[string]interface{}{"page": pageID, "input": input})
}

func (UITracer) DialogClosed(dialogID, reason string) {
	logging.Trace("dialog.closed", map[string]interface{}{"dialog": dialogID, "reason": reason})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
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
