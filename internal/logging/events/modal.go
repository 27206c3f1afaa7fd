package events

import "github.com/atomicstack/popup-modal/internal/logging"

type ModalTracer struct{}

type ScrollLockTracer struct{}

type FocusTracer struct{}

var (
	Modal      = ModalTracer{}
	ScrollLock = ScrollLockTracer{}
	Focus      = FocusTracer{}
)

func (ModalTracer) Open(id, labelledBy, label string) {
	logging.Trace("modal.open", map[string]interface{}{
		"id":         id,
		"labelledby": labelledBy,
		"label":      label,
	})
}

func (ModalTracer) Close(id string) {
	logging.Trace("modal.close", map[string]interface{}{"id": id})
}

func (ModalTracer) Dismiss(id, trigger string, handled bool) {
	logging.Trace("modal.dismiss", map[string]interface{}{
		"id":      id,
		"trigger": trigger,
		"handled": handled,
	})
}

func (ModalTracer) Unmount(id string, wasOpen bool) {
	logging.Trace("modal.unmount", map[string]interface{}{"id": id, "open": wasOpen})
}

func (ModalTracer) RegionSkipped(id string) {
	logging.Trace("modal.region-skipped", map[string]interface{}{"id": id})
}

func (ScrollLockTracer) Engage(owner, region string, holders int) {
	logging.Trace("scrolllock.engage", map[string]interface{}{
		"owner":   owner,
		"region":  region,
		"holders": holders,
	})
}

func (ScrollLockTracer) Release(owner string, holders int) {
	logging.Trace("scrolllock.release", map[string]interface{}{"owner": owner, "holders": holders})
}

func (FocusTracer) Trap(root, restore string, ring int) {
	logging.Trace("focus.trap", map[string]interface{}{"root": root, "restore": restore, "ring": ring})
}

func (FocusTracer) Restore(root, target string) {
	logging.Trace("focus.restore", map[string]interface{}{"root": root, "target": target})
}

func (FocusTracer) Move(from, to string) {
	logging.Trace("focus.move", map[string]interface{}{"from": from, "to": to})
}
