package modal

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

// commit lays out the content region and runs the lifecycle effects whose
// inputs changed since the previous commit:
//
//   - scroll lock (open state, content region): release, then engage when open
//     with a laid-out region
//   - focus trap (open state): activate on open, deactivate on close, and keep
//     the ring current while open
//   - initial focus (open state, InitialFocus ref): focus the ref's target
func (m *Modal) commit() tea.Cmd {
	open := m.props.Open
	first := !m.committed
	wasOpen := m.committed && m.prevOpen
	openChanged := first || open != m.prevOpen

	m.region = m.layoutRegion()

	var cmds []tea.Cmd
	if wasOpen && !open {
		cmds = append(cmds, m.trap.Deactivate())
		events.Modal.Close(m.id)
		if m.observer != nil {
			m.observer.ModalClosed(m.id)
		}
	}

	m.syncAffordances(open)

	if openChanged || !sameRegion(m.prevRegion, m.region) {
		m.syncScrollLock()
	}

	if open {
		if openChanged {
			label, labelledBy := deriveLabel(m.id, m.props)
			events.Modal.Open(m.id, labelledBy, label)
			if m.observer != nil {
				m.observer.ModalOpened(m.id)
			}
			cmds = append(cmds, m.trap.Activate(m.focusRing()))
		} else {
			cmds = append(cmds, m.trap.SetRing(m.focusRing()))
		}
	}

	if openChanged || m.props.InitialFocus != m.prevFocusRef {
		if ref := m.props.InitialFocus; ref != nil {
			cmds = append(cmds, m.focus.Focus(ref.ID))
		}
	}

	m.committed = true
	m.prevOpen = open
	m.prevRegion = m.region
	m.prevFocusRef = m.props.InitialFocus
	return tea.Batch(cmds...)
}

// Unmount releases the scroll lock and, if the dialog is open, deactivates
// the focus trap. Later calls do nothing.
func (m *Modal) Unmount() tea.Cmd {
	if !m.mounted {
		return nil
	}
	wasOpen := m.committed && m.prevOpen
	m.mounted = false

	m.lock.Release(m.id)

	var cmd tea.Cmd
	if wasOpen {
		cmd = m.trap.Deactivate()
		if m.observer != nil {
			m.observer.ModalClosed(m.id)
		}
	}
	m.syncAffordances(false)
	m.focus.Unregister(m.id)
	m.region = nil
	m.layout = layout{}
	events.Modal.Unmount(m.id, wasOpen)
	return cmd
}

func (m *Modal) syncScrollLock() {
	m.lock.Release(m.id)
	if !m.props.Open {
		return
	}
	if m.region == nil {
		events.Modal.RegionSkipped(m.id)
		return
	}
	m.lock.Engage(m.id, *m.region)
}

// syncAffordances keeps the built-in buttons registered as focus targets
// exactly while they are rendered.
func (m *Modal) syncAffordances(open bool) {
	var want []string
	if open {
		if m.props.Left.Kind() == SlotAffordance {
			want = append(want, backID(m.id))
		}
		if m.props.Right.Kind() == SlotAffordance {
			want = append(want, closeID(m.id))
		}
	}
	for _, id := range m.affordances {
		if !slices.Contains(want, id) {
			m.focus.Unregister(id)
		}
	}
	for _, id := range want {
		if !m.focus.Registered(id) {
			m.focus.Register(id, nil)
		}
	}
	m.affordances = want
}

// focusRing lists the dialog's focus targets in render order.
func (m *Modal) focusRing() []string {
	var ring []string
	switch m.props.Left.Kind() {
	case SlotAffordance:
		ring = append(ring, backID(m.id))
	case SlotCustom:
		ring = append(ring, focusIDs(m.props.Left.Content())...)
	}
	ring = append(ring, focusIDs(m.props.Title)...)
	switch m.props.Right.Kind() {
	case SlotAffordance:
		ring = append(ring, closeID(m.id))
	case SlotCustom:
		ring = append(ring, focusIDs(m.props.Right.Content())...)
	}
	ring = append(ring, focusIDs(m.props.Body)...)
	ring = append(ring, focusIDs(m.props.Footer)...)
	return ring
}

func sameRegion(a, b *scrolllock.Region) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
