// Package focus tracks keyboard focus across the widgets of a Bubble Tea
// program and provides a trap that keeps focus inside one subtree.
package focus

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
)

// Element is something that can take keyboard focus. *textinput.Model and
// *textarea.Model satisfy it.
type Element interface {
	Focus() tea.Cmd
	Blur()
}

// Ref points at a focusable element by ID. Callers compare refs by pointer, so
// a new Ref means a new target even when the ID is unchanged.
type Ref struct {
	ID string
}

// NewRef returns a reference to the element registered under id.
func NewRef(id string) *Ref {
	return &Ref{ID: id}
}

// static is a placeholder element for IDs that carry no widget state of their
// own, such as buttons drawn by the caller.
type static struct{}

func (static) Focus() tea.Cmd { return nil }
func (static) Blur()          {}

// Manager records which element currently holds focus. It is not safe for
// concurrent use; like the rest of a Bubble Tea model it belongs to the
// program goroutine.
type Manager struct {
	elements map[string]Element
	active   string
}

// NewManager returns a manager with nothing focused.
func NewManager() *Manager {
	return &Manager{elements: make(map[string]Element)}
}

// Register makes id focusable. A nil element registers a static target.
func (m *Manager) Register(id string, el Element) {
	if id == "" {
		return
	}
	if el == nil {
		el = static{}
	}
	m.elements[id] = el
}

// Unregister removes id. Focus held by id is dropped.
func (m *Manager) Unregister(id string) {
	if m.active == id {
		if el, ok := m.elements[id]; ok {
			el.Blur()
		}
		m.active = ""
	}
	delete(m.elements, id)
}

// Registered reports whether id can take focus.
func (m *Manager) Registered(id string) bool {
	_, ok := m.elements[id]
	return ok
}

// Active returns the ID holding focus, or "".
func (m *Manager) Active() string {
	return m.active
}

// Focus moves focus to id, blurring the previous holder. Unknown IDs leave
// focus untouched.
func (m *Manager) Focus(id string) tea.Cmd {
	el, ok := m.elements[id]
	if !ok {
		return nil
	}
	if m.active == id {
		return nil
	}
	prev := m.active
	if cur, ok := m.elements[prev]; ok {
		cur.Blur()
	}
	m.active = id
	events.Focus.Move(prev, id)
	return el.Focus()
}

// Blur drops focus entirely.
func (m *Manager) Blur() {
	if cur, ok := m.elements[m.active]; ok {
		cur.Blur()
	}
	if m.active != "" {
		events.Focus.Move(m.active, "")
	}
	m.active = ""
}
