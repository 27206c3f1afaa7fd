package modal

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
)

// Trigger identifies what asked the dialog to close.
type Trigger int

const (
	TriggerBackdrop Trigger = iota
	TriggerEscape
	TriggerBack
	TriggerClose
)

func (t Trigger) String() string {
	switch t {
	case TriggerBackdrop:
		return "backdrop"
	case TriggerEscape:
		return "escape"
	case TriggerBack:
		return "back"
	case TriggerClose:
		return "close"
	default:
		return "unknown"
	}
}

const wheelStep = 3

// Update handles input while the dialog is open. Window size messages are
// applied in any state.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		return m.SetSize(size.Width, size.Height)
	}
	if !m.props.Open {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	default:
		return m.broadcast(msg)
	}
}

// Dismiss reports a dismiss intent for trigger. Without an OnDismiss handler
// nothing happens.
func (m *Modal) Dismiss(trigger Trigger) tea.Cmd {
	handled := m.props.OnDismiss != nil
	events.Modal.Dismiss(m.id, trigger.String(), handled)
	if m.observer != nil {
		m.observer.DismissRequested(m.id, trigger.String(), handled)
	}
	if !handled {
		return nil
	}
	return m.props.OnDismiss()
}

func (m *Modal) handleKey(msg tea.KeyMsg) tea.Cmd {
	active := m.focus.Active()
	switch msg.String() {
	case "esc":
		if m.holdsFocus(active) {
			return m.Dismiss(TriggerEscape)
		}
		return nil
	case "tab":
		return m.trap.Next()
	case "shift+tab":
		return m.trap.Prev()
	}

	switch active {
	case backID(m.id):
		if isActivation(msg) {
			return m.Dismiss(TriggerBack)
		}
	case closeID(m.id):
		if isActivation(msg) {
			return m.Dismiss(TriggerClose)
		}
	}

	if owner := m.ownerOf(active); owner != nil {
		if u, ok := owner.(Updater); ok {
			return u.Update(msg)
		}
		return nil
	}

	m.scrollKey(msg.String())
	return nil
}

func (m *Modal) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || !m.layout.valid {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.layout.content.contains(msg.X, msg.Y) {
			m.scrollBy(-wheelStep)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.layout.content.contains(msg.X, msg.Y) {
			m.scrollBy(wheelStep)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch {
	case m.layout.back.contains(msg.X, msg.Y):
		return tea.Batch(m.focus.Focus(backID(m.id)), m.Dismiss(TriggerBack))
	case m.layout.close.contains(msg.X, msg.Y):
		return tea.Batch(m.focus.Focus(closeID(m.id)), m.Dismiss(TriggerClose))
	case m.layout.panel.contains(msg.X, msg.Y):
		// presses inside the panel never reach the backdrop
		return nil
	default:
		return m.Dismiss(TriggerBackdrop)
	}
}

// broadcast hands non-input messages, such as cursor blinks, to content that
// wants them.
func (m *Modal) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range []Content{m.props.Left.Content(), m.props.Title, m.props.Right.Content(), m.props.Body, m.props.Footer} {
		if u, ok := c.(Updater); ok && present(c) {
			cmds = append(cmds, u.Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

// holdsFocus reports whether id is the panel itself or one of its focus
// targets.
func (m *Modal) holdsFocus(id string) bool {
	if id == "" {
		return false
	}
	return id == m.id || m.trap.Contains(id)
}

// ownerOf returns the content that declared id as one of its focus targets.
func (m *Modal) ownerOf(id string) Content {
	if id == "" {
		return nil
	}
	for _, c := range []Content{m.props.Left.Content(), m.props.Title, m.props.Right.Content(), m.props.Body, m.props.Footer} {
		if slices.Contains(focusIDs(c), id) {
			return c
		}
	}
	return nil
}

func (m *Modal) scrollKey(key string) {
	switch key {
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup", "b":
		m.scrollBy(-max(1, m.content.Height))
	case "pgdown", "f", " ":
		m.scrollBy(max(1, m.content.Height))
	case "home", "g":
		m.scrollTo(0)
	case "end", "G":
		m.scrollTo(m.content.TotalLineCount())
	}
}

func (m *Modal) scrollBy(delta int) {
	if m.region == nil || delta == 0 {
		return
	}
	m.content.SetContent(m.renderBody(m.region.Width))
	if delta > 0 {
		m.content.LineDown(delta)
	} else {
		m.content.LineUp(-delta)
	}
}

func (m *Modal) scrollTo(offset int) {
	if m.region == nil {
		return
	}
	m.content.SetContent(m.renderBody(m.region.Width))
	m.content.SetYOffset(offset)
}

// ScrollOffset returns the first visible line of the content region.
func (m *Modal) ScrollOffset() int {
	return m.content.YOffset
}

func isActivation(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace || msg.String() == " "
}
