package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
)

const wheelRows = 3

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+x":
		if m.active != "" {
			return m.closeDialog(m.active, "host")
		}
	}
	if d := m.activeDialog(); d != nil {
		return d.modal.Update(keyMsg)
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "down", "pgup", "pgdown", "home", "end":
		m.movePageCursor(keyMsg.String())
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.page.Filter != "" {
		before := m.page.FilterCursor
		m.page.ClearFilter()
		m.noteFilterCursorChange(before)
		events.Filter.Cleared(m.page.ID)
		m.syncViewport()
		return nil
	}
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	item, ok := m.page.Current()
	if !ok {
		return nil
	}
	events.UI.PageEnter(m.page.ID, item.ID, item.Label, m.page.Filter)
	return m.openDialog(item.ID)
}

// movePageCursor applies a navigation key to the page. While any dialog holds
// the scroll lock the page stays put.
func (m *Model) movePageCursor(key string) {
	if !m.lock.Allows(m.page.ID) {
		events.UI.ScrollBlocked(m.page.ID, key)
		return
	}
	visible := m.maxVisibleItems()
	var moved bool
	switch key {
	case "up":
		moved = m.page.MoveCursor(-1)
	case "down":
		moved = m.page.MoveCursor(1)
	case "pgup":
		moved = m.page.MoveCursorPageUp(visible)
	case "pgdown":
		moved = m.page.MoveCursorPageDown(visible)
	case "home":
		moved = m.page.MoveCursorHome()
	case "end":
		moved = m.page.MoveCursorEnd()
	}
	if moved {
		events.UI.PageCursor(m.page.ID, m.page.Cursor)
		m.syncViewport()
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	wheel := ev.Button == tea.MouseButtonWheelUp || ev.Button == tea.MouseButtonWheelDown
	if wheel && !m.lock.Allows(m.page.ID) {
		events.UI.ScrollBlocked(m.page.ID, ev.String())
	}
	if d := m.activeDialog(); d != nil {
		return d.modal.Update(ev)
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	switch {
	case wheel:
		if !m.lock.Allows(m.page.ID) {
			return nil
		}
		delta := wheelRows
		if ev.Button == tea.MouseButtonWheelUp {
			delta = -wheelRows
		}
		m.page.Scroll(delta, m.maxVisibleItems())
	case ev.Button == tea.MouseButtonLeft:
		visible := m.maxVisibleItems()
		if visible < 0 {
			visible = len(m.page.Items)
		}
		idx := m.page.Offset + ev.Y - m.itemsTop()
		if ev.Y < m.itemsTop() || idx >= len(m.page.Items) || idx >= m.page.Offset+visible {
			return nil
		}
		m.page.Cursor = idx
		return m.handleEnterKey()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	cmds := make([]tea.Cmd, 0, len(m.order))
	for _, id := range m.order {
		cmds = append(cmds, m.dialogs[id].modal.SetSize(m.width, m.dialogHeight()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncViewport() {
	m.page.EnsureCursorVisible(m.maxVisibleItems())
}
