package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.page.FilterCursor {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the page filter. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.page
	before := current.FilterCursor
	switch msg.String() {
	case "ctrl+u":
		if !current.ClearFilter() {
			return false, nil
		}
		events.Filter.Cleared(current.ID)
	case "ctrl+w":
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		events.Filter.WordBackspace(current.ID, current.Filter)
	default:
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			if !current.DeleteFilterRuneBackward() {
				return false, nil
			}
			events.Filter.Backspace(current.ID, current.Filter)
		case tea.KeyRunes, tea.KeySpace:
			if msg.Alt || (msg.Type == tea.KeyRunes && !printable(msg.Runes)) {
				return false, nil
			}
			text := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				text = " "
			}
			if !current.InsertFilterText(text) {
				return false, nil
			}
			events.Filter.Append(current.ID, current.Filter)
		default:
			return false, nil
		}
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport()
	return true, nil
}

func printable(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func (m *Model) filterPrompt() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	render := func(value string) string {
		if styles.Filter == nil || value == "" {
			return value
		}
		return styles.Filter.Render(value)
	}
	text := []rune(m.page.Filter)
	if len(text) == 0 {
		placeholder := "(type to filter)"
		if styles.FilterPlaceholder != nil {
			placeholder = styles.FilterPlaceholder.Render(placeholder)
		}
		return prompt + m.renderFilterCursor(" ") + placeholder
	}
	pos := clampInt(m.page.FilterCursor, 0, len(text))
	caret := " "
	var after string
	if pos < len(text) {
		caret = string(text[pos])
		after = render(string(text[pos+1:]))
	}
	return prompt + render(string(text[:pos])) + m.renderFilterCursor(caret) + after
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
