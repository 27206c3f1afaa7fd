package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. An open dialog replaces the page. Before the
// terminal size is known the dialog draws its bare panel from the top-left
// corner, which is where its mouse hit areas are measured from.
func (m *Model) View() string {
	if d := m.activeDialog(); d != nil {
		status := renderLines(applyWidth([]styledLine{m.dialogStatus(d)}, m.width))
		return d.modal.View() + "\n" + status
	}
	return m.viewPage()
}

// dialogHeight is the height handed to dialogs; the last row stays with the
// host status line.
func (m *Model) dialogHeight() int {
	if m.height <= 1 {
		return m.height
	}
	return m.height - 1
}

// accessibleName resolves the open dialog's name, including labels that
// point at the page title.
func (m *Model) accessibleName(d *dialog) string {
	if name := d.modal.AccessibleName(); name != "" {
		return name
	}
	if d.modal.Attributes().LabelledBy == pageTitleID {
		return pageTitle
	}
	return ""
}

func (m *Model) dialogStatus(d *dialog) styledLine {
	if m.errMsg != "" {
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	name := m.accessibleName(d)
	if name == "" {
		name = "(unnamed)"
	}
	text := "dialog: " + name
	if m.locked {
		text += fmt.Sprintf(" · page scroll locked by %d dialog(s)", m.lock.Holders())
		return styledLine{text: text, style: styles.Locked}
	}
	return styledLine{text: text, style: styles.Info}
}

func (m *Model) viewPage() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.pageHeader(), style: styles.Header})

	m.syncViewport()
	items := m.page.Items
	start := 0
	if visible := m.maxVisibleItems(); visible > 0 && len(items) > visible {
		start = clampInt(m.page.Offset, 0, len(items)-visible)
		items = items[start : start+visible]
	}
	if len(m.page.Items) == 0 {
		msg := "(no dialogs)"
		if m.page.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.page.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	}
	for i, item := range items {
		lines = append(lines, m.buildItemLine(item.Label, item.Description, start+i))
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{
			text:  "↑/↓ move  enter open  esc clear/quit  ctrl+x close dialog  ctrl+c quit",
			style: styles.Footer,
		})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	case m.locked:
		status = styledLine{text: fmt.Sprintf("page scroll locked by %d dialog(s)", m.lock.Holders()), style: styles.Locked}
	}
	bottom := applyWidth([]styledLine{status, {text: m.filterPrompt()}}, m.width)
	return renderLines(append(lines, bottom...))
}

func (m *Model) pageHeader() string {
	if item, ok := m.page.Current(); ok {
		return fmt.Sprintf("%s → %s", m.page.Title, item.Label)
	}
	return m.page.Title
}

func (m *Model) buildItemLine(label, description string, idx int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.page.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + label
	if description != "" {
		text += "  " + description
	}
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// itemsTop is the screen row of the first item line.
func (m *Model) itemsTop() int {
	return 1
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header plus status and filter prompt
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	return max(m.height-used, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		switch {
		case line.highlightFrom > 0 && line.highlightFrom < len(runes):
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		case line.style != nil && text != "":
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width cells, marking the cut with an ellipsis.
// Styled text is measured without its escape sequences.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
