package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/popup-modal/internal/theme"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

const (
	defaultPanelWidth = 60
	minPanelWidth     = 20
	screenMargin      = 1
	backIcon          = "←"
	closeIcon         = "✕"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) offset(dx, dy int) rect {
	if r.w == 0 || r.h == 0 {
		return r
	}
	return rect{x: r.x + dx, y: r.y + dy, w: r.w, h: r.h}
}

// layout holds the screen rectangles of the last rendered frame, used to
// hit-test mouse presses.
type layout struct {
	valid   bool
	panel   rect
	back    rect
	close   rect
	content rect
}

func (l layout) offset(dx, dy int) layout {
	return layout{
		valid:   l.valid,
		panel:   l.panel.offset(dx, dy),
		back:    l.back.offset(dx, dy),
		close:   l.close.offset(dx, dy),
		content: l.content.offset(dx, dy),
	}
}

// View renders the backdrop with the panel centered on it, or "" while the
// dialog is closed. Before the terminal size is known the bare panel is
// returned.
func (m *Modal) View() string {
	if !m.mounted || !m.props.Open {
		m.layout = layout{}
		return ""
	}
	panel, l := m.renderPanel()
	if m.width <= 0 || m.height <= 0 {
		m.layout = l
		return panel
	}

	ox := max(0, (m.width-lipgloss.Width(panel))/2)
	oy := max(0, (m.height-lipgloss.Height(panel))/2)
	m.layout = l.offset(ox, oy)

	backdrop := theme.Compose(m.props.Style, m.styles.Modal.Backdrop, m.styles.Modal.TransparentBg).
		UnsetPadding().
		UnsetMargins().
		UnsetBorderStyle().
		UnsetWidth().
		UnsetHeight()
	return backdrop.Render(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel))
}

func (m *Modal) panelWidth() int {
	w := m.props.Width
	if w <= 0 {
		w = defaultPanelWidth
	}
	if m.width > 0 {
		if avail := m.width - 2*screenMargin; w > avail {
			w = avail
		}
	}
	return max(w, minPanelWidth)
}

func (m *Modal) innerWidth() int {
	return m.panelWidth() - m.styles.Modal.Panel.GetHorizontalFrameSize()
}

// layoutRegion sizes the content viewport and returns the handle of the
// content region, or nil when there is nothing laid out.
func (m *Modal) layoutRegion() *scrolllock.Region {
	if !m.props.Open || m.width <= 0 || m.height <= 0 {
		return nil
	}
	inner := m.innerWidth()
	row, _, _ := m.renderTitleRow(inner)
	avail := m.height - 2*screenMargin -
		m.styles.Modal.Panel.GetVerticalFrameSize() -
		lipgloss.Height(row) - 1 -
		m.footerRows(inner)
	h := max(1, min(lipgloss.Height(m.renderBody(inner)), avail))

	m.content.Width, m.content.Height = inner, h
	return &scrolllock.Region{ID: contentID(m.id), Width: inner, Height: h}
}

func (m *Modal) footerRows(inner int) int {
	if !present(m.props.Footer) {
		return 0
	}
	return 1 + lipgloss.Height(m.props.Footer.Render(inner))
}

func (m *Modal) renderPanel() (string, layout) {
	s := m.styles.Modal
	inner := m.innerWidth()

	row, back, closeBtn := m.renderTitleRow(inner)
	content := m.renderContent(inner)
	parts := []string{row, "", content}
	if present(m.props.Footer) {
		parts = append(parts,
			s.FooterRule.Render(strings.Repeat("─", inner)),
			s.Footer.Render(m.props.Footer.Render(inner)),
		)
	}

	panel := s.Panel.Width(inner + s.Panel.GetHorizontalPadding()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	left := s.Panel.GetMarginLeft() + s.Panel.GetBorderLeftSize() + s.Panel.GetPaddingLeft()
	top := s.Panel.GetMarginTop() + s.Panel.GetBorderTopSize() + s.Panel.GetPaddingTop()
	l := layout{
		valid: true,
		panel: rect{w: lipgloss.Width(panel), h: lipgloss.Height(panel)},
		back:  back.offset(left, top),
		close: closeBtn.offset(left, top),
		content: rect{
			x: left,
			y: top + lipgloss.Height(row) + 1,
			w: inner,
			h: lipgloss.Height(content),
		},
	}
	return panel, l
}

// renderTitleRow lays out leading slot, title and trailing slot, returning
// the row and the row-relative rectangles of the back and close buttons.
func (m *Modal) renderTitleRow(inner int) (string, rect, rect) {
	s := m.styles.Modal
	active := m.focus.Active()

	left, backW := m.renderSlot(m.props.Left, backID(m.id), backIcon, m.BackLabel(), s.TitleButtonLeft, active, inner)
	right, closeW := m.renderSlot(m.props.Right, closeID(m.id), closeIcon, m.CloseLabel(), s.TitleButtonRight, active, inner)
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	tw := max(1, inner-lw-rw)

	centered := m.props.Left.Present()
	title := theme.Compose(
		theme.When(centered, s.TitleCenter),
		theme.When(!centered, s.TitleColSpan),
		s.Title,
	).Width(tw).Render(m.renderTitle(tw))

	var back, closeBtn rect
	if backW > 0 {
		back = rect{x: s.TitleButtonLeft.GetMarginLeft(), w: backW, h: 1}
	}
	if closeW > 0 {
		closeBtn = rect{x: lw + tw + s.TitleButtonRight.GetMarginLeft(), w: closeW, h: 1}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, title, right), back, closeBtn
}

// renderSlot renders a title-row slot. For the built-in affordance it also
// returns the button's width without its margins.
func (m *Modal) renderSlot(slot Slot, id, icon, label string, wrap lipgloss.Style, active string, inner int) (string, int) {
	switch slot.Kind() {
	case SlotAffordance:
		s := m.styles.Modal
		focused := active == id
		text := s.TitleButtonIcon.Render(icon)
		if focused {
			text += " " + s.TitleButtonLabel.Render(label)
		}
		button := theme.Compose(theme.When(focused, s.TitleButtonFocus), s.TitleButton).Render(text)
		return wrap.Render(button), lipgloss.Width(button)
	case SlotCustom:
		return slot.Content().Render(inner / 3), 0
	default:
		return "", 0
	}
}

// renderTitle truncates plain-text titles to width; other content is
// rendered as given.
func (m *Modal) renderTitle(width int) string {
	if !present(m.props.Title) {
		return ""
	}
	switch t := m.props.Title.(type) {
	case Text:
		return m.styles.Modal.TitleText.Render(truncate.StringWithTail(string(t), uint(width), "…"))
	default:
		return t.Render(width)
	}
}

func (m *Modal) renderBody(inner int) string {
	if !present(m.props.Body) {
		return ""
	}
	return m.styles.Modal.Content.Render(m.props.Body.Render(inner))
}

func (m *Modal) renderContent(inner int) string {
	body := m.renderBody(inner)
	if m.region == nil {
		return body
	}
	m.content.SetContent(body)
	return m.content.View()
}

// ScrollPercent reports how far the content region is scrolled, 0 to 1.
func (m *Modal) ScrollPercent() float64 {
	if m.region == nil {
		return 0
	}
	return m.content.ScrollPercent()
}
