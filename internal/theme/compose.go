package theme

import "github.com/charmbracelet/lipgloss"

// Compose merges styles into one. Earlier styles win: a property set by an
// earlier style is never overridden by a later one, so caller overrides go
// first and theme defaults last.
func Compose(styles ...lipgloss.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	for _, s := range styles {
		out = out.Inherit(s)
		out = inheritFrame(out, s)
	}
	return out
}

// When returns style if cond holds and an empty style otherwise, for use as a
// conditional Compose argument.
func When(cond bool, style lipgloss.Style) lipgloss.Style {
	if !cond {
		return lipgloss.NewStyle()
	}
	return style
}

// inheritFrame copies the frame properties that lipgloss's Inherit skips
// (margins and padding) when dst has not set them.
func inheritFrame(dst, src lipgloss.Style) lipgloss.Style {
	if dst.GetPaddingTop() == 0 && dst.GetPaddingRight() == 0 && dst.GetPaddingBottom() == 0 && dst.GetPaddingLeft() == 0 {
		dst = dst.Padding(src.GetPaddingTop(), src.GetPaddingRight(), src.GetPaddingBottom(), src.GetPaddingLeft())
	}
	if dst.GetMarginTop() == 0 && dst.GetMarginRight() == 0 && dst.GetMarginBottom() == 0 && dst.GetMarginLeft() == 0 {
		dst = dst.Margin(src.GetMarginTop(), src.GetMarginRight(), src.GetMarginBottom(), src.GetMarginLeft())
	}
	return dst
}
