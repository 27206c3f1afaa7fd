package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	Locked                *lipgloss.Style

	Modal ModalStyles
}

// ModalStyles covers the dialog chrome.
type ModalStyles struct {
	Backdrop         lipgloss.Style
	TransparentBg    lipgloss.Style
	Panel            lipgloss.Style
	Title            lipgloss.Style
	TitleCenter      lipgloss.Style
	TitleColSpan     lipgloss.Style
	TitleText        lipgloss.Style
	TitleButton      lipgloss.Style
	TitleButtonFocus lipgloss.Style
	TitleButtonLeft  lipgloss.Style
	TitleButtonRight lipgloss.Style
	TitleButtonIcon  lipgloss.Style
	TitleButtonLabel lipgloss.Style
	Content          lipgloss.Style
	Footer           lipgloss.Style
	FooterRule       lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Locked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Modal: ModalStyles{
		Backdrop:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TransparentBg:    lipgloss.NewStyle(),
		Panel:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, PanelPaddingX),
		Title:            lipgloss.NewStyle(),
		TitleCenter:      lipgloss.NewStyle().Align(lipgloss.Center),
		TitleColSpan:     lipgloss.NewStyle().Align(lipgloss.Left),
		TitleText:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		TitleButton:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TitleButtonFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
		TitleButtonLeft:  lipgloss.NewStyle().MarginRight(1),
		TitleButtonRight: lipgloss.NewStyle().MarginLeft(1),
		TitleButtonIcon:  lipgloss.NewStyle(),
		TitleButtonLabel: lipgloss.NewStyle().Italic(true),
		Content:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Footer:           lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		FooterRule:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	},
}

// PanelPaddingX is the horizontal padding inside the dialog border.
const PanelPaddingX = 1

// PanelFrameX is the number of columns taken on each side of the panel by the
// border and padding.
const PanelFrameX = 1 + PanelPaddingX

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
