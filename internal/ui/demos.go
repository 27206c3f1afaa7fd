package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/popup-modal/internal/format/table"
	"github.com/atomicstack/popup-modal/internal/ui/command"
	"github.com/atomicstack/popup-modal/pkg/focus"
	"github.com/atomicstack/popup-modal/pkg/modal"
)

// Dialog IDs accepted by --dialog.
const (
	DialogSettings    = "settings"
	DialogConfirm     = "confirm"
	DialogCustomTitle = "custom-title"
	DialogHelp        = "help"
	DialogRename      = "rename"
	DialogInspect     = "inspect"
	DialogSticky      = "sticky"
)

// DialogIDs lists the demo dialogs in page order.
func DialogIDs() []string {
	return []string{DialogSettings, DialogConfirm, DialogCustomTitle, DialogHelp, DialogRename, DialogInspect, DialogSticky}
}

var errEmptyName = errors.New("name must not be empty")

type dialogClosedMsg struct {
	id     string
	reason string
}

type confirmResultMsg struct {
	accepted bool
}

type renameResultMsg struct {
	name string
}

// dialog is one demo entry on the page together with its mounted modal.
type dialog struct {
	id          string
	label       string
	description string
	props       func(open bool) modal.Props
	reset       func()
	modal       *modal.Modal
}

func closeDialogCmd(id, reason string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return dialogClosedMsg{id: id, reason: reason} }
	}
}

// focusWhenOpen hands a dialog its initial focus target only while it is
// open; the dialog moves focus to any target it is given, even when closed.
func focusWhenOpen(open bool, ref *focus.Ref) *focus.Ref {
	if !open {
		return nil
	}
	return ref
}

func (m *Model) buildDialogs() []*dialog {
	return []*dialog{
		m.settingsDialog(),
		m.confirmDialog(),
		m.customTitleDialog(),
		m.helpDialog(),
		m.renameDialog(),
		m.inspectDialog(),
		m.stickyDialog(),
	}
}

func (m *Model) settingsDialog() *dialog {
	rows := table.Format([][]string{
		{"Theme", "dark"},
		{"Mouse", "enabled"},
		{"Trace log", fmt.Sprintf("%t", m.traceEnabled)},
		{"Locale", m.locale},
	}, []table.Alignment{table.AlignLeft, table.AlignRight})
	body := modal.Text(strings.Join(rows, "\n"))
	return &dialog{
		id:          DialogSettings,
		label:       "Settings",
		description: "title with back and close affordances",
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:        DialogSettings,
				Open:      open,
				OnDismiss: closeDialogCmd(DialogSettings, "dismissed"),
				Title:     modal.Text("Settings"),
				Left:      modal.Affordance(),
				Right:     modal.Affordance(),
				Body:      body,
				Footer:    modal.Text("tab cycle · enter activate · esc close"),
			}
		},
	}
}

// choiceBody is a two-button confirmation row.
type choiceBody struct {
	id       string
	choices  []string
	selected int
	focused  bool
}

func (c *choiceBody) FocusIDs() []string { return []string{c.id} }

func (c *choiceBody) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *choiceBody) Blur() {
	c.focused = false
}

func (c *choiceBody) Render(width int) string {
	buttons := make([]string, len(c.choices))
	for i, choice := range c.choices {
		style := *styles.Item
		if i == c.selected {
			style = *styles.SelectedItem
			if !c.focused {
				style = style.Bold(false)
			}
		}
		buttons[i] = style.Render("[ " + choice + " ]")
	}
	prompt := lipgloss.NewStyle().Width(width).Render("This removes the item permanently.")
	return prompt + "\n\n" + strings.Join(buttons, "  ")
}

func (c *choiceBody) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "h":
		c.selected = max(c.selected-1, 0)
	case "right", "l":
		c.selected = min(c.selected+1, len(c.choices)-1)
	case "y":
		return confirmCmd(true)
	case "n":
		return confirmCmd(false)
	case "enter":
		return confirmCmd(c.selected == 1)
	}
	return nil
}

func confirmCmd(accepted bool) tea.Cmd {
	return func() tea.Msg { return confirmResultMsg{accepted: accepted} }
}

func (m *Model) confirmDialog() *dialog {
	body := &choiceBody{id: "confirm-choice", choices: []string{"Cancel", "Delete"}}
	m.focus.Register(body.id, body)
	ref := focus.NewRef(body.id)
	return &dialog{
		id:          DialogConfirm,
		label:       "Confirm",
		description: "destructive confirmation with initial focus",
		reset: func() {
			body.selected = 0
		},
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:           DialogConfirm,
				Open:         open,
				OnDismiss:    closeDialogCmd(DialogConfirm, "dismissed"),
				Title:        modal.Text("Delete item?"),
				Right:        modal.Affordance(),
				Body:         body,
				InitialFocus: focusWhenOpen(open, ref),
			}
		},
	}
}

func (m *Model) customTitleDialog() *dialog {
	title := modal.RenderFunc(func(width int) string {
		star := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("★")
		return star + " " + lipgloss.NewStyle().Italic(true).Render("Custom heading") + " " + star
	})
	return &dialog{
		id:          DialogCustomTitle,
		label:       "Custom title",
		description: "styled title content with an explicit label",
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:        DialogCustomTitle,
				Open:      open,
				OnDismiss: closeDialogCmd(DialogCustomTitle, "dismissed"),
				Title:     title,
				AriaLabel: "Custom heading example",
				Right:     modal.Affordance(),
				Body:      modal.Text("A non-text title is never used as the dialog's name, so this one carries its own label."),
			}
		},
	}
}

const helpMarkdown = `# Keys

| key | action |
| --- | --- |
| tab / shift+tab | move focus inside the dialog |
| enter / space | activate the focused button |
| esc | dismiss the dialog |
| ↑ ↓ pgup pgdown | scroll this text |

Clicking outside the panel dismisses it too. While any dialog is open the page
behind it does not scroll.
`

func (m *Model) helpDialog() *dialog {
	body := modal.Markdown(helpMarkdown)
	return &dialog{
		id:          DialogHelp,
		label:       "Help",
		description: "markdown body in a scrollable region",
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:        DialogHelp,
				Open:      open,
				OnDismiss: closeDialogCmd(DialogHelp, "dismissed"),
				Title:     modal.Text("Help"),
				Right:     modal.Affordance(),
				Body:      body,
			}
		},
	}
}

// renameBody wraps a text input. The input itself is the focus element.
type renameBody struct {
	id    string
	input textinput.Model
}

func newRenameBody(id string) *renameBody {
	input := textinput.New()
	input.Prompt = "name: "
	input.Placeholder = "new name"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorStatic)
	return &renameBody{id: id, input: input}
}

func (r *renameBody) FocusIDs() []string { return []string{r.id} }

func (r *renameBody) Render(width int) string {
	r.input.Width = max(width-lipgloss.Width(r.input.Prompt)-1, 1)
	return r.input.View()
}

func (r *renameBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		name := strings.TrimSpace(r.input.Value())
		return func() tea.Msg { return renameResultMsg{name: name} }
	}
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

func (m *Model) renameDialog() *dialog {
	body := newRenameBody("rename-input")
	m.focus.Register(body.id, &body.input)
	ref := focus.NewRef(body.id)
	return &dialog{
		id:          DialogRename,
		label:       "Rename",
		description: "text input focused on open",
		reset: func() {
			body.input.Reset()
		},
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:           DialogRename,
				Open:         open,
				OnDismiss:    closeDialogCmd(DialogRename, "dismissed"),
				Title:        modal.Text("Rename"),
				Right:        modal.Affordance(),
				Body:         body,
				Footer:       modal.Text("enter apply · esc cancel"),
				InitialFocus: focusWhenOpen(open, ref),
			}
		},
	}
}

func (m *Model) inspectDialog() *dialog {
	body := modal.RenderFunc(m.renderInspection)
	return &dialog{
		id:          DialogInspect,
		label:       "Inspect",
		description: "accessibility attributes of every dialog",
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:        DialogInspect,
				Open:      open,
				OnDismiss: closeDialogCmd(DialogInspect, "dismissed"),
				Title:     modal.Text("Inspect"),
				Right:     modal.Affordance(),
				Body:      body,
				Width:     72,
			}
		},
	}
}

func (m *Model) renderInspection(width int) string {
	rows := [][]string{{"dialog", "open", "label", "labelledby", "name"}}
	for _, id := range m.order {
		d := m.dialogs[id]
		if d.modal == nil {
			continue
		}
		attrs := d.modal.Attributes()
		open := "no"
		if d.modal.Open() {
			open = "yes"
		}
		rows = append(rows, []string{id, open, dash(attrs.Label), dash(attrs.LabelledBy), dash(d.modal.AccessibleName())})
	}
	lines := table.Format(rows, nil)
	lines = append(lines, "", fmt.Sprintf("scroll lock holders: %d", m.lock.Holders()))
	return strings.Join(lines, "\n")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (m *Model) stickyDialog() *dialog {
	return &dialog{
		id:          DialogSticky,
		label:       "Sticky",
		description: "no dismiss handler; ctrl+x closes it",
		props: func(open bool) modal.Props {
			return modal.Props{
				ID:             DialogSticky,
				Open:           open,
				Title:          modal.Text("Sticky"),
				Right:          modal.Affordance(),
				AriaLabelledBy: pageTitleID,
				Body:           modal.Text("Esc, the close button and clicks outside are ignored because nothing handles them. Press ctrl+x to close."),
			}
		},
	}
}

func (m *Model) runConfirm(accepted bool) tea.Cmd {
	if !accepted {
		return closeDialogCmd(DialogConfirm, "cancelled")()
	}
	return tea.Batch(
		m.bus.Execute(command.Request{
			ID:    DialogConfirm,
			Label: "Delete item",
			Action: func() tea.Msg {
				return actionResultMsg{info: "Item deleted"}
			},
		}),
		closeDialogCmd(DialogConfirm, "confirmed")(),
	)
}

func (m *Model) runRename(name string) tea.Cmd {
	if name == "" {
		return m.bus.Execute(command.Request{
			ID:    DialogRename,
			Label: "Rename item",
			Action: func() tea.Msg {
				return actionResultMsg{err: errEmptyName}
			},
		})
	}
	return tea.Batch(
		m.bus.Execute(command.Request{
			ID:    DialogRename,
			Label: "Rename item",
			Action: func() tea.Msg {
				return actionResultMsg{info: fmt.Sprintf("Renamed to %q", name)}
			},
		}),
		closeDialogCmd(DialogRename, "applied")(),
	)
}
