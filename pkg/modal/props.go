package modal

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/popup-modal/pkg/focus"
)

// Content is anything the dialog can render at a given width.
type Content interface {
	Render(width int) string
}

// Focusable content exposes the IDs of focus targets it contains, in tab
// order. The IDs must be registered with the dialog's focus manager.
type Focusable interface {
	FocusIDs() []string
}

// Updater content receives the key presses that arrive while one of its
// focus targets holds focus, plus any non-input message.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Text is plain textual content. A Text title is what makes automatic
// labelling possible.
type Text string

// Render wraps the text to width.
func (t Text) Render(width int) string {
	if width <= 0 {
		return string(t)
	}
	return lipgloss.NewStyle().Width(width).Render(string(t))
}

// RenderFunc adapts a function to Content.
type RenderFunc func(width int) string

// Render calls f.
func (f RenderFunc) Render(width int) string {
	if f == nil {
		return ""
	}
	return f(width)
}

// SlotKind tags the variants a title-row slot can take.
type SlotKind int

const (
	SlotNone SlotKind = iota
	SlotAffordance
	SlotCustom
)

func (k SlotKind) String() string {
	switch k {
	case SlotAffordance:
		return "affordance"
	case SlotCustom:
		return "custom"
	default:
		return "none"
	}
}

// Slot is a leading or trailing title-row slot: empty, the built-in
// affordance (back on the left, close on the right), or custom content.
type Slot struct {
	kind    SlotKind
	content Content
}

// None is the empty slot.
var None = Slot{}

// Affordance returns the slot that shows the built-in back or close button.
func Affordance() Slot {
	return Slot{kind: SlotAffordance}
}

// Custom returns a slot rendering c verbatim. Empty content yields None.
func Custom(c Content) Slot {
	if !present(c) {
		return None
	}
	return Slot{kind: SlotCustom, content: c}
}

// Kind reports the slot variant.
func (s Slot) Kind() SlotKind {
	return s.kind
}

// Content returns custom content, or nil for the other variants.
func (s Slot) Content() Content {
	return s.content
}

// Present reports whether the slot renders anything.
func (s Slot) Present() bool {
	return s.kind != SlotNone
}

// Props configures a dialog. The zero value is a closed dialog.
type Props struct {
	Open bool
	// OnDismiss is called synchronously for every dismiss trigger. The
	// returned command, if any, is handed back to the runtime.
	OnDismiss func() tea.Cmd

	Title  Content
	Left   Slot
	Right  Slot
	Body   Content
	Footer Content

	// ID overrides the generated identifier. It is read once, at mount.
	ID string
	// InitialFocus receives focus whenever Open or the ref itself changes.
	InitialFocus *focus.Ref

	AriaLabel      string
	AriaLabelledBy string

	// Style is composed over the theme's backdrop style.
	Style lipgloss.Style
	// Width is the preferred panel width in cells; zero picks a default.
	Width int
}

// present reports whether c renders anything. Nil pointers, maps and the
// like wrapped in a Content count as absent.
func present(c Content) bool {
	switch v := c.(type) {
	case nil:
		return false
	case Text:
		return v != ""
	case RenderFunc:
		return v != nil
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

func focusIDs(c Content) []string {
	if !present(c) {
		return nil
	}
	if f, ok := c.(Focusable); ok {
		return f.FocusIDs()
	}
	return nil
}
