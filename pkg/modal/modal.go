package modal

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/theme"
	"github.com/atomicstack/popup-modal/pkg/focus"
	"github.com/atomicstack/popup-modal/pkg/identity"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

// Modal is a mounted dialog instance.
type Modal struct {
	props Props
	id    string

	lock       ScrollLock
	focus      *focus.Manager
	trap       *focus.Trap
	alloc      Allocator
	translator Translator
	styles     *theme.Styles
	observer   Observer

	width, height int
	region        *scrolllock.Region
	content       viewport.Model
	layout        layout

	mounted      bool
	committed    bool
	prevOpen     bool
	prevRegion   *scrolllock.Region
	prevFocusRef *focus.Ref
	affordances  []string
}

// New mounts a dialog and commits props. The returned command carries any
// focus change the commit produced.
func New(props Props, opts ...Option) (*Modal, tea.Cmd) {
	m := &Modal{
		lock:    scrolllock.Default(),
		focus:   focus.NewManager(),
		alloc:   identity.Default(),
		styles:  theme.Default(),
		content: viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.id = m.alloc.Alloc(props.ID)
	m.trap = focus.NewTrap(m.focus, m.id)
	m.props = props
	m.mounted = true
	return m, m.commit()
}

// ID returns the identifier fixed at mount.
func (m *Modal) ID() string {
	return m.id
}

// Open reports the committed open state.
func (m *Modal) Open() bool {
	return m.props.Open
}

// Props returns the committed props.
func (m *Modal) Props() Props {
	return m.props
}

// Mounted reports whether Unmount has not yet been called.
func (m *Modal) Mounted() bool {
	return m.mounted
}

// Region returns the content region handle, or nil while the dialog is
// closed or before the terminal size is known.
func (m *Modal) Region() *scrolllock.Region {
	if m.region == nil {
		return nil
	}
	r := *m.region
	return &r
}

// Focused returns the focus target currently active in the dialog's manager.
func (m *Modal) Focused() string {
	return m.focus.Active()
}

// BackLabel returns the accessible label of the back affordance.
func (m *Modal) BackLabel() string {
	return m.translate("modal.aria.back", "Back")
}

// CloseLabel returns the accessible label of the close affordance.
func (m *Modal) CloseLabel() string {
	return m.translate("modal.aria.close", "Close")
}

// SetProps replaces the props and commits. The ID field is ignored after
// mount.
func (m *Modal) SetProps(props Props) tea.Cmd {
	if !m.mounted {
		return nil
	}
	m.props = props
	return m.commit()
}

// SetSize records the terminal size and commits.
func (m *Modal) SetSize(width, height int) tea.Cmd {
	if !m.mounted {
		return nil
	}
	if width == m.width && height == m.height && m.committed {
		return nil
	}
	m.width, m.height = width, height
	return m.commit()
}

func (m *Modal) translate(key, fallback string) string {
	if m.translator == nil {
		return fallback
	}
	return m.translator.Translate(key, fallback)
}
