package modal

import (
	"github.com/atomicstack/popup-modal/internal/theme"
	"github.com/atomicstack/popup-modal/pkg/focus"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

// ScrollLock is the subset of the scroll-lock coordinator a dialog drives.
type ScrollLock interface {
	Engage(owner string, region scrolllock.Region)
	Release(owner string)
}

// Translator resolves user-facing strings, returning fallback when key is
// unknown.
type Translator interface {
	Translate(key, fallback string) string
}

// Allocator hands out dialog identifiers. A non-empty seed is used as is.
type Allocator interface {
	Alloc(seed string) string
}

// Observer is notified of dialog lifecycle transitions and dismiss intents.
type Observer interface {
	ModalOpened(id string)
	ModalClosed(id string)
	DismissRequested(id, trigger string, handled bool)
}

// Option customises a dialog at construction.
type Option func(*Modal)

// WithScrollLock sets the coordinator the dialog engages while open. The
// process-wide scrolllock.Default is used otherwise.
func WithScrollLock(l ScrollLock) Option {
	return func(m *Modal) {
		if l != nil {
			m.lock = l
		}
	}
}

// WithFocusManager shares a focus manager with the host so the dialog can
// restore the host's focus on close.
func WithFocusManager(mgr *focus.Manager) Option {
	return func(m *Modal) {
		if mgr != nil {
			m.focus = mgr
		}
	}
}

func WithAllocator(a Allocator) Option {
	return func(m *Modal) {
		if a != nil {
			m.alloc = a
		}
	}
}

func WithTranslator(t Translator) Option {
	return func(m *Modal) {
		m.translator = t
	}
}

func WithStyles(s *theme.Styles) Option {
	return func(m *Modal) {
		if s != nil {
			m.styles = s
		}
	}
}

func WithObserver(o Observer) Option {
	return func(m *Modal) {
		m.observer = o
	}
}

// WithSize sets the initial terminal size, so the content region can be laid
// out and the scroll lock engaged on the first commit.
func WithSize(width, height int) Option {
	return func(m *Modal) {
		m.width, m.height = width, height
	}
}
