package focus

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
)

// Trap confines tab-order focus to a root and its focusable descendants.
//
// While active, Next and Prev cycle through the ring, and SetRing pulls focus
// back inside whenever it has escaped. Deactivate returns focus to whatever
// held it before activation.
type Trap struct {
	mgr     *Manager
	root    string
	ring    []string
	restore string
	active  bool
}

// NewTrap returns an inactive trap for root. The root itself is registered as
// a focus target so the trap always has somewhere to put focus.
func NewTrap(mgr *Manager, root string) *Trap {
	mgr.Register(root, nil)
	return &Trap{mgr: mgr, root: root}
}

// Active reports whether the trap is engaged.
func (t *Trap) Active() bool {
	return t.active
}

// Root returns the trap's root ID.
func (t *Trap) Root() string {
	return t.root
}

// Ring returns a copy of the current focus ring.
func (t *Trap) Ring() []string {
	return slices.Clone(t.ring)
}

// Activate engages the trap. When focus is not already inside, it moves to
// the first focusable descendant, or the root when there are none.
func (t *Trap) Activate(ring []string) tea.Cmd {
	if t.active {
		return t.SetRing(ring)
	}
	t.mgr.Register(t.root, nil)
	t.restore = t.mgr.Active()
	t.active = true
	t.ring = t.focusable(ring)
	events.Focus.Trap(t.root, t.restore, len(t.ring))
	if t.Contains(t.mgr.Active()) {
		return nil
	}
	return t.first()
}

// SetRing replaces the focus ring. If the trap is active and focus has left
// the trapped subtree, focus is pulled back to the first element.
func (t *Trap) SetRing(ring []string) tea.Cmd {
	t.ring = t.focusable(ring)
	if !t.active || t.Contains(t.mgr.Active()) {
		return nil
	}
	return t.first()
}

// Deactivate releases the trap and restores the focus that was in place when
// it was activated. It is safe to call on an inactive trap.
func (t *Trap) Deactivate() tea.Cmd {
	if !t.active {
		return nil
	}
	t.active = false
	restore := t.restore
	t.restore = ""
	events.Focus.Restore(t.root, restore)
	if restore != "" && t.mgr.Registered(restore) && !t.Contains(restore) {
		return t.mgr.Focus(restore)
	}
	t.mgr.Blur()
	return nil
}

// Contains reports whether id is the root or one of the ring members.
func (t *Trap) Contains(id string) bool {
	if id == "" {
		return false
	}
	return id == t.root || slices.Contains(t.ring, id)
}

// Next moves focus forward through the ring, wrapping at the end.
func (t *Trap) Next() tea.Cmd {
	return t.step(1)
}

// Prev moves focus backward through the ring, wrapping at the start.
func (t *Trap) Prev() tea.Cmd {
	return t.step(-1)
}

func (t *Trap) step(delta int) tea.Cmd {
	if !t.active {
		return nil
	}
	if len(t.ring) == 0 {
		return t.mgr.Focus(t.root)
	}
	idx := slices.Index(t.ring, t.mgr.Active())
	if idx < 0 {
		if delta > 0 {
			return t.mgr.Focus(t.ring[0])
		}
		return t.mgr.Focus(t.ring[len(t.ring)-1])
	}
	n := len(t.ring)
	return t.mgr.Focus(t.ring[((idx+delta)%n+n)%n])
}

func (t *Trap) first() tea.Cmd {
	if len(t.ring) > 0 {
		return t.mgr.Focus(t.ring[0])
	}
	return t.mgr.Focus(t.root)
}

func (t *Trap) focusable(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == t.root || !t.mgr.Registered(id) || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
