package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/pkg/focus"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Lock == nil {
		opts.Lock = scrolllock.New()
	}
	if opts.Focus == nil {
		opts.Focus = focus.NewManager()
	}
	m := NewModel(opts)
	t.Cleanup(m.Close)
	return m
}

func TestNewModelMountsEveryDialogClosed(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24})
	if len(m.order) != len(DialogIDs()) {
		t.Fatalf("expected %d dialogs, got %d", len(DialogIDs()), len(m.order))
	}
	for _, id := range DialogIDs() {
		d, ok := m.dialogs[id]
		if !ok {
			t.Fatalf("dialog %s not mounted", id)
		}
		if !d.modal.Mounted() || d.modal.Open() {
			t.Fatalf("dialog %s should be mounted and closed", id)
		}
	}
	if m.lock.Locked() {
		t.Fatalf("closed dialogs must not hold the scroll lock")
	}
	if got := m.focus.Active(); got != pageID {
		t.Fatalf("expected page focus, got %q", got)
	}
	if len(m.page.Items) != len(DialogIDs()) {
		t.Fatalf("expected one page item per dialog, got %d", len(m.page.Items))
	}
}

func TestInitOpensStartDialog(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24, Dialog: DialogHelp})
	h := NewHarness(m)
	h.Init()
	if m.active != DialogHelp {
		t.Fatalf("expected help dialog active, got %q", m.active)
	}
	if !m.dialogs[DialogHelp].modal.Open() {
		t.Fatalf("help dialog should be open")
	}
	if !m.locked {
		t.Fatalf("expected lock subscription to report locked")
	}
}

func TestInitUnknownDialogSetsError(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24, Dialog: "nope"})
	h := NewHarness(m)
	h.Init()
	if m.active != "" {
		t.Fatalf("expected no active dialog, got %q", m.active)
	}
	if m.errMsg != "unknown dialog nope" {
		t.Fatalf("unexpected error message %q", m.errMsg)
	}
}

func TestOpeningReplacesActiveDialog(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24})
	h := NewHarness(m)
	h.processCmd(m.openDialog(DialogSettings))
	h.processCmd(m.openDialog(DialogHelp))
	if m.dialogs[DialogSettings].modal.Open() {
		t.Fatalf("settings should have been closed")
	}
	if m.active != DialogHelp {
		t.Fatalf("expected help active, got %q", m.active)
	}
	if n := m.lock.Holders(); n != 1 {
		t.Fatalf("expected exactly one lock holder, got %d", n)
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	lock := scrolllock.New()
	m := NewModel(Options{Width: 80, Height: 24, Lock: lock, Dialog: DialogSettings})
	h := NewHarness(m)
	h.Init()
	if !lock.Locked() {
		t.Fatalf("expected lock while settings is open")
	}
	m.Close()
	if lock.Locked() {
		t.Fatalf("expected lock released after Close")
	}
	if m.unsubscribe != nil {
		t.Fatalf("expected subscription dropped")
	}
}

func TestActionResultUpdatesStatus(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24})
	h := NewHarness(m)
	h.Send(actionResultMsg{err: errEmptyName})
	if m.errMsg != errEmptyName.Error() {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
	h.Send(actionResultMsg{info: "done"})
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}
	if m.currentInfo() != "done" {
		t.Fatalf("expected info message, got %q", m.currentInfo())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h.Quit() {
		t.Fatalf("expected harness to observe quit")
	}
}
