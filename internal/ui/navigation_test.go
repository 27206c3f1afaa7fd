package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

func TestPageCursorMoves(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.page.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.page.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if m.page.Cursor != len(DialogIDs())-1 {
		t.Fatalf("expected cursor at end, got %d", m.page.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyHome})
	if m.page.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", m.page.Cursor)
	}
}

func TestPageCursorBlockedWhileLocked(t *testing.T) {
	lock := scrolllock.New()
	m := newTestModel(t, Options{Width: 80, Height: 24, Lock: lock})
	h := NewHarness(m)
	lock.Engage("elsewhere", scrolllock.Region{ID: "elsewhere__content"})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.page.Cursor != 0 {
		t.Fatalf("expected page cursor to stay put while locked, got %d", m.page.Cursor)
	}
	lock.Release("elsewhere")
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.page.Cursor != 1 {
		t.Fatalf("expected page cursor to move after release, got %d", m.page.Cursor)
	}
}

func TestWheelScrollsPageUnlessLocked(t *testing.T) {
	lock := scrolllock.New()
	m := newTestModel(t, Options{Width: 80, Height: 6, Lock: lock})
	h := NewHarness(m)
	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}

	lock.Engage("elsewhere", scrolllock.Region{ID: "elsewhere__content"})
	h.Send(wheel)
	if m.page.Offset != 0 {
		t.Fatalf("expected offset 0 while locked, got %d", m.page.Offset)
	}
	lock.Release("elsewhere")
	h.Send(wheel)
	if m.page.Offset == 0 {
		t.Fatalf("expected wheel to scroll the page once unlocked")
	}
}

func TestClickOpensDialogRow(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 24})
	h := NewHarness(m)
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 3, Y: m.itemsTop() + 3})
	if m.active != DialogHelp {
		t.Fatalf("expected help opened by click, got %q", m.active)
	}
}

func TestResizePropagatesToDialogs(t *testing.T) {
	m := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", m.width, m.height)
	}
	h.processCmd(m.openDialog(DialogSettings))
	region := m.dialogs[DialogSettings].modal.Region()
	if region == nil {
		t.Fatalf("expected a content region once the size is known")
	}
	if region.ID != DialogSettings+"__content" {
		t.Fatalf("unexpected region id %q", region.ID)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	m := newTestModel(t, Options{Width: 50, Height: 20})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 50 || m.height != 20 {
		t.Fatalf("expected fixed 50x20, got %dx%d", m.width, m.height)
	}
}
