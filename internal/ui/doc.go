// Package ui contains the Bubble Tea program that hosts the dialog demos.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so keys, mouse events, resizes
//     and dialog results are handled by focused functions.
//   - While a dialog is open, keys and mouse events go to its modal.Modal,
//     which owns the focus trap, scrolling and dismissal. A dismissal comes
//     back as a dialogClosedMsg so the host decides whether to close.
//   - Without an open dialog the page handles navigation, filtering and
//     opening dialogs (internal/ui/navigation.go, internal/ui/input.go).
//
// State ownership:
//   - Page state lives in internal/ui/state.Page, which tracks items,
//     filtering, the cursor and the visible window.
//   - Every dialog is mounted once at startup and shares the scroll-lock
//     coordinator and focus manager handed in through Options. The page
//     registers as the "page" scroll region, so it only scrolls while no
//     dialog holds the lock.
//   - Actions started from dialogs run through the internal/ui/command bus
//     and report back as actionResultMsg values.
package ui
