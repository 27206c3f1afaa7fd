// Package modal implements an accessible modal dialog for Bubble Tea programs.
//
// The caller owns the open/closed state. A Modal never closes itself: every
// dismiss intent (backdrop click, Esc while the dialog holds focus, or the
// back/close affordances) is reported through Props.OnDismiss, and the caller
// flips Props.Open in response.
//
// Lifecycle:
//   - New mounts the dialog and commits the initial props.
//   - SetProps and SetSize re-render and commit. A commit releases the
//     dialog's scroll lock unconditionally and engages it again when the dialog
//     is open and its content region has been laid out. Opening activates a
//     focus trap over the panel; closing deactivates it and restores the focus
//     that was in place before.
//   - Unmount releases everything the dialog still holds.
//
// While open, the host routes key and mouse messages to Update; View returns
// the backdrop with the centered panel, or "" while closed.
//
// Accessibility attributes are derived from the props (see Attributes): an
// explicit AriaLabelledBy wins over AriaLabel, and a plain Text title labels
// the dialog through its title region when neither is given.
package modal
