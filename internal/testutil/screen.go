package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences from a rendered frame.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits a rendered frame into plain-text rows.
func Lines(s string) []string {
	return strings.Split(StripANSI(s), "\n")
}

// Locate returns the cell position of the first occurrence of needle in a
// rendered frame. ok is false when needle does not appear.
func Locate(frame, needle string) (x, y int, ok bool) {
	for row, line := range Lines(frame) {
		idx := strings.Index(line, needle)
		if idx < 0 {
			continue
		}
		return ansi.StringWidth(line[:idx]), row, true
	}
	return 0, 0, false
}
