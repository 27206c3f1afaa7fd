// Package identity allocates stable identifiers for widget instances.
//
// Identifiers are used to wire relationships between rendered regions (for
// example a dialog and its title), so they must be unique across every
// instance mounted by the process and must never change once handed out.
package identity

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

const defaultPrefix = "modal"

// Allocator hands out identifiers of the form <prefix>-<scope>-<n>.
type Allocator struct {
	prefix string
	scope  string
	next   atomic.Uint64
}

// NewAllocator returns an allocator whose identifiers start with prefix. The
// scope segment is derived once from a random UUID so that two allocators in
// the same process never collide.
func NewAllocator(prefix string) *Allocator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	scope := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return &Allocator{prefix: prefix, scope: scope}
}

var defaultAllocator = NewAllocator(defaultPrefix)

// Default returns the process-wide allocator.
func Default() *Allocator {
	return defaultAllocator
}

// Alloc returns seed when it is non-empty, otherwise a fresh identifier.
func (a *Allocator) Alloc(seed string) string {
	if seed = strings.TrimSpace(seed); seed != "" {
		return seed
	}
	n := a.next.Add(1)
	return a.prefix + "-" + a.scope + "-" + strconv.FormatUint(n, 10)
}
