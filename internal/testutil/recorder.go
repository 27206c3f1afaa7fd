package testutil

import (
	"fmt"
	"slices"
	"sync"

	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

// LockRecorder is a scroll-lock fake that records every call in order as
// "release:<owner>" or "engage:<owner>:<region>".
type LockRecorder struct {
	mu    sync.Mutex
	calls []string
	held  map[string]scrolllock.Region
}

func NewLockRecorder() *LockRecorder {
	return &LockRecorder{held: make(map[string]scrolllock.Region)}
}

func (r *LockRecorder) Engage(owner string, region scrolllock.Region) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("engage:%s:%s", owner, region.ID))
	r.held[owner] = region
}

func (r *LockRecorder) Release(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "release:"+owner)
	delete(r.held, owner)
}

// Calls returns the recorded calls.
func (r *LockRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Engaged reports whether owner currently holds the lock.
func (r *LockRecorder) Engaged(owner string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.held[owner]
	return ok
}

// Region returns the region owner last engaged with.
func (r *LockRecorder) Region(owner string) (scrolllock.Region, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	region, ok := r.held[owner]
	return region, ok
}

// Reset forgets the recorded calls but keeps the holder state.
func (r *LockRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
