// Package scrolllock suspends page scrolling while overlays are open.
//
// A Coordinator tracks which owners currently hold the lock and the content
// region each owner still allows to scroll. Engage and Release are keyed by
// owner, which makes both idempotent: engaging twice with the same region is
// a no-op, and releasing an owner that holds nothing is a no-op. Independent
// overlays can therefore toggle freely without corrupting the lock count.
package scrolllock

import (
	"sort"
	"sync"

	"github.com/atomicstack/popup-modal/internal/logging/events"
)

// Region identifies the content area that keeps scrolling while the page is
// locked.
type Region struct {
	ID     string
	Width  int
	Height int
}

// Observer receives lock bookkeeping notifications.
type Observer interface {
	LockEngaged(owner string)
	LockReleased(owner string)
	LockHolders(n int)
}

// Coordinator is the shared scroll lock.
type Coordinator struct {
	mu          sync.Mutex
	holders     map[string]Region
	subscribers map[int]func(bool)
	nextSub     int
	observer    Observer
}

// New returns an unlocked coordinator.
func New() *Coordinator {
	return &Coordinator{
		holders:     make(map[string]Region),
		subscribers: make(map[int]func(bool)),
	}
}

var defaultCoordinator = New()

// Default returns the process-wide coordinator.
func Default() *Coordinator {
	return defaultCoordinator
}

// SetObserver installs an observer for engage/release bookkeeping.
func (c *Coordinator) SetObserver(o Observer) {
	c.mu.Lock()
	c.observer = o
	c.mu.Unlock()
}

// Engage locks page scrolling on behalf of owner, leaving region scrollable.
// Engaging again with a different region moves the owner's exemption.
func (c *Coordinator) Engage(owner string, region Region) {
	if owner == "" {
		return
	}
	c.mu.Lock()
	prev, held := c.holders[owner]
	if held && prev == region {
		c.mu.Unlock()
		return
	}
	wasLocked := len(c.holders) > 0
	c.holders[owner] = region
	n := len(c.holders)
	obs := c.observer
	notify := c.transitionLocked(wasLocked)
	c.mu.Unlock()

	events.ScrollLock.Engage(owner, region.ID, n)
	if obs != nil {
		obs.LockEngaged(owner)
		obs.LockHolders(n)
	}
	notify()
}

// Release drops the owner's hold. Releasing an owner without a hold does
// nothing.
func (c *Coordinator) Release(owner string) {
	c.mu.Lock()
	if _, held := c.holders[owner]; !held {
		c.mu.Unlock()
		return
	}
	wasLocked := len(c.holders) > 0
	delete(c.holders, owner)
	n := len(c.holders)
	obs := c.observer
	notify := c.transitionLocked(wasLocked)
	c.mu.Unlock()

	events.ScrollLock.Release(owner, n)
	if obs != nil {
		obs.LockReleased(owner)
		obs.LockHolders(n)
	}
	notify()
}

// transitionLocked must be called with c.mu held. It returns a function that
// notifies subscribers outside the lock when the locked state flipped.
func (c *Coordinator) transitionLocked(wasLocked bool) func() {
	locked := len(c.holders) > 0
	if locked == wasLocked || len(c.subscribers) == 0 {
		return func() {}
	}
	keys := make([]int, 0, len(c.subscribers))
	for k := range c.subscribers {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fns := make([]func(bool), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, c.subscribers[k])
	}
	return func() {
		for _, fn := range fns {
			fn(locked)
		}
	}
}

// Locked reports whether any owner holds the lock.
func (c *Coordinator) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.holders) > 0
}

// Holders returns the number of owners holding the lock.
func (c *Coordinator) Holders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.holders)
}

// Held reports the region held by owner, if any.
func (c *Coordinator) Held(owner string) (Region, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.holders[owner]
	return r, ok
}

// Allows reports whether the region with the given ID may scroll. Everything
// scrolls while unlocked; while locked only regions exempted by a holder do.
func (c *Coordinator) Allows(regionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.holders) == 0 {
		return true
	}
	if regionID == "" {
		return false
	}
	for _, r := range c.holders {
		if r.ID == regionID {
			return true
		}
	}
	return false
}

// Subscribe registers fn to be called whenever the coordinator flips between
// locked and unlocked. The returned function removes the subscription.
func (c *Coordinator) Subscribe(fn func(locked bool)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}
