package scrolllock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	engaged  []string
	released []string
	holders  []int
}

func (o *recordingObserver) LockEngaged(owner string)  { o.engaged = append(o.engaged, owner) }
func (o *recordingObserver) LockReleased(owner string) { o.released = append(o.released, owner) }
func (o *recordingObserver) LockHolders(n int)         { o.holders = append(o.holders, n) }

func TestReleaseWithoutEngageIsNoop(t *testing.T) {
	c := New()
	obs := &recordingObserver{}
	c.SetObserver(obs)

	c.Release("modal-1")
	c.Release("modal-1")

	assert.False(t, c.Locked())
	assert.Zero(t, c.Holders())
	assert.Empty(t, obs.released)
}

func TestEngageIsIdempotentPerOwner(t *testing.T) {
	c := New()
	obs := &recordingObserver{}
	c.SetObserver(obs)
	region := Region{ID: "modal-1__content", Width: 40, Height: 10}

	c.Engage("modal-1", region)
	c.Engage("modal-1", region)

	assert.Equal(t, 1, c.Holders())
	assert.Equal(t, []string{"modal-1"}, obs.engaged)
}

func TestEngageWithNewRegionMovesExemption(t *testing.T) {
	c := New()
	c.Engage("modal-1", Region{ID: "old"})
	c.Engage("modal-1", Region{ID: "new"})

	assert.Equal(t, 1, c.Holders())
	assert.False(t, c.Allows("old"))
	assert.True(t, c.Allows("new"))
	held, ok := c.Held("modal-1")
	require.True(t, ok)
	assert.Equal(t, "new", held.ID)
}

func TestIndependentOwnersCompose(t *testing.T) {
	c := New()
	c.Engage("a", Region{ID: "a__content"})
	c.Engage("b", Region{ID: "b__content"})
	c.Release("a")
	c.Release("a")

	assert.True(t, c.Locked(), "b still holds the lock")
	c.Release("b")
	assert.False(t, c.Locked())
}

func TestAllows(t *testing.T) {
	c := New()
	assert.True(t, c.Allows("page"), "unlocked coordinator allows everything")
	assert.True(t, c.Allows(""))

	c.Engage("modal-1", Region{ID: "modal-1__content"})
	assert.False(t, c.Allows("page"))
	assert.False(t, c.Allows(""))
	assert.True(t, c.Allows("modal-1__content"))
}

func TestSubscribersSeeTransitionsOnly(t *testing.T) {
	c := New()
	var seen []bool
	unsubscribe := c.Subscribe(func(locked bool) { seen = append(seen, locked) })

	c.Engage("a", Region{ID: "a"})
	c.Engage("b", Region{ID: "b"})
	c.Release("a")
	c.Release("b")
	assert.Equal(t, []bool{true, false}, seen)

	unsubscribe()
	c.Engage("a", Region{ID: "a"})
	assert.Equal(t, []bool{true, false}, seen)
}

func TestEmptyOwnerIsIgnored(t *testing.T) {
	c := New()
	c.Engage("", Region{ID: "x"})
	assert.False(t, c.Locked())
}

func TestConcurrentEngageRelease(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		owner := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Release(owner)
				c.Engage(owner, Region{ID: owner})
			}
			c.Release(owner)
		}()
	}
	wg.Wait()
	assert.False(t, c.Locked())
}

func TestObserverCountsHolders(t *testing.T) {
	c := New()
	obs := &recordingObserver{}
	c.SetObserver(obs)
	c.Engage("a", Region{ID: "a"})
	c.Engage("b", Region{ID: "b"})
	c.Release("b")
	assert.Equal(t, []int{1, 2, 1}, obs.holders)
	assert.Equal(t, []string{"b"}, obs.released)
}
