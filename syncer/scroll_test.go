package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the sentinel's debounce window by hand
type fakeClock struct {
	t time.Time
}

func (fc *fakeClock) now() time.Time {
	return fc.t
}

func (fc *fakeClock) advance(d time.Duration) {
	fc.t = fc.t.Add(d)
}

func waitForPage(t *testing.T, s *Syncer, page int64) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s.Store().State().Catalog.CurrentPage == page {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("catalog never reached page %d", page)
}

func waitIdle(t *testing.T, ss *ScrollSentinel) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ss.mu.Lock()
		fetching := ss.fetching
		ss.mu.Unlock()
		if !fetching {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("sentinel never went idle")
}

func Test_ScrollSentinelFiresNextPage(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3, 4, 5)
	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))

	clock := &fakeClock{t: time.Unix(1000, 0)}
	ss := NewScrollSentinel(h.syncer, TargetCatalog, 0)
	ss.now = clock.now

	assert.True(t, ss.Check())
	waitForPage(t, h.syncer, 2)
	assert.Len(t, h.syncer.Store().State().Catalog.Items, 5)
}

func Test_ScrollSentinelDebounces(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))

	clock := &fakeClock{t: time.Unix(1000, 0)}
	ss := NewScrollSentinel(h.syncer, TargetCatalog, 0)
	ss.now = clock.now

	assert.True(t, ss.Check())
	waitForPage(t, h.syncer, 2)
	waitIdle(t, ss)

	// still inside the debounce window: the evaluation is dropped
	clock.advance(100 * time.Millisecond)
	assert.False(t, ss.Check())

	clock.advance(DebounceInterval)
	assert.True(t, ss.Check())
	waitForPage(t, h.syncer, 3)
}

func Test_ScrollSentinelStopsAtLastPage(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2)
	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))

	clock := &fakeClock{t: time.Unix(1000, 0)}
	ss := NewScrollSentinel(h.syncer, TargetCatalog, 0)
	ss.now = clock.now

	// page 1 of 1: nothing left to fetch
	assert.False(t, ss.Check())

	clock.advance(DebounceInterval)
	assert.False(t, ss.Check())
}

func Test_ScrollSentinelGuardsAgainstDoubleFetch(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3, 4)
	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))

	clock := &fakeClock{t: time.Unix(1000, 0)}
	ss := NewScrollSentinel(h.syncer, TargetCatalog, 0)
	ss.now = clock.now

	// simulate a page load already in flight from this sentinel
	ss.fetching = true
	assert.False(t, ss.Check())

	clock.advance(DebounceInterval)
	ss.fetching = false
	assert.True(t, ss.Check())
	waitForPage(t, h.syncer, 2)
}
