package syncer

import (
	"sync"
	"time"

	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/shelf"
)

// DebounceInterval is the minimum delay between two scroll-position
// evaluations
const DebounceInterval = 300 * time.Millisecond

// Target selects which collection a scroll sentinel watches
type Target int

const (
	TargetCatalog Target = iota
	TargetLibrary
)

// ScrollSentinel drives infinite scrolling: view layers call Check
// on every scroll event and the sentinel decides when a next-page
// load actually fires. Evaluations are debounced, and a load fires
// only when the collection isn't already loading, no extra page is
// in flight from this sentinel, and there are pages left. The triple
// guard keeps rapid scroll events from issuing duplicate concurrent
// page requests.
type ScrollSentinel struct {
	syncer *Syncer
	target Target
	limit  int64

	mu       sync.Mutex
	last     time.Time
	fetching bool

	// test seam
	now func() time.Time
}

func NewScrollSentinel(s *Syncer, target Target, limit int64) *ScrollSentinel {
	return &ScrollSentinel{
		syncer: s,
		target: target,
		limit:  limit,
		now:    time.Now,
	}
}

func (ss *ScrollSentinel) collection() shelf.Collection[*critiqapi.Game] {
	st := ss.syncer.store.State()
	if ss.target == TargetLibrary {
		return st.Library.Games
	}
	return st.Catalog
}

// Check evaluates the scroll trigger. It returns true when a
// next-page load was started. The load itself runs asynchronously;
// its outcome lands in the store like any other.
func (ss *ScrollSentinel) Check() bool {
	ss.mu.Lock()

	now := ss.now()
	if now.Sub(ss.last) < DebounceInterval {
		ss.mu.Unlock()
		return false
	}
	ss.last = now

	if ss.fetching {
		ss.mu.Unlock()
		return false
	}

	col := ss.collection()
	if col.Loading || col.CurrentPage >= col.TotalPages {
		ss.mu.Unlock()
		return false
	}

	ss.fetching = true
	page := col.CurrentPage + 1
	ss.mu.Unlock()

	go func() {
		defer func() {
			ss.mu.Lock()
			ss.fetching = false
			ss.mu.Unlock()
		}()

		var err error
		if ss.target == TargetLibrary {
			err = ss.syncer.LoadLibrary(nil, page, ss.limit)
		} else {
			err = ss.syncer.LoadCatalog(nil, page, ss.limit)
		}
		if err != nil {
			ss.syncer.logf("Scroll-triggered load of page %d failed: %s", page, errString(err))
		}
	}()
	return true
}
