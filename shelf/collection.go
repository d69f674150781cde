package shelf

// Entity is anything with a stable numeric identity. The ID is the
// sole identity key used for de-duplication across paginated fetches.
type Entity interface {
	EntityID() int64
}

// Collection is a paginated, filterable, id-deduplicated list of
// entities of one resource type. All methods are pure: they return a
// new collection and never mutate the receiver, so previous states
// handed out to subscribers stay valid.
type Collection[T Entity] struct {
	// Insertion-ordered items, unique by entity ID
	Items []T

	// Server-authoritative page counters. The client never computes
	// these locally.
	CurrentPage int64
	TotalPages  int64

	// Active filter-name → value mapping
	Filters map[string]string

	Loading bool
	Err     string
}

// StartLoading transitions the collection into its loading state.
// Passing nil filters keeps the currently active filter set.
func (c Collection[T]) StartLoading(filters map[string]string) Collection[T] {
	c.Loading = true
	c.Err = ""
	if filters != nil {
		c.Filters = filters
	}
	return c
}

// Reconcile merges one fetched page into the collection.
//
// When reset is true the returned items fully replace the stored
// ones. Otherwise all previously stored items are kept and only the
// newly returned items whose ID isn't already present are appended,
// so re-fetching a page is idempotent.
func (c Collection[T]) Reconcile(items []T, currentPage int64, totalPages int64, reset bool) Collection[T] {
	if reset {
		c.Items = append([]T(nil), items...)
	} else {
		seen := make(map[int64]bool, len(c.Items))
		for _, item := range c.Items {
			seen[item.EntityID()] = true
		}

		merged := append([]T(nil), c.Items...)
		for _, item := range items {
			if seen[item.EntityID()] {
				continue
			}
			seen[item.EntityID()] = true
			merged = append(merged, item)
		}
		c.Items = merged
	}

	c.CurrentPage = currentPage
	c.TotalPages = totalPages
	c.Loading = false
	c.Err = ""
	return c
}

// Fail records a load failure. Items and page counters are left
// untouched so the view can keep rendering what it has.
func (c Collection[T]) Fail(msg string) Collection[T] {
	c.Loading = false
	c.Err = msg
	return c
}

// Append adds a freshly created entity at the end. Order isn't
// guaranteed to match server sort order until the next full reload.
func (c Collection[T]) Append(item T) Collection[T] {
	items := append([]T(nil), c.Items...)
	c.Items = append(items, item)
	return c
}

// Replace swaps the entity with a matching ID in place. If no entity
// with that ID is stored, the collection is returned unchanged: the
// list may be filtered, and inserting an entity that no longer
// matches the active filters would corrupt it.
func (c Collection[T]) Replace(item T) Collection[T] {
	for i, existing := range c.Items {
		if existing.EntityID() == item.EntityID() {
			items := append([]T(nil), c.Items...)
			items[i] = item
			c.Items = items
			return c
		}
	}
	return c
}

// Remove drops the entity with the given ID. Removing an absent ID
// is a no-op.
func (c Collection[T]) Remove(id int64) Collection[T] {
	for i, existing := range c.Items {
		if existing.EntityID() == id {
			items := append([]T(nil), c.Items[:i]...)
			items = append(items, c.Items[i+1:]...)
			c.Items = items
			return c
		}
	}
	return c
}

// Contains reports whether an entity with the given ID is stored
func (c Collection[T]) Contains(id int64) bool {
	for _, existing := range c.Items {
		if existing.EntityID() == id {
			return true
		}
	}
	return false
}
