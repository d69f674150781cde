package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogIDs(s *Syncer) []int64 {
	var ids []int64
	for _, g := range s.Store().State().Catalog.Items {
		ids = append(ids, g.ID)
	}
	return ids
}

func Test_LoadCatalogPagination(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3, 4, 5)

	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))
	assert.EqualValues(t, []int64{1, 2, 3}, catalogIDs(h.syncer))

	st := h.syncer.Store().State()
	assert.EqualValues(t, 1, st.Catalog.CurrentPage)
	assert.EqualValues(t, 2, st.Catalog.TotalPages)

	// page 2 appends
	require.NoError(t, h.syncer.LoadCatalog(nil, 2, 0))
	assert.EqualValues(t, []int64{1, 2, 3, 4, 5}, catalogIDs(h.syncer))
	assert.EqualValues(t, 2, h.syncer.Store().State().Catalog.CurrentPage)

	// re-fetching page 2 is idempotent
	require.NoError(t, h.syncer.LoadCatalog(nil, 2, 0))
	assert.EqualValues(t, []int64{1, 2, 3, 4, 5}, catalogIDs(h.syncer))

	// going back to page 1 starts over
	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))
	assert.EqualValues(t, []int64{1, 2, 3}, catalogIDs(h.syncer))
}

func Test_LoadCatalogFilterChangeResets(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3, 4, 5)

	require.NoError(t, h.syncer.LoadCatalog(map[string]string{"search": "a"}, 1, 0))
	require.NoError(t, h.syncer.LoadCatalog(nil, 2, 0))
	assert.Len(t, catalogIDs(h.syncer), 5)

	// a changed filter set replaces even on a later page
	require.NoError(t, h.syncer.LoadCatalog(map[string]string{"search": "b"}, 2, 0))
	assert.EqualValues(t, []int64{4, 5}, catalogIDs(h.syncer))
	assert.EqualValues(t, map[string]string{"search": "b"}, h.syncer.Store().State().Catalog.Filters)
}

func Test_LoadCatalogStaleResponseDiscarded(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3)

	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))

	// a newer request was issued while ours was in flight: its
	// generation supersedes ours, so nothing we'd dispatch may land
	gen := h.syncer.nextGen(&h.syncer.catalogGen)
	assert.True(t, h.syncer.isLatest(&h.syncer.catalogGen, gen))
	assert.False(t, h.syncer.isLatest(&h.syncer.catalogGen, gen-1))
}

func Test_LoadGenresMemoized(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.syncer.LoadGenres())
	genres := h.syncer.Store().State().Genres.Data
	require.Len(t, genres, 2)
	assert.EqualValues(t, "RPG", genres[0].Name)

	// the second call never leaves the process
	h.server.Close()
	require.NoError(t, h.syncer.LoadGenres())

	// a forced refresh does, and fails accordingly
	assert.Error(t, h.syncer.RefreshGenres())
}

func Test_LoadLibraryNeedsSession(t *testing.T) {
	h := newHarness(t)

	err := h.syncer.LoadLibrary(nil, 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func Test_LoadCatalogFailureLandsInSlice(t *testing.T) {
	h := newHarness(t)
	h.platform.addGames(1, 2, 3)
	require.NoError(t, h.syncer.LoadCatalog(nil, 1, 0))

	h.server.Close()
	err := h.syncer.LoadCatalog(nil, 2, 0)
	require.Error(t, err)

	st := h.syncer.Store().State()
	assert.NotEmpty(t, st.Catalog.Err)
	// items fetched before the failure keep rendering
	assert.Len(t, st.Catalog.Items, 3)
}
