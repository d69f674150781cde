package syncer

import (
	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/shelf"
	"github.com/pkg/errors"
)

// LoadCatalog fetches one page of the public catalog and reconciles
// it into the store.
//
// Passing nil filters reuses the filter set currently held in the
// store, so callers don't need to thread filters through. The fetched
// page replaces the stored collection when it's page 1 or when the
// filter set changed; otherwise new items are appended, deduplicated
// by ID, so a re-fetched page is harmless.
func (s *Syncer) LoadCatalog(filters map[string]string, page int64, limit int64) error {
	st := s.store.State()
	if filters == nil {
		filters = st.Catalog.Filters
	}
	if page == 0 {
		page = 1
	}

	// a filter change starts a fresh collection rather than
	// appending; mixing filtered and unfiltered result sets in one
	// scroll sequence would be worse than a flicker
	reset := page == 1 || !filtersEqual(filters, st.Catalog.Filters)

	gen := s.nextGen(&s.catalogGen)
	s.store.Dispatch(shelf.CatalogLoading{Filters: filters})

	v, err, _ := s.group.Do(loadKey("catalog", filters, page, limit), func() (interface{}, error) {
		return s.client().ListGames(critiqapi.ListGamesParams{
			Filters: filters,
			Page:    page,
			Limit:   limit,
		})
	})

	if !s.isLatest(&s.catalogGen, gen) {
		// superseded while in flight; the newer request owns the
		// collection, drop this response (errors included)
		return nil
	}

	if err != nil {
		s.store.Dispatch(shelf.CatalogFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	res := v.(*critiqapi.GameListResponse)
	s.store.Dispatch(shelf.CatalogLoaded{
		Games:       res.Games,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		Reset:       reset,
	})
	return nil
}

// LoadLibrary fetches one page of the authenticated user's own
// listings, with the same reconciliation rules as LoadCatalog
func (s *Syncer) LoadLibrary(filters map[string]string, page int64, limit int64) error {
	client, err := s.authedClient()
	if err != nil {
		return err
	}

	st := s.store.State()
	if filters == nil {
		filters = st.Library.Games.Filters
	}
	if page == 0 {
		page = 1
	}

	reset := page == 1 || !filtersEqual(filters, st.Library.Games.Filters)

	gen := s.nextGen(&s.libraryGen)
	s.store.Dispatch(shelf.LibraryLoading{Filters: filters})

	v, err, _ := s.group.Do(loadKey("library", filters, page, limit), func() (interface{}, error) {
		return client.ListMyGames(critiqapi.ListMyGamesParams{
			Filters: filters,
			Page:    page,
			Limit:   limit,
		})
	})

	if !s.isLatest(&s.libraryGen, gen) {
		return nil
	}

	if err != nil {
		s.store.Dispatch(shelf.LibraryFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	res := v.(*critiqapi.GameListResponse)
	s.store.Dispatch(shelf.LibraryLoaded{
		Games:       res.Games,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		Reset:       reset,
	})
	return nil
}

// LoadMyGame fetches a single listing owned by the current user into
// the library's Selected slot (detail/edit views)
func (s *Syncer) LoadMyGame(gameID int64) error {
	client, err := s.authedClient()
	if err != nil {
		return err
	}

	s.store.Dispatch(shelf.LibraryLoading{})
	game, err := client.GetMyGame(gameID)
	if err != nil {
		s.store.Dispatch(shelf.LibraryFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.LibrarySelected{Game: game})
	return nil
}

// LoadGenres fetches genre reference data. Genres are fetched once
// per session: when the store already has them this is a no-op.
// Use RefreshGenres to force a round-trip.
func (s *Syncer) LoadGenres() error {
	if len(s.store.State().Genres.Data) > 0 {
		return nil
	}
	return s.RefreshGenres()
}

// RefreshGenres always hits the server
func (s *Syncer) RefreshGenres() error {
	s.store.Dispatch(shelf.GenresLoading{})

	v, err, _ := s.group.Do("genres", func() (interface{}, error) {
		return s.client().ListGenres()
	})
	if err != nil {
		s.store.Dispatch(shelf.GenresFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.GenresLoaded{Genres: v.([]*critiqapi.Genre)})
	return nil
}

// LoadGameDetails fetches one game's details. Anonymous works; an
// authenticated session also gets owner-only fields.
func (s *Syncer) LoadGameDetails(gameID int64) error {
	s.store.Dispatch(shelf.DetailsLoading{})

	game, err := s.client().GetGame(gameID)
	if err != nil {
		s.store.Dispatch(shelf.DetailsFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.DetailsLoaded{Game: game})
	return nil
}

// LoadRatings fetches the rating list for a game
func (s *Syncer) LoadRatings(gameID int64) error {
	ratings, err := s.client().ListRatings(gameID)
	if err != nil {
		s.store.Dispatch(shelf.RatingsFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.RatingsLoaded{GameID: gameID, Ratings: ratings})
	return nil
}

// LoadComments fetches the comment list for a game, in server-return
// order (newest first)
func (s *Syncer) LoadComments(gameID int64) error {
	comments, err := s.client().ListComments(gameID)
	if err != nil {
		s.store.Dispatch(shelf.CommentsFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.CommentsLoaded{GameID: gameID, Comments: comments})
	return nil
}
