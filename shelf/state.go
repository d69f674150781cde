package shelf

import "github.com/critiqhq/critic/critiqapi"

// State is the root of the normalized application state. The store
// exclusively owns it; orchestrators are the only mutators, via
// dispatched actions.
type State struct {
	Catalog  Collection[*critiqapi.Game]
	Library  Library
	Genres   Genres
	Details  Details
	Ratings  Ratings
	Comments Comments
	Session  Session
}

func initialState() State {
	return State{}
}

// reduce hands the action to every slice reducer. Each one ignores
// actions that aren't its own.
func reduce(s State, a Action) State {
	s.Catalog = reduceCatalog(s.Catalog, a)
	s.Library = reduceLibrary(s.Library, a)
	s.Genres = reduceGenres(s.Genres, a)
	s.Details = reduceDetails(s.Details, a)
	s.Ratings = reduceRatings(s.Ratings, a)
	s.Comments = reduceComments(s.Comments, a)
	s.Session = reduceSession(s.Session, a)
	return s
}
