package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critiqhq/critic/critiqapi"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func Test_StoreDispatchAndSubscribe(t *testing.T) {
	store := NewStore()

	var seen []State
	cancel := store.Subscribe(func(s State) {
		seen = append(seen, s)
	})

	store.Dispatch(CatalogLoading{Filters: map[string]string{"search": "zelda"}})
	assert.Len(t, seen, 1)
	assert.True(t, seen[0].Catalog.Loading)

	cancel()
	store.Dispatch(CatalogFailed{Err: "Failed to fetch games"})
	assert.Len(t, seen, 1)

	// the store itself still transitioned
	assert.EqualValues(t, "Failed to fetch games", store.State().Catalog.Err)
}

func Test_UnknownActionIsNoOp(t *testing.T) {
	store := NewStore()
	store.Dispatch(CatalogLoaded{Games: makeGames(1, 2), CurrentPage: 1, TotalPages: 1, Reset: true})

	before := store.State()
	store.Dispatch(unknownAction{})
	assert.EqualValues(t, before, store.State())
}

func Test_SessionMachine(t *testing.T) {
	var s Session

	s = reduceSession(s, SessionAuthenticating{})
	assert.True(t, s.Authenticating)

	s = reduceSession(s, SessionFailed{Err: "Login failed"})
	assert.False(t, s.Authenticating)
	assert.False(t, s.Authenticated)
	assert.EqualValues(t, "Login failed", s.Err)

	s = reduceSession(s, SessionAuthenticating{})
	assert.Empty(t, s.Err)

	user := &critiqapi.User{ID: 12, Name: "amos"}
	s = reduceSession(s, SessionEstablished{User: user, Token: "tok"})
	assert.True(t, s.Authenticated)
	assert.False(t, s.Authenticating)
	assert.EqualValues(t, user, s.User)
	assert.EqualValues(t, "tok", s.Token)

	s = reduceSession(s, SessionCleared{})
	assert.EqualValues(t, Session{}, s)
}

func Test_ErrorIsolation(t *testing.T) {
	store := NewStore()
	store.Dispatch(CatalogLoaded{Games: makeGames(1), CurrentPage: 1, TotalPages: 1, Reset: true})
	store.Dispatch(GenresLoaded{Genres: []*critiqapi.Genre{{ID: 1, Name: "RPG"}}})

	// a library failure doesn't disturb any other slice
	store.Dispatch(LibraryFailed{Err: "Failed to fetch user games"})

	st := store.State()
	assert.EqualValues(t, "Failed to fetch user games", st.Library.Games.Err)
	assert.Empty(t, st.Catalog.Err)
	assert.Empty(t, st.Genres.Err)
	assert.Len(t, st.Catalog.Items, 1)
}

func Test_LibraryUpdateSyncsSelected(t *testing.T) {
	var l Library
	l = reduceLibrary(l, LibraryLoaded{Games: makeGames(1, 2), CurrentPage: 1, TotalPages: 1, Reset: true})
	l = reduceLibrary(l, LibrarySelected{Game: l.Games.Items[1]})

	updated := &critiqapi.Game{ID: 2, Title: "Director's Cut"}
	l = reduceLibrary(l, GameUpdated{Game: updated})
	assert.EqualValues(t, "Director's Cut", l.Selected.Title)
	assert.EqualValues(t, "Director's Cut", l.Games.Items[1].Title)

	// updates for IDs we don't hold are dropped, not inserted
	l = reduceLibrary(l, GameUpdated{Game: &critiqapi.Game{ID: 99}})
	assert.Len(t, l.Games.Items, 2)

	l = reduceLibrary(l, GameRemoved{GameID: 2})
	assert.Nil(t, l.Selected)
	assert.Len(t, l.Games.Items, 1)
}

func Test_CommentsPrependRatingsAppend(t *testing.T) {
	var c Comments
	c = reduceComments(c, CommentsLoaded{GameID: 1, Comments: []*critiqapi.Comment{
		{ID: 10, Text: "older"},
	}})
	c = reduceComments(c, CommentAdded{Comment: &critiqapi.Comment{ID: 11, Text: "newer"}})
	assert.EqualValues(t, "newer", c.Items[0].Text)
	assert.EqualValues(t, "older", c.Items[1].Text)

	var r Ratings
	r = reduceRatings(r, RatingsLoaded{GameID: 1, Ratings: []*critiqapi.Rating{
		{ID: 20, UserID: 1, Rating: 4},
	}})
	r = reduceRatings(r, RatingAdded{Rating: &critiqapi.Rating{ID: 21, UserID: 2, Rating: 5}})
	assert.EqualValues(t, 21, r.Items[1].ID)

	assert.EqualValues(t, int64(5), r.ByUser(2).Rating)
	assert.Nil(t, r.ByUser(3))
}

func Test_GenresNamed(t *testing.T) {
	g := Genres{Data: []*critiqapi.Genre{
		{ID: 1, Name: "RPG"},
		{ID: 2, Name: "Platformer"},
	}}

	assert.EqualValues(t, int64(2), g.Named("Platformer").ID)
	assert.Nil(t, g.Named("Roguelike"))
}

func Test_DetailsFlow(t *testing.T) {
	var d Details

	d = reduceDetails(d, DetailsLoading{})
	assert.True(t, d.Loading)

	game := &critiqapi.Game{ID: 3, Title: "Night In The Woods"}
	d = reduceDetails(d, DetailsLoaded{Game: game})
	assert.False(t, d.Loading)
	assert.EqualValues(t, game, d.Game)

	d = reduceDetails(d, DetailsFailed{Err: "Failed to fetch game details"})
	assert.EqualValues(t, "Failed to fetch game details", d.Err)
	// the stale game stays renderable
	assert.EqualValues(t, game, d.Game)
}
