package criticd

import (
	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/shelf"
)

// CollectionState is the JSON-friendly view of one paginated
// collection, as sent over the wire.
type CollectionState struct {
	Games       []*critiqapi.Game `json:"games"`
	CurrentPage int64             `json:"currentPage"`
	TotalPages  int64             `json:"totalPages"`
	Filters     map[string]string `json:"filters,omitempty"`
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
}

func collectionState(col shelf.Collection[*critiqapi.Game]) *CollectionState {
	return &CollectionState{
		Games:       col.Items,
		CurrentPage: col.CurrentPage,
		TotalPages:  col.TotalPages,
		Filters:     col.Filters,
		Loading:     col.Loading,
		Error:       col.Err,
	}
}

// StateSnapshot is the full store state as broadcast to clients.
// The session token never leaves the daemon.
type StateSnapshot struct {
	Catalog *CollectionState `json:"catalog"`
	Library *CollectionState `json:"library"`

	Genres []*critiqapi.Genre `json:"genres"`

	Details  *critiqapi.Game      `json:"details,omitempty"`
	Ratings  []*critiqapi.Rating  `json:"ratings"`
	Comments []*critiqapi.Comment `json:"comments"`

	User          *critiqapi.User `json:"user,omitempty"`
	Authenticated bool            `json:"authenticated"`
}

func snapshot(st shelf.State) *StateSnapshot {
	return &StateSnapshot{
		Catalog:       collectionState(st.Catalog),
		Library:       collectionState(st.Library.Games),
		Genres:        st.Genres.Data,
		Details:       st.Details.Game,
		Ratings:       st.Ratings.Items,
		Comments:      st.Comments.Items,
		User:          st.Session.User,
		Authenticated: st.Session.Authenticated,
	}
}

// Sent whenever any store slice changes, so view-layer clients can
// re-render without polling.
// @name State.Changed
type StateChangedNotification struct {
	State *StateSnapshot `json:"state"`
}
