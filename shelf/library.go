package shelf

import "github.com/critiqhq/critic/critiqapi"

// Library is the authenticated user's own game listings, plus the
// single listing currently being viewed or edited.
type Library struct {
	Games    Collection[*critiqapi.Game]
	Selected *critiqapi.Game
}

type LibraryLoading struct {
	Filters map[string]string
}

type LibraryLoaded struct {
	Games       []*critiqapi.Game
	CurrentPage int64
	TotalPages  int64
	Reset       bool
}

type LibraryFailed struct {
	Err string
}

// LibrarySelected holds a single fetched listing for detail/edit views
type LibrarySelected struct {
	Game *critiqapi.Game
}

// GameAdded appends a server-confirmed new listing
type GameAdded struct {
	Game *critiqapi.Game
}

// GameUpdated replaces the matching listing in place. If the ID
// isn't stored locally the update is dropped, not inserted.
type GameUpdated struct {
	Game *critiqapi.Game
}

// GameRemoved drops the matching listing; absent IDs are a no-op
type GameRemoved struct {
	GameID int64
}

func (LibraryLoading) isAction()  {}
func (LibraryLoaded) isAction()   {}
func (LibraryFailed) isAction()   {}
func (LibrarySelected) isAction() {}
func (GameAdded) isAction()       {}
func (GameUpdated) isAction()     {}
func (GameRemoved) isAction()     {}

func reduceLibrary(l Library, a Action) Library {
	switch a := a.(type) {
	case LibraryLoading:
		l.Games = l.Games.StartLoading(a.Filters)
		return l
	case LibraryLoaded:
		l.Games = l.Games.Reconcile(a.Games, a.CurrentPage, a.TotalPages, a.Reset)
		return l
	case LibraryFailed:
		l.Games = l.Games.Fail(a.Err)
		return l
	case LibrarySelected:
		l.Selected = a.Game
		l.Games.Loading = false
		return l
	case GameAdded:
		l.Games = l.Games.Append(a.Game)
		return l
	case GameUpdated:
		l.Games = l.Games.Replace(a.Game)
		if l.Selected != nil && l.Selected.ID == a.Game.ID {
			l.Selected = a.Game
		}
		return l
	case GameRemoved:
		l.Games = l.Games.Remove(a.GameID)
		if l.Selected != nil && l.Selected.ID == a.GameID {
			l.Selected = nil
		}
		return l
	default:
		return l
	}
}
