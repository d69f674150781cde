package shelf

import "github.com/critiqhq/critic/critiqapi"

// Details holds the game currently shown on a details view
type Details struct {
	Game    *critiqapi.Game
	Loading bool
	Err     string
}

type DetailsLoading struct{}

type DetailsLoaded struct {
	Game *critiqapi.Game
}

type DetailsFailed struct {
	Err string
}

func (DetailsLoading) isAction() {}
func (DetailsLoaded) isAction()  {}
func (DetailsFailed) isAction()  {}

func reduceDetails(d Details, a Action) Details {
	switch a := a.(type) {
	case DetailsLoading:
		d.Loading = true
		d.Err = ""
		return d
	case DetailsLoaded:
		d.Game = a.Game
		d.Loading = false
		d.Err = ""
		return d
	case DetailsFailed:
		d.Loading = false
		d.Err = a.Err
		return d
	default:
		return d
	}
}
