package shelf

import "github.com/critiqhq/critic/critiqapi"

// Genres is read-only reference data, fetched once per session
type Genres struct {
	Data    []*critiqapi.Genre
	Loading bool
	Err     string
}

type GenresLoading struct{}

type GenresLoaded struct {
	Genres []*critiqapi.Genre
}

type GenresFailed struct {
	Err string
}

func (GenresLoading) isAction() {}
func (GenresLoaded) isAction()  {}
func (GenresFailed) isAction()  {}

func reduceGenres(g Genres, a Action) Genres {
	switch a := a.(type) {
	case GenresLoading:
		g.Loading = true
		g.Err = ""
		return g
	case GenresLoaded:
		g.Data = a.Genres
		g.Loading = false
		g.Err = ""
		return g
	case GenresFailed:
		g.Loading = false
		g.Err = a.Err
		return g
	default:
		return g
	}
}

// Named returns the genre with the given name, or nil
func (g Genres) Named(name string) *critiqapi.Genre {
	for _, genre := range g.Data {
		if genre.Name == name {
			return genre
		}
	}
	return nil
}
