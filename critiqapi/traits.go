package critiqapi

// EntityID makes Game usable as a collection entity
func (g *Game) EntityID() int64 { return g.ID }

// EntityID makes Genre usable as a collection entity
func (ge *Genre) EntityID() int64 { return ge.ID }

// EntityID makes Rating usable as a collection entity
func (r *Rating) EntityID() int64 { return r.ID }

// EntityID makes Comment usable as a collection entity
func (co *Comment) EntityID() int64 { return co.ID }

// GenreNamed returns the game's genre with the given name, or nil
func (g *Game) GenreNamed(name string) *Genre {
	for _, genre := range g.Genres {
		if genre.Name == name {
			return genre
		}
	}
	return nil
}
