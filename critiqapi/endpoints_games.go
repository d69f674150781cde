package critiqapi

import (
	"github.com/pkg/errors"
)

type ListGamesParams struct {
	// Filter-name → value mapping; empty values are skipped
	Filters map[string]string
	Page    int64
	Limit   int64
}

// ListGames fetches one page of the public catalog
func (c *Client) ListGames(params ListGamesParams) (*GameListResponse, error) {
	r := &GameListResponse{}

	q := NewQuery(c, "games").WithFallback("Failed to fetch games")
	q.AddFilters(params.Filters)
	q.AddInt64IfNonZero("page", params.Page)
	q.AddInt64IfNonZero("limit", params.Limit)

	err := q.Get(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// GetGame fetches a single game's details. Works anonymously; an
// authenticated client also gets owner-only fields.
func (c *Client) GetGame(gameID int64) (*Game, error) {
	r := &Game{}

	err := c.GetResponse(c.MakePath("games/%d", gameID), r, "Failed to fetch game details")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}
