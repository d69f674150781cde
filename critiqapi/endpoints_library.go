package critiqapi

import (
	"github.com/pkg/errors"
)

type ListMyGamesParams struct {
	Filters map[string]string
	Page    int64
	Limit   int64
}

// ListMyGames lists the games the authenticated user manages,
// in the same paginated envelope as the public catalog
func (c *Client) ListMyGames(params ListMyGamesParams) (*GameListResponse, error) {
	r := &GameListResponse{}

	q := NewQuery(c, "games/my-games").WithFallback("Failed to fetch user games")
	q.AddFilters(params.Filters)
	q.AddInt64IfNonZero("page", params.Page)
	q.AddInt64IfNonZero("limit", params.Limit)

	err := q.Get(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// GetMyGame fetches one of the authenticated user's own listings
func (c *Client) GetMyGame(gameID int64) (*Game, error) {
	r := &Game{}

	err := c.GetResponse(c.MakePath("games/my-games/%d", gameID), r, "Failed to fetch game details")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// CreateGame uploads a new listing. The server assigns the ID.
func (c *Client) CreateGame(payload GamePayload) (*Game, error) {
	req, err := EncodeGamePayload(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &Game{}
	err = c.RequestResponse("POST", c.MakePath("games"), req.Reader(), req.ContentType, r, "Failed to create game")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// UpdateGame replaces an existing listing's fields
func (c *Client) UpdateGame(gameID int64, payload GamePayload) (*Game, error) {
	req, err := EncodeGamePayload(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &Game{}
	err = c.RequestResponse("PUT", c.MakePath("games/%d", gameID), req.Reader(), req.ContentType, r, "Failed to update game")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// DeleteGame removes a listing
func (c *Client) DeleteGame(gameID int64) error {
	err := c.RequestResponse("DELETE", c.MakePath("games/%d", gameID), nil, "", nil, "Failed to delete game")
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
