package critiqapi

import (
	"github.com/pkg/errors"
)

// ListGenres fetches the platform's genre reference data.
// Genres are never created or mutated from the client side.
func (c *Client) ListGenres() ([]*Genre, error) {
	var r []*Genre

	err := c.GetResponse(c.MakePath("genres"), &r, "Failed to fetch genres")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}
