package critiqapi

import (
	"github.com/pkg/errors"
)

// ListRatings fetches all ratings for a game
func (c *Client) ListRatings(gameID int64) ([]*Rating, error) {
	var r []*Rating

	err := c.GetResponse(c.MakePath("games/%d/ratings", gameID), &r, "Failed to fetch ratings")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

type SubmitRatingParams struct {
	Rating int64 `json:"rating"`
}

// SubmitRating posts the authenticated user's 1-5 score for a game.
// The server enforces one rating per user per game.
func (c *Client) SubmitRating(gameID int64, params SubmitRatingParams) (*Rating, error) {
	r := &Rating{}

	err := c.postJSON(c.MakePath("games/%d/ratings", gameID), &params, r, "Failed to post rating")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// ListComments fetches a game's comments in server-return order
func (c *Client) ListComments(gameID int64) ([]*Comment, error) {
	var r []*Comment

	err := c.GetResponse(c.MakePath("games/%d/comments", gameID), &r, "Failed to fetch comments")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

type SubmitCommentParams struct {
	Comment string `json:"comment"`
}

// SubmitComment appends a comment to a game's list
func (c *Client) SubmitComment(gameID int64, params SubmitCommentParams) (*Comment, error) {
	r := &Comment{}

	err := c.postJSON(c.MakePath("games/%d/comments", gameID), &params, r, "Failed to post comment")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}
