package syncer

import (
	"fmt"

	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/shelf"
	"github.com/pkg/errors"
)

// Mutations are never optimistic: the local collection only changes
// after the server confirms. On failure the only state change is the
// recorded error.

// CreateGame uploads a new listing and appends the server-assigned
// entity to the library
func (s *Syncer) CreateGame(payload critiqapi.GamePayload) (*critiqapi.Game, error) {
	client, err := s.authedClient()
	if err != nil {
		return nil, err
	}

	err = payload.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	game, err := client.CreateGame(payload)
	if err != nil {
		s.store.Dispatch(shelf.LibraryFailed{Err: errString(err)})
		return nil, errors.WithStack(err)
	}

	s.store.Dispatch(shelf.GameAdded{Game: game})
	return game, nil
}

// UpdateGame replaces a listing's fields and swaps the confirmed
// entity into the library in place. If the ID isn't held locally the
// result is dropped, not inserted, since the list may be filtered.
func (s *Syncer) UpdateGame(gameID int64, payload critiqapi.GamePayload) (*critiqapi.Game, error) {
	client, err := s.authedClient()
	if err != nil {
		return nil, err
	}

	err = payload.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	game, err := client.UpdateGame(gameID, payload)
	if err != nil {
		s.store.Dispatch(shelf.LibraryFailed{Err: errString(err)})
		return nil, errors.WithStack(err)
	}

	s.store.Dispatch(shelf.GameUpdated{Game: game})
	return game, nil
}

// DeleteGame removes a listing. Deleting an ID that's not held
// locally still succeeds server-side and is a local no-op.
func (s *Syncer) DeleteGame(gameID int64) error {
	client, err := s.authedClient()
	if err != nil {
		return err
	}

	err = client.DeleteGame(gameID)
	if err != nil {
		s.store.Dispatch(shelf.LibraryFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.GameRemoved{GameID: gameID})
	return nil
}

// SubmitRating posts the current user's 1-5 score for a game
func (s *Syncer) SubmitRating(gameID int64, rating int64) error {
	client, err := s.authedClient()
	if err != nil {
		return err
	}

	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	r, err := client.SubmitRating(gameID, critiqapi.SubmitRatingParams{Rating: rating})
	if err != nil {
		s.store.Dispatch(shelf.RatingsFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.RatingAdded{Rating: r})
	return nil
}

// SubmitComment appends a comment to a game. The confirmed comment
// goes to the top of the local list.
func (s *Syncer) SubmitComment(gameID int64, text string) error {
	client, err := s.authedClient()
	if err != nil {
		return err
	}

	if text == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	c, err := client.SubmitComment(gameID, critiqapi.SubmitCommentParams{Comment: text})
	if err != nil {
		s.store.Dispatch(shelf.CommentsFailed{Err: errString(err)})
		return errors.WithStack(err)
	}

	s.store.Dispatch(shelf.CommentAdded{Comment: c})
	return nil
}
