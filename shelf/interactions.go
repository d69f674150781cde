package shelf

import "github.com/critiqhq/critic/critiqapi"

// Ratings holds the rating list for the game currently in view
type Ratings struct {
	GameID int64
	Items  []*critiqapi.Rating
	Err    string
}

type RatingsLoaded struct {
	GameID  int64
	Ratings []*critiqapi.Rating
}

// RatingAdded appends a server-confirmed rating
type RatingAdded struct {
	Rating *critiqapi.Rating
}

type RatingsFailed struct {
	Err string
}

func (RatingsLoaded) isAction() {}
func (RatingAdded) isAction()   {}
func (RatingsFailed) isAction() {}

func reduceRatings(r Ratings, a Action) Ratings {
	switch a := a.(type) {
	case RatingsLoaded:
		r.GameID = a.GameID
		r.Items = a.Ratings
		r.Err = ""
		return r
	case RatingAdded:
		items := append([]*critiqapi.Rating(nil), r.Items...)
		r.Items = append(items, a.Rating)
		return r
	case RatingsFailed:
		r.Err = a.Err
		return r
	default:
		return r
	}
}

// ByUser returns the rating left by the given user, or nil. Used to
// resolve "your rating" on details views; a user has at most one
// rating per game.
func (r Ratings) ByUser(userID int64) *critiqapi.Rating {
	for _, rating := range r.Items {
		if rating.UserID == userID {
			return rating
		}
	}
	return nil
}

// Comments holds the comment list for the game currently in view
type Comments struct {
	GameID int64
	Items  []*critiqapi.Comment
	Err    string
}

type CommentsLoaded struct {
	GameID   int64
	Comments []*critiqapi.Comment
}

// CommentAdded puts a server-confirmed comment at the top of the list
type CommentAdded struct {
	Comment *critiqapi.Comment
}

type CommentsFailed struct {
	Err string
}

func (CommentsLoaded) isAction() {}
func (CommentAdded) isAction()   {}
func (CommentsFailed) isAction() {}

func reduceComments(c Comments, a Action) Comments {
	switch a := a.(type) {
	case CommentsLoaded:
		c.GameID = a.GameID
		c.Items = a.Comments
		c.Err = ""
		return c
	case CommentAdded:
		items := []*critiqapi.Comment{a.Comment}
		c.Items = append(items, c.Items...)
		return c
	case CommentsFailed:
		c.Err = a.Err
		return c
	default:
		return c
	}
}
