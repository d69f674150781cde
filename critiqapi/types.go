package critiqapi

// User represents a critiq account
type User struct {
	// Site-wide unique identifier
	ID int64 `json:"userId"`
	// Display name
	Name string `json:"name"`
	// Address the account was registered with
	Email string `json:"email"`
}

// Game is a single entry of the review platform's catalog.
//
// IDs are stable and are the sole identity key used when
// reconciling paginated fetches.
type Game struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseDate string `json:"release_date"`
	Publisher   string `json:"publisher"`

	// URL of the game's thumbnail, served by the platform
	Thumbnail string `json:"thumbnail"`

	AvgUserRating   float64 `json:"avg_user_rating"`
	ViewCount       int64   `json:"view_count"`
	PopularityScore float64 `json:"popularity_score"`

	// ID of the user who uploaded this listing
	CreatedBy int64 `json:"created_by"`

	Genres []*Genre `json:"genres"`
}

// Genre is read-only reference data, fetched once per session
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating is a 1-5 score a user gave a game. A user has at most
// one rating per game.
type Rating struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	GameID int64 `json:"game_id"`
	Rating int64 `json:"rating"`
}

// Comment is one entry of a game's append-only comment list
type Comment struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	GameID     int64  `json:"game_id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
}
