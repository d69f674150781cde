package criticd

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/critiqhq/critic/critiqapi"
)

// Params for every method a view-layer client can call. Each params
// type knows how to validate itself; handlers reject invalid params
// before touching any orchestrator.

// Must be the first request on every connection.
// @name Meta.Authenticate
type MetaAuthenticateParams struct {
	Secret string `json:"secret"`
}

func (p MetaAuthenticateParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Secret, validation.Required),
	)
}

type MetaAuthenticateResult struct {
	OK bool `json:"ok"`
}

// @name Version.Get
type VersionGetParams struct{}

func (p VersionGetParams) Validate() error {
	return nil
}

type VersionGetResult struct {
	// Something short, like `25.3.1`
	Version string `json:"version"`
	// Something long, like `25.3.1, built on Apr 4 2025 @ 01:13:55`
	VersionString string `json:"versionString"`
}

// @name Session.Login
type SessionLoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p SessionLoginParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

type SessionLoginResult struct {
	User *critiqapi.User `json:"user"`
}

// @name Session.Register
type SessionRegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p SessionRegisterParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 0)),
	)
}

type SessionRegisterResult struct {
	User *critiqapi.User `json:"user"`
}

// @name Session.Logout
type SessionLogoutParams struct{}

func (p SessionLogoutParams) Validate() error {
	return nil
}

type SessionLogoutResult struct{}

// @name Session.Current
type SessionCurrentParams struct{}

func (p SessionCurrentParams) Validate() error {
	return nil
}

type SessionCurrentResult struct {
	User          *critiqapi.User `json:"user"`
	Authenticated bool            `json:"authenticated"`
}

// @name Catalog.Load
type CatalogLoadParams struct {
	Filters map[string]string `json:"filters"`
	Page    int64             `json:"page"`
	Limit   int64             `json:"limit"`
}

func (p CatalogLoadParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Min(0)),
		validation.Field(&p.Limit, validation.Min(0)),
	)
}

type CatalogLoadResult struct {
	Collection *CollectionState `json:"collection"`
}

// Runs the infinite-scroll trigger once: debounced, and guarded
// against duplicate concurrent page loads.
// @name Catalog.Scroll
type CatalogScrollParams struct{}

func (p CatalogScrollParams) Validate() error {
	return nil
}

type CatalogScrollResult struct {
	// True when a next-page load was actually started
	Fired bool `json:"fired"`
}

// @name Genres.List
type GenresListParams struct {
	// Force a server round-trip even if genres were already fetched
	Fresh bool `json:"fresh"`
}

func (p GenresListParams) Validate() error {
	return nil
}

type GenresListResult struct {
	Genres []*critiqapi.Genre `json:"genres"`
}

// @name Game.Get
type GameGetParams struct {
	GameID int64 `json:"gameId"`
}

func (p GameGetParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
	)
}

type GameGetResult struct {
	Game *critiqapi.Game `json:"game"`
}

// @name Ratings.List
type RatingsListParams struct {
	GameID int64 `json:"gameId"`
}

func (p RatingsListParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
	)
}

type RatingsListResult struct {
	Ratings []*critiqapi.Rating `json:"ratings"`
	// The current user's own rating, if any
	YourRating *critiqapi.Rating `json:"yourRating,omitempty"`
}

// @name Ratings.Submit
type RatingsSubmitParams struct {
	GameID int64 `json:"gameId"`
	Rating int64 `json:"rating"`
}

func (p RatingsSubmitParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
		validation.Field(&p.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

type RatingsSubmitResult struct{}

// @name Comments.List
type CommentsListParams struct {
	GameID int64 `json:"gameId"`
}

func (p CommentsListParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
	)
}

type CommentsListResult struct {
	Comments []*critiqapi.Comment `json:"comments"`
}

// @name Comments.Submit
type CommentsSubmitParams struct {
	GameID  int64  `json:"gameId"`
	Comment string `json:"comment"`
}

func (p CommentsSubmitParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
		validation.Field(&p.Comment, validation.Required),
	)
}

type CommentsSubmitResult struct{}

// @name Library.Load
type LibraryLoadParams struct {
	Filters map[string]string `json:"filters"`
	Page    int64             `json:"page"`
	Limit   int64             `json:"limit"`
}

func (p LibraryLoadParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Min(0)),
		validation.Field(&p.Limit, validation.Min(0)),
	)
}

type LibraryLoadResult struct {
	Collection *CollectionState `json:"collection"`
}

// @name Library.Get
type LibraryGetParams struct {
	GameID int64 `json:"gameId"`
}

func (p LibraryGetParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
	)
}

type LibraryGetResult struct {
	Game *critiqapi.Game `json:"game"`
}

// GamePayloadParams is shared by Library.Create and Library.Update.
// Thumbnail bytes travel base64-encoded, as JSON byte slices do.
type GamePayloadParams struct {
	Title       string  `json:"title"`
	Publisher   string  `json:"publisher"`
	ReleaseDate string  `json:"release_date"`
	Description string  `json:"description"`
	GenreIDs    []int64 `json:"genres"`

	Thumbnail     []byte `json:"thumbnail,omitempty"`
	ThumbnailName string `json:"thumbnailName,omitempty"`
}

func (p GamePayloadParams) payload() critiqapi.GamePayload {
	return critiqapi.GamePayload{
		Title:         p.Title,
		Publisher:     p.Publisher,
		ReleaseDate:   p.ReleaseDate,
		Description:   p.Description,
		GenreIDs:      p.GenreIDs,
		ThumbnailData: p.Thumbnail,
		ThumbnailName: p.ThumbnailName,
	}
}

// @name Library.Create
type LibraryCreateParams struct {
	GamePayloadParams
}

func (p LibraryCreateParams) Validate() error {
	return p.payload().Validate()
}

type LibraryCreateResult struct {
	Game *critiqapi.Game `json:"game"`
}

// @name Library.Update
type LibraryUpdateParams struct {
	GameID int64 `json:"gameId"`
	GamePayloadParams
}

func (p LibraryUpdateParams) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
	)
	if err != nil {
		return err
	}
	return p.payload().Validate()
}

type LibraryUpdateResult struct {
	Game *critiqapi.Game `json:"game"`
}

// @name Library.Delete
type LibraryDeleteParams struct {
	GameID int64 `json:"gameId"`
}

func (p LibraryDeleteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GameID, validation.Required),
	)
}

type LibraryDeleteResult struct{}
