package criticd

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/critiqhq/critic/syncer"
)

// RegisterHandlers binds every daemon method to the syncer. Scroll
// sentinels are shared across connections: the whole daemon holds one
// catalog and one library, so all clients scroll the same lists.
func RegisterHandlers(router *Router) {
	catalogScroll := syncer.NewScrollSentinel(router.syncer, syncer.TargetCatalog, 0)
	libraryScroll := syncer.NewScrollSentinel(router.syncer, syncer.TargetLibrary, 0)

	router.Register("Meta.Authenticate", func(rc *RequestContext) (interface{}, error) {
		var params MetaAuthenticateParams
		return withParams(rc, &params, func() (interface{}, error) {
			if subtle.ConstantTimeCompare([]byte(params.Secret), []byte(router.secret)) != 1 {
				return nil, errors.WithStack(CodeSecretRequired)
			}
			router.markAuthenticated(rc.Conn)
			return &MetaAuthenticateResult{OK: true}, nil
		})
	})

	router.Register("Version.Get", func(rc *RequestContext) (interface{}, error) {
		var params VersionGetParams
		return withParams(rc, &params, func() (interface{}, error) {
			return &VersionGetResult{
				Version:       router.Version,
				VersionString: router.VersionString,
			}, nil
		})
	})

	router.Register("Session.Login", func(rc *RequestContext) (interface{}, error) {
		var params SessionLoginParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.Login(params.Email, params.Password)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &SessionLoginResult{
				User: rc.Syncer.Store().State().Session.User,
			}, nil
		})
	})

	router.Register("Session.Register", func(rc *RequestContext) (interface{}, error) {
		var params SessionRegisterParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.Register(params.Name, params.Email, params.Password)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &SessionRegisterResult{
				User: rc.Syncer.Store().State().Session.User,
			}, nil
		})
	})

	router.Register("Session.Logout", func(rc *RequestContext) (interface{}, error) {
		var params SessionLogoutParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.Logout()
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &SessionLogoutResult{}, nil
		})
	})

	router.Register("Session.Current", func(rc *RequestContext) (interface{}, error) {
		var params SessionCurrentParams
		return withParams(rc, &params, func() (interface{}, error) {
			sess := rc.Syncer.Store().State().Session
			return &SessionCurrentResult{
				User:          sess.User,
				Authenticated: sess.Authenticated,
			}, nil
		})
	})

	router.Register("Catalog.Load", func(rc *RequestContext) (interface{}, error) {
		var params CatalogLoadParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.LoadCatalog(params.Filters, params.Page, params.Limit)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &CatalogLoadResult{
				Collection: collectionState(rc.Syncer.Store().State().Catalog),
			}, nil
		})
	})

	router.Register("Catalog.Scroll", func(rc *RequestContext) (interface{}, error) {
		var params CatalogScrollParams
		return withParams(rc, &params, func() (interface{}, error) {
			return &CatalogScrollResult{Fired: catalogScroll.Check()}, nil
		})
	})

	router.Register("Library.Scroll", func(rc *RequestContext) (interface{}, error) {
		var params CatalogScrollParams
		return withParams(rc, &params, func() (interface{}, error) {
			return &CatalogScrollResult{Fired: libraryScroll.Check()}, nil
		})
	})

	router.Register("Genres.List", func(rc *RequestContext) (interface{}, error) {
		var params GenresListParams
		return withParams(rc, &params, func() (interface{}, error) {
			var err error
			if params.Fresh {
				err = rc.Syncer.RefreshGenres()
			} else {
				err = rc.Syncer.LoadGenres()
			}
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &GenresListResult{
				Genres: rc.Syncer.Store().State().Genres.Data,
			}, nil
		})
	})

	router.Register("Game.Get", func(rc *RequestContext) (interface{}, error) {
		var params GameGetParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.LoadGameDetails(params.GameID)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &GameGetResult{
				Game: rc.Syncer.Store().State().Details.Game,
			}, nil
		})
	})

	router.Register("Ratings.List", func(rc *RequestContext) (interface{}, error) {
		var params RatingsListParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.LoadRatings(params.GameID)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			st := rc.Syncer.Store().State()
			res := &RatingsListResult{
				Ratings: st.Ratings.Items,
			}
			if st.Session.Authenticated && st.Session.User != nil {
				res.YourRating = st.Ratings.ByUser(st.Session.User.ID)
			}
			return res, nil
		})
	})

	router.Register("Ratings.Submit", func(rc *RequestContext) (interface{}, error) {
		var params RatingsSubmitParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			err = rc.Syncer.SubmitRating(params.GameID, params.Rating)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &RatingsSubmitResult{}, nil
		})
	})

	router.Register("Comments.List", func(rc *RequestContext) (interface{}, error) {
		var params CommentsListParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := rc.Syncer.LoadComments(params.GameID)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &CommentsListResult{
				Comments: rc.Syncer.Store().State().Comments.Items,
			}, nil
		})
	})

	router.Register("Comments.Submit", func(rc *RequestContext) (interface{}, error) {
		var params CommentsSubmitParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			err = rc.Syncer.SubmitComment(params.GameID, params.Comment)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &CommentsSubmitResult{}, nil
		})
	})

	router.Register("Library.Load", func(rc *RequestContext) (interface{}, error) {
		var params LibraryLoadParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			err = rc.Syncer.LoadLibrary(params.Filters, params.Page, params.Limit)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &LibraryLoadResult{
				Collection: collectionState(rc.Syncer.Store().State().Library.Games),
			}, nil
		})
	})

	router.Register("Library.Get", func(rc *RequestContext) (interface{}, error) {
		var params LibraryGetParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			err = rc.Syncer.LoadMyGame(params.GameID)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &LibraryGetResult{
				Game: rc.Syncer.Store().State().Library.Selected,
			}, nil
		})
	})

	router.Register("Library.Create", func(rc *RequestContext) (interface{}, error) {
		var params LibraryCreateParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			game, err := rc.Syncer.CreateGame(params.payload())
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &LibraryCreateResult{Game: game}, nil
		})
	})

	router.Register("Library.Update", func(rc *RequestContext) (interface{}, error) {
		var params LibraryUpdateParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			game, err := rc.Syncer.UpdateGame(params.GameID, params.payload())
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &LibraryUpdateResult{Game: game}, nil
		})
	})

	router.Register("Library.Delete", func(rc *RequestContext) (interface{}, error) {
		var params LibraryDeleteParams
		return withParams(rc, &params, func() (interface{}, error) {
			err := requireSession(rc)
			if err != nil {
				return nil, err
			}
			err = rc.Syncer.DeleteGame(params.GameID)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return &LibraryDeleteResult{}, nil
		})
	})
}

func requireSession(rc *RequestContext) error {
	if !rc.Syncer.Store().State().Session.Authenticated {
		return errors.WithStack(CodeNotAuthenticated)
	}
	return nil
}
