// The show command prints one game's details, along with its ratings
// summary and latest comments.
package show

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	gameID   *int64
	comments *int64
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("show", "Show a game's details, ratings and comments.")
	args.gameID = cmd.Arg("game", "Numeric ID of the game").Required().Int64()
	args.comments = cmd.Flag("comments", "How many comments to print").Default("5").Int64()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.gameID, *args.comments))
}

func Do(ctx *salon.Context, gameID int64, commentCount int64) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.LoadGameDetails(gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	// ratings and comments are best-effort embellishments: a failure
	// there shouldn't hide the game itself
	if err := s.LoadRatings(gameID); err != nil {
		comm.Debugf("Could not fetch ratings: %s", err.Error())
	}
	if err := s.LoadComments(gameID); err != nil {
		comm.Debugf("Could not fetch comments: %s", err.Error())
	}

	st := s.Store().State()
	game := st.Details.Game

	comm.ResultOrPrint(map[string]interface{}{
		"game":     game,
		"ratings":  st.Ratings.Items,
		"comments": st.Comments.Items,
	}, func() {
		printGame(game, st.Ratings.Items)

		if st.Session.Authenticated && st.Session.User != nil {
			if mine := st.Ratings.ByUser(st.Session.User.ID); mine != nil {
				comm.Logf("You rated this game %d/5", mine.Rating)
			}
		}

		comments := st.Comments.Items
		if int64(len(comments)) > commentCount {
			comments = comments[:commentCount]
		}
		for _, c := range comments {
			comm.Logf("  %s: %s", c.AuthorName, c.Text)
		}
	})
	return nil
}

func printGame(game *critiqapi.Game, ratings []*critiqapi.Rating) {
	var genreNames []string
	for _, g := range game.Genres {
		genreNames = append(genreNames, g.Name)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{game.Title})
	table.Append([]string{fmt.Sprintf("Publisher: %s", game.Publisher)})
	table.Append([]string{fmt.Sprintf("Released: %s", game.ReleaseDate)})
	if len(genreNames) > 0 {
		table.Append([]string{fmt.Sprintf("Genres: %s", strings.Join(genreNames, ", "))})
	}
	table.Append([]string{fmt.Sprintf("Rating: %.1f/5 (%d ratings)", game.AvgUserRating, len(ratings))})
	table.Append([]string{fmt.Sprintf("Views: %d", game.ViewCount)})
	if game.Description != "" {
		table.Append([]string{game.Description})
	}
	table.Render()
}
