// The library command manages the logged-in user's own listings:
// list them, add new ones, edit or remove existing ones.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/salon"
)

type payloadArgs struct {
	title       *string
	publisher   *string
	releaseDate *string
	description *string
	genres      *[]int64
	thumbnail   *string
}

func registerPayloadFlags(cmd *kingpin.CmdClause, required bool) *payloadArgs {
	pa := &payloadArgs{}
	title := cmd.Flag("title", "Game title")
	publisher := cmd.Flag("publisher", "Publisher name")
	if required {
		title = title.Required()
		publisher = publisher.Required()
	}
	pa.title = title.String()
	pa.publisher = publisher.String()
	pa.releaseDate = cmd.Flag("release-date", "Release date (YYYY-MM-DD)").String()
	pa.description = cmd.Flag("description", "Game description").String()
	pa.genres = cmd.Flag("genre", "Genre ID, repeatable").Int64List()
	pa.thumbnail = cmd.Flag("thumbnail", "Path to a thumbnail image").String()
	return pa
}

func (pa *payloadArgs) payload() (critiqapi.GamePayload, error) {
	payload := critiqapi.GamePayload{
		Title:       *pa.title,
		Publisher:   *pa.publisher,
		ReleaseDate: *pa.releaseDate,
		Description: *pa.description,
		GenreIDs:    *pa.genres,
	}

	if *pa.thumbnail != "" {
		data, err := os.ReadFile(*pa.thumbnail)
		if err != nil {
			return payload, errors.Wrap(err, "reading thumbnail file")
		}
		payload.ThumbnailData = data
		payload.ThumbnailName = filepath.Base(*pa.thumbnail)
	}

	return payload, nil
}

var lsArgs = struct {
	search *string
	page   *int64
	limit  *int64
}{}

var addArgs *payloadArgs

var editArgs = struct {
	gameID  *int64
	payload *payloadArgs
}{}

var rmArgs = struct {
	gameID *int64
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("library", "Manage your own game listings.")

	ls := cmd.Command("ls", "List your own game listings.").Default()
	lsArgs.search = ls.Flag("search", "Only list games whose title matches this").String()
	lsArgs.page = ls.Flag("page", "Which page to fetch").Default("1").Int64()
	lsArgs.limit = ls.Flag("limit", "How many games per page").Default("20").Int64()
	ctx.Register(ls, doLs)

	add := cmd.Command("add", "Add a new game listing.")
	addArgs = registerPayloadFlags(add, true)
	ctx.Register(add, doAdd)

	edit := cmd.Command("edit", "Edit one of your game listings.")
	editArgs.gameID = edit.Arg("game", "Numeric ID of the game").Required().Int64()
	editArgs.payload = registerPayloadFlags(edit, false)
	ctx.Register(edit, doEdit)

	rm := cmd.Command("rm", "Remove one of your game listings.")
	rmArgs.gameID = rm.Arg("game", "Numeric ID of the game").Required().Int64()
	ctx.Register(rm, doRm)
}

func doLs(ctx *salon.Context) {
	ctx.Must(Ls(ctx, *lsArgs.search, *lsArgs.page, *lsArgs.limit))
}

func Ls(ctx *salon.Context, search string, page int64, limit int64) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	filters := make(map[string]string)
	if search != "" {
		filters["search"] = search
	}

	err = s.LoadLibrary(filters, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	col := s.Store().State().Library.Games
	comm.Statf("You have %d listings here (page %d of %d)", len(col.Items), col.CurrentPage, col.TotalPages)

	comm.ResultOrPrint(col.Items, func() {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Publisher", "Genres", "Rating", "Views"})
		for _, g := range col.Items {
			var genreNames []string
			for _, genre := range g.Genres {
				genreNames = append(genreNames, genre.Name)
			}
			table.Append([]string{
				fmt.Sprintf("%d", g.ID),
				g.Title,
				g.Publisher,
				strings.Join(genreNames, ", "),
				fmt.Sprintf("%.1f", g.AvgUserRating),
				fmt.Sprintf("%d", g.ViewCount),
			})
		}
		table.Render()
	})
	return nil
}

func doAdd(ctx *salon.Context) {
	ctx.Must(Add(ctx, addArgs))
}

func Add(ctx *salon.Context, pa *payloadArgs) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	payload, err := pa.payload()
	if err != nil {
		return err
	}

	comm.Opf("Creating %s...", payload.Title)
	game, err := s.CreateGame(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Statf("Created %s (id %d)", game.Title, game.ID)
	comm.Result(game)
	return nil
}

func doEdit(ctx *salon.Context) {
	ctx.Must(Edit(ctx, *editArgs.gameID, editArgs.payload))
}

// Edit fetches the existing listing first: flags the user didn't pass
// keep their current value, the server always gets a full payload.
func Edit(ctx *salon.Context, gameID int64, pa *payloadArgs) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.LoadMyGame(gameID)
	if err != nil {
		return errors.WithStack(err)
	}
	current := s.Store().State().Library.Selected

	payload, err := pa.payload()
	if err != nil {
		return err
	}
	if payload.Title == "" {
		payload.Title = current.Title
	}
	if payload.Publisher == "" {
		payload.Publisher = current.Publisher
	}
	if payload.ReleaseDate == "" {
		payload.ReleaseDate = current.ReleaseDate
	}
	if payload.Description == "" {
		payload.Description = current.Description
	}
	if len(payload.GenreIDs) == 0 {
		for _, g := range current.Genres {
			payload.GenreIDs = append(payload.GenreIDs, g.ID)
		}
	}

	game, err := s.UpdateGame(gameID, payload)
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Statf("Updated %s (id %d)", game.Title, game.ID)
	comm.Result(game)
	return nil
}

func doRm(ctx *salon.Context) {
	ctx.Must(Rm(ctx, *rmArgs.gameID))
}

func Rm(ctx *salon.Context, gameID int64) error {
	if !comm.YesNo(fmt.Sprintf("Remove listing %d for good?", gameID)) {
		comm.Logf("Okay, keeping it.")
		return nil
	}

	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.DeleteGame(gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Statf("Removed listing %d", gameID)
	comm.Result(map[string]string{"status": "success"})
	return nil
}
