// The games command browses the public catalog: filtered, paginated,
// pretty-printed.
package games

import (
	"fmt"
	"os"
	"strings"

	"github.com/arbovm/levenshtein"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/salon"
	"github.com/critiqhq/critic/syncer"
)

var args = struct {
	search *string
	genre  *string
	pages  *int64
	limit  *int64
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("games", "Browse the game catalog.")
	args.search = cmd.Flag("search", "Only list games whose title matches this").String()
	args.genre = cmd.Flag("genre", "Only list games of this genre").String()
	args.pages = cmd.Flag("pages", "How many pages to fetch").Default("1").Int64()
	args.limit = cmd.Flag("limit", "How many games per page").Default("20").Int64()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.search, *args.genre, *args.pages, *args.limit))
}

func Do(ctx *salon.Context, search string, genre string, pages int64, limit int64) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	filters := make(map[string]string)
	if search != "" {
		filters["search"] = search
	}
	if genre != "" {
		resolved, err := resolveGenre(s, genre)
		if err != nil {
			return err
		}
		filters["genre"] = resolved.Name
	}

	comm.Opf("Fetching games...")

	// genre reference data rides along with the first page, like the
	// web catalog does; it's memoized so this is one round-trip at most
	if err := s.LoadGenres(); err != nil {
		comm.Debugf("Could not fetch genres: %s", err.Error())
	}

	if pages < 1 {
		pages = 1
	}
	for page := int64(1); page <= pages; page++ {
		err = s.LoadCatalog(filters, page, limit)
		if err != nil {
			return errors.WithStack(err)
		}

		col := s.Store().State().Catalog
		if col.CurrentPage >= col.TotalPages {
			break
		}
	}

	col := s.Store().State().Catalog
	comm.Statf("Showing %d games (page %d of %d)", len(col.Items), col.CurrentPage, col.TotalPages)

	comm.ResultOrPrint(col.Items, func() {
		printGames(col.Items)
	})
	return nil
}

// resolveGenre matches the given name against the server's genre
// list, case-insensitively. On a miss it suggests the closest known
// genre by edit distance.
func resolveGenre(s *syncer.Syncer, name string) (*critiqapi.Genre, error) {
	err := s.LoadGenres()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	genres := s.Store().State().Genres.Data
	var closest *critiqapi.Genre
	closestDistance := -1

	for _, g := range genres {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}

		distance := levenshtein.Distance(strings.ToLower(name), strings.ToLower(g.Name))
		if closestDistance == -1 || distance < closestDistance {
			closest = g
			closestDistance = distance
		}
	}

	if closest != nil {
		return nil, fmt.Errorf("unknown genre %q, did you mean %q?", name, closest.Name)
	}
	return nil, fmt.Errorf("unknown genre %q", name)
}

func printGames(games []*critiqapi.Game) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Publisher", "Genres", "Rating", "Views"})
	for _, g := range games {
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
}
