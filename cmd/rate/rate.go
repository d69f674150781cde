package rate

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	gameID *int64
	rating *int64
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("rate", "Rate a game from 1 to 5.")
	args.gameID = cmd.Arg("game", "Numeric ID of the game").Required().Int64()
	args.rating = cmd.Arg("rating", "Your score, 1 to 5").Required().Int64()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.gameID, *args.rating))
}

func Do(ctx *salon.Context, gameID int64, rating int64) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.SubmitRating(gameID, rating)
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Statf("Rated game %d: %d/5", gameID, rating)
	comm.Result(map[string]string{"status": "success"})
	return nil
}
