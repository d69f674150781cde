package comment

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	gameID *int64
	text   *string
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("comment", "Leave a comment on a game.")
	args.gameID = cmd.Arg("game", "Numeric ID of the game").Required().Int64()
	args.text = cmd.Arg("text", "The comment to post").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.gameID, *args.text))
}

func Do(ctx *salon.Context, gameID int64, text string) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.SubmitComment(gameID, text)
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Statf("Comment posted on game %d", gameID)
	comm.Result(map[string]string{"status": "success"})
	return nil
}
