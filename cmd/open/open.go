package open

import (
	"fmt"

	goopen "github.com/skratchdot/open-golang/open"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	gameID *int64
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("open", "Open a game's page in your browser.")
	args.gameID = cmd.Arg("game", "Numeric ID of the game").Required().Int64()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.gameID))
}

func Do(ctx *salon.Context, gameID int64) error {
	url := fmt.Sprintf("%s/games/%d", ctx.WebAddress(), gameID)
	comm.Opf("Opening %s", url)
	return goopen.Start(url)
}
