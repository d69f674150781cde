package logout

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("logout", "End the current session and wipe it from disk.")
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx))
}

func Do(ctx *salon.Context) error {
	if !ctx.HasSavedSession() {
		comm.Logf("No saved session at %s, you're already logged out!", ctx.Identity)
		comm.Result(map[string]string{"status": "success"})
		return nil
	}

	comm.Notice("Important note", []string{
		"Logging out will wipe the session saved on this computer.",
		"Your account and listings stay on the server, untouched.",
	})

	if !comm.YesNo("Do you want to log out?") {
		comm.Logf("Okay, not logging out. Bye!")
		return nil
	}

	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	// the server call is best-effort: local logout succeeds even when
	// the server is unreachable
	err = s.Logout()
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Statf("You've successfully logged out.")
	comm.Result(map[string]string{"status": "success"})
	return nil
}
