package login

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	email    *string
	password *string
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("login", "Connect critic to your critiq account and save the session locally.")
	args.email = cmd.Flag("email", "Account email address").Required().String()
	args.password = cmd.Flag("password", "Account password").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.email, *args.password))
}

func Do(ctx *salon.Context, email string, password string) error {
	if ctx.HasSavedSession() {
		comm.Logf("You already have a saved session.")
		comm.Logf("If you want to log in as another account, use the `critic logout` command first, or specify a different session path with the `-i` flag.")
	}

	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.Login(email, password)
	if err != nil {
		return errors.WithStack(err)
	}

	user := s.Store().State().Session.User
	if user != nil {
		comm.Statf("Logged in as %s (%s)", user.Name, user.Email)
	}
	comm.Result(map[string]string{"status": "success"})
	return nil
}
