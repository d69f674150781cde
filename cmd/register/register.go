package register

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	name     *string
	email    *string
	password *string
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("register", "Create a critiq account and log into it.")
	args.name = cmd.Flag("name", "Display name").Required().String()
	args.email = cmd.Flag("email", "Account email address").Required().String()
	args.password = cmd.Flag("password", "Account password (8 characters minimum)").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx, *args.name, *args.email, *args.password))
}

func Do(ctx *salon.Context, name string, email string, password string) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.Register(name, email, password)
	if err != nil {
		return errors.WithStack(err)
	}

	user := s.Store().State().Session.User
	if user != nil {
		comm.Statf("Welcome, %s! You're now logged in.", user.Name)
	}
	comm.Result(map[string]string{"status": "success"})
	return nil
}
