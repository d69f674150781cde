package whoami

import (
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("whoami", "Show which account is logged in, if any.")
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx))
}

// Do reports on the saved session without touching the network. A
// stale token is only discovered by the first request that uses it.
func Do(ctx *salon.Context) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	sess := s.Store().State().Session
	if !sess.Authenticated {
		comm.Logf("Not logged in. Use `critic login` to get started.")
		comm.Result(map[string]interface{}{"authenticated": false})
		return nil
	}

	if sess.User != nil {
		comm.Statf("Logged in as %s (%s)", sess.User.Name, sess.User.Email)
	} else {
		// token came from the environment, we know nothing else
		comm.Statf("Logged in via %s", "CRITIC_API_KEY")
	}
	comm.Result(map[string]interface{}{
		"authenticated": true,
		"user":          sess.User,
	})
	return nil
}
