// The daemon command starts a criticd instance: a JSON-RPC 2.0
// server over TCP or stdio that view layers (desktop shells, editor
// plugins) drive instead of shelling out to individual commands.
package daemon

import (
	"context"
	"io"
	"net"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/criticd"
	"github.com/critiqhq/critic/salon"
)

var args = struct {
	transport *string
	keepAlive *bool
}{}

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("daemon", "Start a criticd instance").Hidden()
	args.transport = cmd.Flag("transport", "Which transport to use").Default("tcp").Enum("tcp", "stdio")
	args.keepAlive = cmd.Flag("keep-alive", "Accept multiple TCP connections, stay up until killed").Bool()
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	if !comm.JsonEnabled() {
		comm.Notice("Hello from critic daemon", []string{
			"We can't do anything interesting without --json, bailing out",
		})
		os.Exit(1)
	}

	secret := generateSecret()
	ctx.Must(Do(ctx, context.Background(), secret, *args.transport, *args.keepAlive))
}

func generateSecret() string {
	var res string
	for rounds := 4; rounds > 0; rounds-- {
		res += uuid.New().String()
	}
	return res
}

func Do(ctx *salon.Context, parentCtx context.Context, secret string, transport string, keepAlive bool) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	router := criticd.NewRouter(secret, s)
	router.Version = ctx.Version
	router.VersionString = ctx.VersionString
	criticd.RegisterHandlers(router)

	server := criticd.NewServer(secret)

	if transport == "stdio" {
		comm.Object("criticd/listen-notification", map[string]interface{}{
			"secret": secret,
			"stdio":  true,
		})
		return errors.WithStack(server.ServeStdio(parentCtx, router, stdinout{}))
	}

	listener, err := net.Listen("tcp", "127.0.0.1:")
	if err != nil {
		return errors.WithStack(err)
	}

	comm.Object("criticd/listen-notification", map[string]interface{}{
		"secret": secret,
		"tcp": map[string]interface{}{
			"address": listener.Addr().String(),
		},
	})

	err = server.ServeTCP(parentCtx, criticd.ServeTCPParams{
		Router:    router,
		Listener:  listener,
		KeepAlive: keepAlive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stdinout adapts the process's stdin/stdout to one duplex stream
type stdinout struct{}

var _ io.ReadWriteCloser = stdinout{}

func (stdinout) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdinout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdinout) Close() error {
	return nil
}
