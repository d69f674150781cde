// Package salon carries the shared context for CLI commands: HTTP
// client, server addresses, identity path, and the command registry.
package salon

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/critiqapi"
	"github.com/itchio/httpkit/timeout"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type DoCommand func(ctx *Context)

type Context struct {
	App      *kingpin.Application
	Commands map[string]DoCommand

	// Identity is the path to the saved session file
	Identity string

	// String to include in our user-agent
	UserAgentAddition string

	// VersionString is the complete version string
	VersionString string

	// Version is just the version number, as a string
	Version string

	// Quiet silences all output
	Quiet bool

	// Verbose enables chatty output
	Verbose bool

	// JSON enables JSON-lines output
	JSON bool

	HTTPClient    *http.Client
	HTTPTransport *http.Transport

	// url of the critiq API server we're talking to
	apiAddress string
	// url of the critiq web instance we're talking to
	webAddress string
}

func NewContext(app *kingpin.Application) *Context {
	client := timeout.NewDefaultClient()
	originalTransport := client.Transport.(*http.Transport)

	ctx := &Context{
		App:           app,
		Commands:      make(map[string]DoCommand),
		HTTPClient:    client,
		HTTPTransport: originalTransport,
	}

	client.Transport = &UserAgentSetter{
		OriginalTransport: originalTransport,
		Context:           ctx,
	}

	return ctx
}

func (ctx *Context) Register(clause *kingpin.CmdClause, do DoCommand) {
	ctx.Commands[clause.FullCommand()] = do
}

func (ctx *Context) Must(err error) {
	if err != nil {
		if ctx.Verbose || ctx.JSON {
			comm.Dief("%+v", err)
		} else {
			comm.Dief("%s", err)
		}
	}
}

func (ctx *Context) UserAgent() string {
	res := fmt.Sprintf("critic/%s", ctx.VersionString)
	if ctx.UserAgentAddition != "" {
		res = fmt.Sprintf("%s %s", res, ctx.UserAgentAddition)
	}
	return res
}

// NewClient builds an API client for the given bearer token, sharing
// our HTTP client and user agent. An empty token is fine for public
// endpoints.
func (ctx *Context) NewClient(token string) *critiqapi.Client {
	client := critiqapi.ClientWithToken(token)
	client.HTTPClient = ctx.HTTPClient
	client.SetServer(ctx.APIAddress())
	client.UserAgent = ctx.UserAgent()
	return client
}

func (ctx *Context) WebAddress() string {
	return ctx.webAddress
}

func (ctx *Context) APIAddress() string {
	return ctx.apiAddress
}

// SetAddress derives both API and web addresses from one server
// address: api.X for requests, X for links shown to the user.
func (ctx *Context) SetAddress(address string) {
	var err error
	ctx.webAddress, err = stripAPISubdomain(address)
	ctx.Must(err)
	ctx.apiAddress, err = addAPISubdomain(address)
	ctx.Must(err)
}

// DefaultIdentityPath computes where the session file lives when the
// user doesn't override it
func DefaultIdentityPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// fall back to the working directory, better than nowhere
		return filepath.Join(".critic", "session.json")
	}
	return filepath.Join(configDir, "critic", "session.json")
}

func stripAPISubdomain(address string) (string, error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", errors.WithStack(err)
	}
	u.Host = strings.TrimPrefix(u.Host, "api.")
	return u.String(), nil
}

func addAPISubdomain(address string) (string, error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if !strings.HasPrefix(u.Host, "api.") {
		u.Host = "api." + u.Host
	}
	return u.String(), nil
}

//

type UserAgentSetter struct {
	OriginalTransport http.RoundTripper
	Context           *Context
}

var _ http.RoundTripper = (*UserAgentSetter)(nil)

func (uas *UserAgentSetter) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", uas.Context.UserAgent())
	return uas.OriginalTransport.RoundTrip(req)
}
