package main

import (
	"github.com/critiqhq/critic/cmd/comment"
	"github.com/critiqhq/critic/cmd/daemon"
	"github.com/critiqhq/critic/cmd/games"
	"github.com/critiqhq/critic/cmd/genres"
	"github.com/critiqhq/critic/cmd/library"
	"github.com/critiqhq/critic/cmd/login"
	"github.com/critiqhq/critic/cmd/logout"
	"github.com/critiqhq/critic/cmd/open"
	"github.com/critiqhq/critic/cmd/rate"
	"github.com/critiqhq/critic/cmd/register"
	"github.com/critiqhq/critic/cmd/show"
	"github.com/critiqhq/critic/cmd/version"
	"github.com/critiqhq/critic/cmd/whoami"
	"github.com/critiqhq/critic/salon"
)

// Each of these specify their own arguments and flags in
// their own package.
func registerCommands(ctx *salon.Context) {
	// account

	login.Register(ctx)
	register.Register(ctx)
	logout.Register(ctx)
	whoami.Register(ctx)

	// browsing

	games.Register(ctx)
	show.Register(ctx)
	genres.Register(ctx)
	open.Register(ctx)

	// interacting

	rate.Register(ctx)
	comment.Register(ctx)

	// publishing

	library.Register(ctx)

	// plumbing

	version.Register(ctx)

	// hidden commands

	daemon.Register(ctx)
}
