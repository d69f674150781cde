package main

import (
	"log"
	"os"
	"path/filepath"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/critiqhq/critic/buildinfo"
	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

var app = kingpin.New("critic", "Your very own critiq helper")

var appArgs = struct {
	json       *bool
	quiet      *bool
	verbose    *bool
	timestamps *bool
	panic      *bool
	assumeYes  *bool

	identity *string
	address  *string
	config   *string

	userAgentAddition *string
}{
	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("quiet", "Hide progress indicators & other extra info").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("panic", "Panic on error instead of just exiting").Hidden().Bool(),
	app.Flag("assume-yes", "Don't ask questions, just proceed (at your own risk!)").Bool(),

	app.Flag("identity", "Path to the saved session file").Short('i').Default(salon.DefaultIdentityPath()).String(),
	app.Flag("address", "critiq server to talk to").Short('a').Default("https://critiq.games").Hidden().String(),
	app.Flag("config", "Path to a TOML config file").Hidden().String(),

	app.Flag("user-agent", "Extra string to include in our user-agent").Hidden().String(),
}

func main() {
	app.HelpFlag.Short('h')
	app.Version(buildinfo.VersionString)
	app.VersionFlag.Short('V')
	app.Author("the critiq team")

	ctx := salon.NewContext(app)
	ctx.Version = buildinfo.Version
	ctx.VersionString = buildinfo.VersionString

	registerCommands(ctx)

	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		ctx.Must(err)
	}

	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	comm.Configure(*appArgs.quiet, *appArgs.verbose, *appArgs.json, *appArgs.panic, *appArgs.assumeYes)
	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	ctx.JSON = *appArgs.json
	ctx.UserAgentAddition = *appArgs.userAgentAddition

	cfg, err := salon.LoadConfig(configPath())
	ctx.Must(err)

	ctx.Identity = *appArgs.identity
	if ctx.Identity == salon.DefaultIdentityPath() && cfg.Identity != "" {
		ctx.Identity = cfg.Identity
	}

	address := *appArgs.address
	if envAddress := os.Getenv("CRITIC_API_SERVER"); envAddress != "" {
		address = envAddress
	} else if address == "https://critiq.games" && cfg.Address != "" {
		address = cfg.Address
	}
	ctx.SetAddress(address)

	if do, ok := ctx.Commands[cmd]; ok {
		do(ctx)
		return
	}

	comm.Dief("Unknown command %s", cmd)
}

func configPath() string {
	if *appArgs.config != "" {
		return *appArgs.config
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".criticrc.toml"
	}
	return filepath.Join(configDir, "critic", "config.toml")
}
