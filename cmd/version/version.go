package version

import (
	"log"
	"time"

	"github.com/critiqhq/critic/buildinfo"
	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("version", "Prints the current version of critic")
	ctx.Register(cmd, do)
}

type VersionData struct {
	Version       string     `json:"version"`
	BuiltAt       *time.Time `json:"builtAt"`
	Commit        string     `json:"commit"`
	VersionString string     `json:"versionString"`
}

func do(ctx *salon.Context) {
	if ctx.JSON {
		comm.Result(VersionData{
			Version:       buildinfo.Version,
			BuiltAt:       buildinfo.BuildTime(),
			Commit:        buildinfo.Commit,
			VersionString: buildinfo.VersionString,
		})
	} else {
		log.Println(buildinfo.VersionString)
	}
}
