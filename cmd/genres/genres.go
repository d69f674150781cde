package genres

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/salon"
)

func Register(ctx *salon.Context) {
	cmd := ctx.App.Command("genres", "List all known game genres.")
	ctx.Register(cmd, do)
}

func do(ctx *salon.Context) {
	ctx.Must(Do(ctx))
}

func Do(ctx *salon.Context) error {
	s, err := ctx.NewSyncer()
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.RefreshGenres()
	if err != nil {
		return errors.WithStack(err)
	}

	data := s.Store().State().Genres.Data
	comm.ResultOrPrint(data, func() {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Name"})
		for _, g := range data {
			table.Append([]string{fmt.Sprintf("%d", g.ID), g.Name})
		}
		table.Render()
	})
	return nil
}
