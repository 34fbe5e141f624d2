package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/cli/config"
	"github.com/secmon-lab/pregtrack/pkg/service/card"
	"github.com/secmon-lab/pregtrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStatus() *cli.Command {
	var (
		trackerCfg config.Tracker
		catalogCfg config.Catalog
		serverCfg  config.Server
		asJSON     bool
	)

	flags := joinFlags(
		trackerCfg.Flags(),
		catalogCfg.Flags(),
		serverCfg.ImageFlags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print the snapshot as JSON instead of the card",
				Destination: &asJSON,
			},
		},
	)

	return &cli.Command{
		Name:  "status",
		Usage: "Print the current status card",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			settings, err := trackerCfg.Configure(c)
			if err != nil {
				return configError(ctx, "Invalid tracker configuration", err)
			}

			repo, err := catalogCfg.Configure(ctx)
			if err != nil {
				return configError(ctx, "Invalid catalog configuration", err)
			}
			defer repo.Close()

			tracker, err := usecase.NewTracker(settings.Pregnancy,
				usecase.LoadCatalog(ctx, repo),
				serverCfg.Assets(),
				usecase.WithDisplay(settings.Display),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create tracker")
			}

			snapshot := tracker.Refresh(ctx)
			w := c.Root().Writer

			if asJSON {
				return printJSON(w, snapshot.View())
			}

			if _, err := fmt.Fprintln(w, card.Render(snapshot)); err != nil {
				return goerr.Wrap(err, "failed to write card")
			}
			return nil
		},
	}
}
