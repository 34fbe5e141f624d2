package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/cli/config"
	controller "github.com/secmon-lab/pregtrack/pkg/controller/http"
	"github.com/secmon-lab/pregtrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		trackerCfg config.Tracker
		catalogCfg config.Catalog
		serverCfg  config.Server
		slackCfg   config.Slack
	)

	flags := joinFlags(
		trackerCfg.Flags(),
		catalogCfg.Flags(),
		serverCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server serving the status card",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting pregtrack server",
				slog.Any("tracker", trackerCfg),
				slog.Any("catalog", catalogCfg),
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
			)

			settings, err := trackerCfg.Configure(c)
			if err != nil {
				return configError(ctx, "Invalid tracker configuration", err)
			}

			repo, err := catalogCfg.Configure(ctx)
			if err != nil {
				return configError(ctx, "Invalid catalog configuration", err)
			}
			defer repo.Close()

			catalog := usecase.LoadCatalog(ctx, repo)

			opts := []usecase.TrackerOption{
				usecase.WithDisplay(settings.Display),
			}
			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			tracker, err := usecase.NewTracker(settings.Pregnancy, catalog, serverCfg.Assets(), opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create tracker")
			}

			scheduler, err := usecase.NewScheduler("refresh", settings.RefreshInterval, tracker.RefreshTask())
			if err != nil {
				return goerr.Wrap(err, "failed to create scheduler")
			}

			server, err := controller.NewServer(ctx, serverCfg.HTTP(), tracker)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			runCtx, stop := context.WithCancel(ctx)
			defer stop()

			schedulerDone := make(chan struct{})
			go func() {
				defer close(schedulerDone)
				scheduler.Run(runCtx)
			}()

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			stop()
			<-schedulerDone

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
