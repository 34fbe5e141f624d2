package config

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/repository"
)

func TestLoggerValidate(t *testing.T) {
	gt.NoError(t, (&Logger{Level: "debug", Format: "json"}).Validate())
	gt.NoError(t, (&Logger{Level: "info", Format: ""}).Validate())
	gt.Error(t, (&Logger{Level: "verbose", Format: "json"}).Validate())
	gt.Error(t, (&Logger{Level: "info", Format: "xml"}).Validate())

	logger, err := (&Logger{Level: "warn", Format: "json"}).Configure()
	gt.NoError(t, err)
	gt.NotNil(t, logger)
}

func TestCatalogConfigure(t *testing.T) {
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(os.Stdout, nil)))

	t.Run("File catalog by default", func(t *testing.T) {
		cfg := Catalog{DataDir: t.TempDir()}
		repo, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		defer repo.Close()

		_, ok := repo.(*repository.File)
		gt.True(t, ok)
	})

	t.Run("Data dir required", func(t *testing.T) {
		cfg := Catalog{}
		_, err := cfg.Configure(ctx)
		gt.Error(t, err)
	})
}

func TestSlackConfigureOptional(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gt.Nil(t, (&Slack{OAuthToken: "xoxb-test"}).ConfigureOptional(logger))
	gt.Nil(t, (&Slack{ChannelID: "C123"}).ConfigureOptional(logger))
	gt.NotNil(t, (&Slack{OAuthToken: "xoxb-test", ChannelID: "C123"}).ConfigureOptional(logger))
}

func TestServerHTTP(t *testing.T) {
	cfg := Server{Addr: ":9000", ImageDir: "img", ImageURLPrefix: "static/"}
	httpCfg := cfg.HTTP()
	gt.Equal(t, httpCfg.Addr, ":9000")
	gt.Equal(t, httpCfg.ImageDir, "img")
	gt.Equal(t, httpCfg.ImageURLPrefix, "/static")
}
