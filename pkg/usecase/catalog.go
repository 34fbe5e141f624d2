package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/utils/apperr"
)

// LoadCatalog loads the catalog from repo. When it is missing or malformed a
// placeholder catalog is returned and written back to repo so that the next
// start finds valid data. It never fails.
func LoadCatalog(ctx context.Context, repo interfaces.CatalogRepository) *model.Catalog {
	logger := ctxlog.From(ctx)

	catalog, err := repo.LoadCatalog(ctx)
	if err == nil {
		logger.Info("Pregnancy data loaded successfully", slog.Int("weeks", len(catalog.Weeks())))
		return catalog
	}

	if errors.Is(err, model.ErrCatalogNotFound) {
		logger.Error("Pregnancy data not found, creating placeholder data", slog.Any("error", err))
	} else {
		logger.Error("Error loading pregnancy data, creating placeholder data", slog.Any("error", err))
	}

	placeholder := model.NewPlaceholderCatalog()
	if err := repo.SaveCatalog(ctx, placeholder); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to persist placeholder catalog"))
		return placeholder
	}

	logger.Info("Placeholder data created. Please update with actual pregnancy data.")
	return placeholder
}
