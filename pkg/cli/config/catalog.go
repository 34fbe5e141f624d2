package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Catalog holds configuration of the week content catalog store
type Catalog struct {
	DataDir    string
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory containing size_comparisons.json and milestones.json",
			Category:    "Catalog",
			Value:       "data",
			Sources:     cli.EnvVars("PREGTRACK_DATA_DIR"),
			Destination: &c.DataDir,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore. The catalog is read from Firestore instead of data-dir when set",
			Category:    "Catalog",
			Sources:     cli.EnvVars("PREGTRACK_FIRESTORE_PROJECT"),
			Destination: &c.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Catalog",
			Value:       "(default)",
			Sources:     cli.EnvVars("PREGTRACK_FIRESTORE_DATABASE"),
			Destination: &c.DatabaseID,
		},
	}
}

// Configure creates and returns a catalog repository
func (c *Catalog) Configure(ctx context.Context) (interfaces.CatalogRepository, error) {
	logger := ctxlog.From(ctx)

	if !c.IsFirestoreConfigured() {
		if c.DataDir == "" {
			return nil, goerr.New("data directory is required when firestore is not configured")
		}
		logger.Debug("Using file catalog", slog.String("dir", c.DataDir))
		return repository.NewFile(c.DataDir), nil
	}

	repo, err := repository.NewFirestore(ctx, c.ProjectID, c.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", c.ProjectID),
			goerr.V("database", c.DatabaseID),
		)
	}

	return repo, nil
}

// IsFirestoreConfigured checks if Firestore is selected as catalog store
func (c *Catalog) IsFirestoreConfigured() bool {
	return c.ProjectID != ""
}

// LogValue returns structured log value
func (c Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("data_dir", c.DataDir),
		slog.String("firestore_project", c.ProjectID),
		slog.String("firestore_database", c.DatabaseID),
	)
}
