package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	weeksCollection = "weeks"
)

// weekDocument is one week of catalog content. The document ID is the week number.
type weekDocument struct {
	SizeComparison string   `firestore:"size_comparison,omitempty"`
	Milestones     []string `firestore:"milestones,omitempty"`
}

// Firestore implements CatalogRepository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.CatalogRepository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or credentials
	_, err = client.Collection(weeksCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// LoadCatalog reads every week document
func (f *Firestore) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	logger := ctxlog.From(ctx)

	iter := f.client.Collection(weeksCollection).Documents(ctx)
	defer iter.Stop()

	sizes := make(map[types.Week]string)
	milestones := make(map[types.Week][]string)
	count := 0

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate week documents")
		}

		week, err := types.ParseWeek(doc.Ref.ID)
		if err != nil {
			logger.Warn("Skipping week document with non-numeric ID", "id", doc.Ref.ID)
			continue
		}

		var d weekDocument
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode week document", goerr.V("week", week))
		}

		if d.SizeComparison != "" {
			sizes[week] = d.SizeComparison
		}
		if d.Milestones != nil {
			milestones[week] = d.Milestones
		}
		count++
	}

	if count == 0 {
		return nil, goerr.Wrap(model.ErrCatalogNotFound, "no week documents in firestore",
			goerr.V("collection", weeksCollection))
	}

	return model.NewCatalog(sizes, milestones), nil
}

// SaveCatalog writes one document per week with a BulkWriter
func (f *Firestore) SaveCatalog(ctx context.Context, catalog *model.Catalog) error {
	if catalog == nil {
		return goerr.New("catalog is nil")
	}

	bw := f.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob

	for _, week := range catalog.Weeks() {
		d := weekDocument{}
		d.SizeComparison, _ = catalog.SizeComparison(week)
		d.Milestones, _ = catalog.Milestones(week)

		job, err := bw.Set(f.client.Collection(weeksCollection).Doc(week.String()), d)
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue week document", goerr.V("week", week))
		}
		jobs = append(jobs, job)
	}

	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to save week document to firestore")
		}
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
