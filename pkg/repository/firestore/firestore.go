package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
)

const defaultCollection = "session"

type Option func(*sessionRepository)

// WithCollection stores sessions in another collection, e.g. to isolate
// integration test runs.
func WithCollection(name string) Option {
	return func(r *sessionRepository) {
		r.collection = name
	}
}

// New creates a Firestore-based session repository. An empty databaseID selects
// the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.SessionRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &sessionRepository{
		client:     client,
		collection: defaultCollection,
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}
