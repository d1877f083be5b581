package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const batchSize = 500

type sessionRepository struct {
	client     *firestore.Client
	collection string
}

func (r *sessionRepository) PutSession(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "session ID is empty")
	}

	docRef := r.client.Collection(r.collection).Doc(session.ID.String())
	if _, err := docRef.Set(ctx, session); err != nil {
		return goerr.Wrap(err, "failed to put session", goerr.V("sessionID", session.ID))
	}
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	if id == "" {
		return nil, goerr.Wrap(repository.ErrNotFound, "session ID is empty")
	}

	snap, err := r.client.Collection(r.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "session not found", goerr.V("sessionID", id))
		}
		return nil, goerr.Wrap(err, "failed to get session", goerr.V("sessionID", id))
	}

	var session model.Session
	if err := snap.DataTo(&session); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session", goerr.V("sessionID", id))
	}
	return &session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id types.SessionID) error {
	if id == "" {
		return nil
	}

	if _, err := r.client.Collection(r.collection).Doc(id.String()).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to delete session", goerr.V("sessionID", id))
	}
	return nil
}

// DeleteExpiredSessions deletes in batches of batchSize documents.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) ([]types.SessionID, error) {
	iter := r.client.Collection(r.collection).Where("expires_at", "<=", now).Documents(ctx)
	defer iter.Stop()

	var (
		deleted []types.SessionID
		refs    []*firestore.DocumentRef
	)

	flush := func() error {
		if len(refs) == 0 {
			return nil
		}
		batch := r.client.Batch()
		for _, ref := range refs {
			batch.Delete(ref)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete expired sessions", goerr.V("count", len(refs)))
		}
		refs = refs[:0]
		return nil
	}

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate expired sessions")
		}

		refs = append(refs, snap.Ref)
		deleted = append(deleted, types.SessionID(snap.Ref.ID))
		if len(refs) >= batchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return deleted, nil
}
