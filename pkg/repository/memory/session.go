package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func copySession(s *model.Session) *model.Session {
	c := *s
	return &c
}

func (r *sessionRepository) PutSession(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "session ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID.String()] = copySession(session)
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id.String()]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "session not found", goerr.V("sessionID", id))
	}
	return copySession(s), nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id.String())
	return nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) ([]types.SessionID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted []types.SessionID
	for key, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, key)
			deleted = append(deleted, s.ID)
		}
	}
	return deleted, nil
}
