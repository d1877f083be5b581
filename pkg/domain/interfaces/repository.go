package interfaces

import (
	"context"
	"time"

	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

//go:generate moq -out ../mock/session_repository_mock.go -pkg mock . SessionRepository

// SessionRepository stores established sessions keyed by session ID
type SessionRepository interface {
	PutSession(ctx context.Context, session *model.Session) error
	// GetSession returns repository.ErrNotFound when no session has the ID.
	GetSession(ctx context.Context, id types.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id types.SessionID) error
	// DeleteExpiredSessions removes sessions expired at now and returns their IDs.
	DeleteExpiredSessions(ctx context.Context, now time.Time) ([]types.SessionID, error)
}
