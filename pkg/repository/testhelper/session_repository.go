package testhelper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/repository"
)

// TestAll runs all test cases for SessionRepository
// This is the main entry point for testing any SessionRepository implementation
func TestAll(t *testing.T, repo interfaces.SessionRepository) {
	t.Run("SessionCRUD", func(t *testing.T) {
		TestSessionCRUD(t, repo)
	})
	t.Run("SessionNotFound", func(t *testing.T) {
		TestSessionNotFound(t, repo)
	})
	t.Run("DeleteExpiredSessions", func(t *testing.T) {
		TestDeleteExpiredSessions(t, repo)
	})
}

func newTestSession(login string, now time.Time, ttl time.Duration) *model.Session {
	return model.NewSession(model.Identity{
		Profile: model.PublicProfile{ID: 1, Login: login, Name: "Test User"},
		Token:   types.GitHubAccessToken("gho_" + login),
	}, now, ttl)
}

// TestSessionCRUD tests put, get and delete of a session
func TestSessionCRUD(t *testing.T, repo interfaces.SessionRepository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	session := newTestSession("alice", now, model.DefaultSessionTTL)

	gt.NoError(t, repo.PutSession(ctx, session))

	retrieved, err := repo.GetSession(ctx, session.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(session.ID)
	gt.V(t, retrieved.Identity.Profile.Login).Equal("alice")
	gt.V(t, retrieved.Identity.Token).Equal(session.Identity.Token)
	gt.True(t, retrieved.ExpiresAt.Equal(session.ExpiresAt))

	// Returned value is a copy
	retrieved.Identity.Profile.Login = "mallory"
	again, err := repo.GetSession(ctx, session.ID)
	gt.NoError(t, err)
	gt.V(t, again.Identity.Profile.Login).Equal("alice")

	gt.NoError(t, repo.DeleteSession(ctx, session.ID))
	_, err = repo.GetSession(ctx, session.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Deleting twice is not an error
	gt.NoError(t, repo.DeleteSession(ctx, session.ID))
}

// TestSessionNotFound tests lookup of an unknown session
func TestSessionNotFound(t *testing.T, repo interfaces.SessionRepository) {
	ctx := context.Background()
	_, err := repo.GetSession(ctx, types.NewSessionID())
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.Error(t, repo.PutSession(ctx, &model.Session{}))
}

// TestDeleteExpiredSessions tests the periodic sweep
func TestDeleteExpiredSessions(t *testing.T, repo interfaces.SessionRepository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	expired := newTestSession("expired", now.Add(-48*time.Hour), model.DefaultSessionTTL)
	alive := newTestSession("alive", now, model.DefaultSessionTTL)
	gt.NoError(t, repo.PutSession(ctx, expired))
	gt.NoError(t, repo.PutSession(ctx, alive))

	deleted, err := repo.DeleteExpiredSessions(ctx, now)
	gt.NoError(t, err)

	found := false
	for _, id := range deleted {
		gt.V(t, id).NotEqual(alive.ID)
		if id == expired.ID {
			found = true
		}
	}
	gt.True(t, found)

	_, err = repo.GetSession(ctx, expired.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.GetSession(ctx, alive.ID)
	gt.NoError(t, err)

	gt.NoError(t, repo.DeleteSession(ctx, alive.ID))
}
