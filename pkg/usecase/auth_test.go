package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/mock"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra"
	"github.com/testgenius/testgenius/pkg/repository"
	"github.com/testgenius/testgenius/pkg/repository/memory"
	"github.com/testgenius/testgenius/pkg/usecase"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

func newLoginClients() (*mock.OAuthMock, *mock.GitHubMock) {
	oauth := &mock.OAuthMock{
		AuthCodeURLFunc: func(state types.OAuthState) string {
			return "https://github.com/login/oauth/authorize?state=" + string(state)
		},
		ExchangeFunc: func(ctx context.Context, code string) (types.GitHubAccessToken, error) {
			if code != "good-code" {
				return "", errors.New("bad_verification_code")
			}
			return "gho_alice", nil
		},
	}
	gh := &mock.GitHubMock{
		GetAuthenticatedUserFunc: func(ctx context.Context, token types.GitHubAccessToken) (*model.PublicProfile, error) {
			return &model.PublicProfile{ID: 1, Login: "alice", Name: "Alice"}, nil
		},
	}
	return oauth, gh
}

func TestLoginURL(t *testing.T) {
	oauth, _ := newLoginClients()
	uc := usecase.New(infra.New(infra.WithOAuth(oauth)))

	url := gt.R1(uc.LoginURL("state-1")).NoError(t)
	gt.S(t, url).Contains("state=state-1")

	_, err := usecase.New(infra.New()).LoginURL("state-1")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestCompleteLogin(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	t.Run("stores a session with 24 hour expiry", func(t *testing.T) {
		repo := memory.New()
		oauth, gh := newLoginClients()
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithGitHub(gh), infra.WithSessionRepository(repo)))

		session, err := uc.CompleteLogin(ctx, "good-code")
		gt.NoError(t, err)
		gt.Equal(t, session.Identity.Profile.Login, "alice")
		gt.Equal(t, session.Identity.Token, types.GitHubAccessToken("gho_alice"))
		gt.Equal(t, session.ExpiresAt, now.Add(24*time.Hour))

		stored := gt.R1(repo.GetSession(ctx, session.ID)).NoError(t)
		gt.Equal(t, stored.Identity.Profile.Login, "alice")
	})

	t.Run("bad code is unauthenticated", func(t *testing.T) {
		repo := memory.New()
		oauth, gh := newLoginClients()
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithGitHub(gh), infra.WithSessionRepository(repo)))

		_, err := uc.CompleteLogin(ctx, "bad-code")
		gt.Error(t, err)
		gt.Equal(t, len(gh.GetAuthenticatedUserCalls()), 0)
	})

	t.Run("profile failure is unauthenticated", func(t *testing.T) {
		oauth, gh := newLoginClients()
		gh.GetAuthenticatedUserFunc = func(ctx context.Context, token types.GitHubAccessToken) (*model.PublicProfile, error) {
			return nil, errors.New("401 Bad credentials")
		}
		uc := usecase.New(infra.New(infra.WithOAuth(oauth), infra.WithGitHub(gh)))

		_, err := uc.CompleteLogin(ctx, "good-code")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})
}

func TestAuthenticate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid session", func(t *testing.T) {
		repo := memory.New()
		session := model.NewSession(aliceIdentity(), now, 24*time.Hour)
		gt.NoError(t, repo.PutSession(context.Background(), session))
		uc := usecase.New(infra.New(infra.WithSessionRepository(repo)))

		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now.Add(time.Hour) })
		got, err := uc.Authenticate(ctx, session.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.ID, session.ID)
	})

	t.Run("unknown and empty sessions", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.Authenticate(context.Background(), "unknown")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))

		_, err = uc.Authenticate(context.Background(), "")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("expired session is removed", func(t *testing.T) {
		repo := memory.New()
		session := model.NewSession(aliceIdentity(), now, 24*time.Hour)
		gt.NoError(t, repo.PutSession(context.Background(), session))
		uc := usecase.New(infra.New(infra.WithSessionRepository(repo)))

		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now.Add(25 * time.Hour) })
		_, err := uc.Authenticate(ctx, session.ID)
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))

		_, err = repo.GetSession(context.Background(), session.ID)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("store failure is unauthenticated", func(t *testing.T) {
		repo := &mock.SessionRepositoryMock{
			GetSessionFunc: func(ctx context.Context, id types.SessionID) (*model.Session, error) {
				return nil, errors.New("unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithSessionRepository(repo)))

		_, err := uc.Authenticate(context.Background(), "sid")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})
}

func TestLogout(t *testing.T) {
	t.Run("deletes the session", func(t *testing.T) {
		repo := memory.New()
		session := aliceSession()
		gt.NoError(t, repo.PutSession(context.Background(), session))
		uc := usecase.New(infra.New(infra.WithSessionRepository(repo)))

		gt.NoError(t, uc.Logout(context.Background(), session.ID))
		_, err := repo.GetSession(context.Background(), session.ID)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := &mock.SessionRepositoryMock{
			DeleteSessionFunc: func(ctx context.Context, id types.SessionID) error {
				return errors.New("unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithSessionRepository(repo)))

		gt.Error(t, uc.Logout(context.Background(), "sid"))
	})
}
