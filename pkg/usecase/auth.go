package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/repository"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

// LoginURL returns the GitHub authorization URL carrying state.
func (x *UseCase) LoginURL(state types.OAuthState) (string, error) {
	if x.clients.OAuth() == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth is not configured")
	}
	return x.clients.OAuth().AuthCodeURL(state), nil
}

// CompleteLogin exchanges the authorization code, loads the user profile and
// stores a new session.
func (x *UseCase) CompleteLogin(ctx context.Context, code string) (*model.Session, error) {
	if x.clients.OAuth() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth is not configured")
	}

	token, err := x.clients.OAuth().Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := x.clients.GitHub().GetAuthenticatedUser(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "failed to load GitHub profile", goerr.V("error", err.Error()))
	}

	identity := model.Identity{Profile: *profile, Token: token}
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	session := model.NewSession(identity, logging.CtxTime(ctx), x.sessionTTL)
	if err := x.clients.SessionRepository().PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session")
	}

	logging.From(ctx).Info("User logged in",
		slog.String("login", profile.Login),
		slog.Any("sessionID", session.ID),
	)
	return session, nil
}

// Authenticate resolves a session ID to a live session. Any failure is reported as
// ErrUnauthenticated so callers never reach GitHub or the generation service.
func (x *UseCase) Authenticate(ctx context.Context, id types.SessionID) (*model.Session, error) {
	if id == "" {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "no session")
	}

	session, err := x.clients.SessionRepository().GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrUnauthenticated, "session not found", goerr.V("sessionID", id))
		}
		return nil, goerr.Wrap(types.ErrUnauthenticated, "failed to load session",
			goerr.V("sessionID", id),
			goerr.V("error", err.Error()),
		)
	}

	if session.Expired(logging.CtxTime(ctx)) {
		if err := x.clients.SessionRepository().DeleteSession(ctx, id); err != nil {
			errutil.HandleError(ctx, "failed to delete expired session", err)
		}
		x.dropWorkflow(id)
		return nil, goerr.Wrap(types.ErrUnauthenticated, "session expired", goerr.V("sessionID", id))
	}

	if err := session.Identity.Validate(); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout destroys the workflow and the stored session. The local workflow state
// is cleared even when deleting the stored session fails.
func (x *UseCase) Logout(ctx context.Context, id types.SessionID) error {
	if wf := x.lookupWorkflow(id); wf != nil {
		wf.StartOver()
	}
	x.dropWorkflow(id)

	if id == "" {
		return nil
	}
	if err := x.clients.SessionRepository().DeleteSession(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete session", goerr.V("sessionID", id))
	}

	logging.From(ctx).Info("User logged out", slog.Any("sessionID", id))
	return nil
}
