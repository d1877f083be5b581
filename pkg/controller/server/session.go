package server

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
)

const (
	cookieName     = "testgenius"
	keySessionID   = "sid"
	keyOAuthState  = "oauth_state"
	cookieLifetime = 24 * 60 * 60
)

func (x *handler) cookie(r *http.Request) *sessions.Session {
	// A cookie that fails verification yields a fresh empty session.
	sess, _ := x.cfg.store.Get(r, cookieName)
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cookieLifetime,
		HttpOnly: true,
		Secure:   x.cfg.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	return sess
}

func sessionIDOf(sess *sessions.Session) types.SessionID {
	if v, ok := sess.Values[keySessionID].(string); ok {
		return types.SessionID(v)
	}
	return ""
}

func (x *handler) saveCookie(w http.ResponseWriter, r *http.Request, sess *sessions.Session) error {
	if err := sess.Save(r, w); err != nil {
		return goerr.Wrap(err, "failed to save session cookie")
	}
	return nil
}

// clearCookie expires the cookie in the browser.
func (x *handler) clearCookie(w http.ResponseWriter, r *http.Request) error {
	sess := x.cookie(r)
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	return x.saveCookie(w, r, sess)
}

type ctxSessionKey struct{}

func withSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey{}, session)
}

func sessionFrom(ctx context.Context) *model.Session {
	if s, ok := ctx.Value(ctxSessionKey{}).(*model.Session); ok {
		return s
	}
	return nil
}

// dropCookie clears the cookie and only logs a failure, for handlers that already
// ended the session.
func (x *handler) dropCookie(w http.ResponseWriter, r *http.Request) {
	if err := x.clearCookie(w, r); err != nil {
		errutil.HandleError(r.Context(), "failed to clear session cookie", err)
	}
}
