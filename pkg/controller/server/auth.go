package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

type userResponse struct {
	User            *model.PublicProfile `json:"user"`
	IsAuthenticated bool                 `json:"isAuthenticated"`
}

func (x *handler) getUser(w http.ResponseWriter, r *http.Request) {
	session, err := x.uc.Authenticate(r.Context(), sessionIDOf(x.cookie(r)))
	if err != nil {
		writeJSON(w, http.StatusOK, &userResponse{IsAuthenticated: false})
		return
	}

	profile := session.Identity.Profile
	writeJSON(w, http.StatusOK, &userResponse{User: &profile, IsAuthenticated: true})
}

func (x *handler) githubLogin(w http.ResponseWriter, r *http.Request) {
	state := types.NewOAuthState()

	url, err := x.uc.LoginURL(state)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sess := x.cookie(r)
	sess.Values[keyOAuthState] = string(state)
	if err := x.saveCookie(w, r, sess); err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func (x *handler) loginFailed(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logging.From(r.Context()).Warn("GitHub login failed", slog.String("reason", reason), slog.Any("error", err))
	http.Redirect(w, r, strings.TrimSuffix(x.cfg.frontendURL, "/")+"/login", http.StatusFound)
}

func (x *handler) githubCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := x.cookie(r)

	expected, _ := sess.Values[keyOAuthState].(string)
	delete(sess.Values, keyOAuthState)

	if expected == "" || r.URL.Query().Get("state") != expected {
		x.loginFailed(w, r, "state mismatch", nil)
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		x.loginFailed(w, r, "no code: "+r.URL.Query().Get("error"), nil)
		return
	}

	session, err := x.uc.CompleteLogin(ctx, code)
	if err != nil {
		x.loginFailed(w, r, "exchange failed", err)
		return
	}

	// Replace any previous login held by this browser.
	if prev := sessionIDOf(sess); prev != "" && prev != session.ID {
		if err := x.uc.Logout(ctx, prev); err != nil {
			errutil.HandleError(ctx, "failed to remove previous session", err)
		}
	}

	sess.Values[keySessionID] = string(session.ID)
	if err := x.saveCookie(w, r, sess); err != nil {
		x.loginFailed(w, r, "cookie", err)
		return
	}

	http.Redirect(w, r, x.cfg.frontendURL, http.StatusFound)
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// logout always clears the browser cookie. The response reports whether the
// stored session could be destroyed.
func (x *handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := sessionIDOf(x.cookie(r))

	logoutErr := x.uc.Logout(ctx, sid)
	if err := x.clearCookie(w, r); err != nil {
		errutil.HandleError(ctx, "failed to clear session cookie", err)
	}

	if logoutErr != nil {
		errutil.HandleError(ctx, "failed to destroy session", logoutErr)
		writeJSON(w, http.StatusInternalServerError, &logoutResponse{Success: false, Message: "Failed to destroy session."})
		return
	}

	writeJSON(w, http.StatusOK, &logoutResponse{Success: true, Message: "Logged out successfully."})
}
