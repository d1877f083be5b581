package server

import (
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/sessions"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

// SessionCookieForTest returns a cookie signed by store that carries sid.
func SessionCookieForTest(store sessions.Store, sid types.SessionID) (*http.Cookie, error) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess, err := store.Get(req, cookieName)
	if err != nil {
		return nil, err
	}
	sess.Values[keySessionID] = string(sid)
	if err := sess.Save(req, rec); err != nil {
		return nil, err
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c, nil
		}
	}
	return nil, http.ErrNoCookie
}

var (
	DetachContextForTest = detachContext
	RunBackgroundForTest = runBackground
)
