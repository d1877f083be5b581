package oauth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/oauth"
)

func TestNew(t *testing.T) {
	_, err := oauth.New("", "secret", "http://localhost/callback")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = oauth.New("id", "", "http://localhost/callback")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestAuthCodeURL(t *testing.T) {
	client, err := oauth.New("client-id", "secret", "http://localhost:8000/api/github/callback")
	gt.NoError(t, err)

	raw := client.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	gt.NoError(t, err)
	gt.V(t, u.Host).Equal("github.com")
	gt.V(t, u.Query().Get("client_id")).Equal("client-id")
	gt.V(t, u.Query().Get("state")).Equal("state-123")
	gt.V(t, u.Query().Get("scope")).Equal("repo read:user")
	gt.V(t, u.Query().Get("redirect_uri")).Equal("http://localhost:8000/api/github/callback")
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_abc","token_type":"bearer","scope":"repo,read:user"}`))
	}))
	defer srv.Close()

	client, err := oauth.New("client-id", "secret", "http://localhost/callback",
		oauth.WithEndpoint(srv.URL+"/login/oauth/authorize", srv.URL+"/login/oauth/access_token"),
	)
	gt.NoError(t, err)

	t.Run("valid code", func(t *testing.T) {
		token, err := client.Exchange(context.Background(), "good-code")
		gt.NoError(t, err)
		gt.V(t, token).Equal(types.GitHubAccessToken("gho_abc"))
	})

	t.Run("invalid code", func(t *testing.T) {
		_, err := client.Exchange(context.Background(), "bad-code")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := client.Exchange(context.Background(), "")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})
}
