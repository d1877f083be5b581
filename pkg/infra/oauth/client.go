package oauth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"golang.org/x/oauth2"
	ghoauth "golang.org/x/oauth2/github"
)

// Scopes requested from GitHub. "repo" is required to push the test branch and
// open pull requests.
var Scopes = []string{"repo", "read:user"}

type Client struct {
	cfg *oauth2.Config
}

var _ interfaces.OAuth = (*Client)(nil)

type Option func(*oauth2.Config)

// WithEndpoint replaces the GitHub endpoint, for GitHub Enterprise or tests.
func WithEndpoint(authURL, tokenURL string) Option {
	return func(cfg *oauth2.Config) {
		cfg.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	}
}

func New(clientID types.GitHubOAuthClientID, clientSecret types.GitHubOAuthClientSecret, callbackURL string, options ...Option) (*Client, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client ID is empty")
	}
	if clientSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client secret is empty")
	}

	cfg := &oauth2.Config{
		ClientID:     string(clientID),
		ClientSecret: string(clientSecret),
		Endpoint:     ghoauth.Endpoint,
		RedirectURL:  callbackURL,
		Scopes:       Scopes,
	}
	for _, opt := range options {
		opt(cfg)
	}

	return &Client{cfg: cfg}, nil
}

func (x *Client) AuthCodeURL(state types.OAuthState) string {
	return x.cfg.AuthCodeURL(string(state))
}

func (x *Client) Exchange(ctx context.Context, code string) (types.GitHubAccessToken, error) {
	if code == "" {
		return "", goerr.Wrap(types.ErrUnauthenticated, "authorization code is empty")
	}

	token, err := x.cfg.Exchange(ctx, code)
	if err != nil {
		return "", goerr.Wrap(types.ErrUnauthenticated, "failed to exchange authorization code", goerr.V("error", err.Error()))
	}
	if !token.Valid() {
		return "", goerr.Wrap(types.ErrUnauthenticated, "received invalid access token")
	}

	return types.GitHubAccessToken(token.AccessToken), nil
}
