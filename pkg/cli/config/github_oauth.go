package config

import (
	"log/slog"

	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/oauth"
	"github.com/urfave/cli/v3"
)

type GitHubOAuth struct {
	clientID     types.GitHubOAuthClientID
	clientSecret types.GitHubOAuthClientSecret `masq:"secret"`
	callbackURL  string
}

func (x *GitHubOAuth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth App client ID",
			Category:    "GitHub OAuth",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("TESTGENIUS_GITHUB_CLIENT_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth App client secret",
			Category:    "GitHub OAuth",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("TESTGENIUS_GITHUB_CLIENT_SECRET"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-callback-url",
			Usage:       "OAuth callback URL registered for the app",
			Category:    "GitHub OAuth",
			Destination: &x.callbackURL,
			Sources:     cli.EnvVars("TESTGENIUS_GITHUB_CALLBACK_URL"),
			Value:       "http://localhost:3001/api/github/callback",
		},
	}
}

func (x GitHubOAuth) New() (*oauth.Client, error) {
	return oauth.New(x.clientID, x.clientSecret, x.callbackURL)
}

func (x GitHubOAuth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ClientID", string(x.clientID)),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.String("CallbackURL", x.callbackURL),
	)
}
