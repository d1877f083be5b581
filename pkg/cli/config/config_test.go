package config_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func parseFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHubOAuth(t *testing.T) {
	var cfg config.GitHubOAuth
	parseFlags(t, cfg.Flags(),
		"--github-client-id", "Iv1.abc",
		"--github-client-secret", "very-secret-value",
	)

	logged := cfg.LogValue().String()
	gt.S(t, logged).Contains("Iv1.abc")
	gt.S(t, logged).Contains("http://localhost:3001/api/github/callback")
	gt.False(t, strings.Contains(logged, "very-secret-value"))

	client, err := cfg.New()
	gt.NoError(t, err)
	gt.True(t, client != nil)
}

func TestGitHubOAuthRequiresClient(t *testing.T) {
	var cfg config.GitHubOAuth
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.Error(t, cmd.Run(context.Background(), []string{"test"}))
}

func TestGemini(t *testing.T) {
	var cfg config.Gemini
	parseFlags(t, cfg.Flags(),
		"--gemini-api-key", "AIza-secret",
		"--gemini-retry-delay", "250ms",
		"--gemini-max-attempts", "3",
	)

	logged := cfg.LogValue().String()
	gt.False(t, strings.Contains(logged, "AIza-secret"))
	gt.S(t, logged).Contains("gemini-2.5-flash-preview-05-20")
	gt.S(t, logged).Contains("250ms")
	gt.Equal(t, len(cfg.UseCaseOptions()), 2)
}

func TestSession(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg config.Session
		parseFlags(t, cfg.Flags())

		gt.False(t, cfg.SecureCookie())
		gt.V(t, cfg.SweepInterval()).Equal(10 * time.Minute)
		gt.S(t, cfg.LogValue().String()).Contains("24h0m0s")
		gt.True(t, cfg.NewStore(context.Background()) != nil)
	})

	t.Run("configured", func(t *testing.T) {
		var cfg config.Session
		parseFlags(t, cfg.Flags(),
			"--session-secret", "cookie-signing-key",
			"--session-secure-cookie",
			"--session-ttl", "1h",
			"--session-sweep-interval", "0s",
		)

		gt.True(t, cfg.SecureCookie())
		gt.V(t, cfg.SweepInterval()).Equal(time.Duration(0))
		logged := cfg.LogValue().String()
		gt.False(t, strings.Contains(logged, "cookie-signing-key"))
		gt.S(t, logged).Contains("1h0m0s")
	})
}

func TestFirestore(t *testing.T) {
	var cfg config.Firestore
	parseFlags(t, cfg.Flags())
	gt.False(t, cfg.Enabled())

	parseFlags(t, cfg.Flags(), "--firestore-project-id", "my-project")
	gt.True(t, cfg.Enabled())
	gt.S(t, cfg.LogValue().String()).Contains("(default)")
}

func TestBigQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		var cfg config.BigQuery
		parseFlags(t, cfg.Flags())
		gt.False(t, cfg.Enabled())

		client, err := cfg.NewClient(ctx)
		gt.NoError(t, err)
		gt.True(t, client == nil)
	})

	t.Run("dataset is required", func(t *testing.T) {
		var cfg config.BigQuery
		parseFlags(t, cfg.Flags(), "--bigquery-project-id", "my-project")
		gt.True(t, cfg.Enabled())

		client, err := cfg.NewClient(ctx)
		gt.Error(t, err)
		gt.True(t, client == nil)
	})

	t.Run("table has a default", func(t *testing.T) {
		var cfg config.BigQuery
		parseFlags(t, cfg.Flags())
		gt.S(t, cfg.LogValue().String()).Contains("generations")
	})
}
