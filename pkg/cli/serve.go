package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/testgenius/testgenius/pkg/cli/config"
	"github.com/testgenius/testgenius/pkg/controller/server"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/infra"
	"github.com/testgenius/testgenius/pkg/usecase"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
	"github.com/testgenius/testgenius/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr          string
		frontendURL   string
		allowedOrigin string

		githubOAuth config.GitHubOAuth
		gemini      config.Gemini
		session     config.Session
		firestore   config.Firestore
		bigQuery    config.BigQuery
		sentry      config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:3001",
			Sources:     cli.EnvVars("TESTGENIUS_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "frontend-url",
			Usage:       "Frontend URL the browser is sent to after login",
			Value:       "http://localhost:5173",
			Sources:     cli.EnvVars("TESTGENIUS_FRONTEND_URL"),
			Destination: &frontendURL,
		},
		&cli.StringFlag{
			Name:        "allowed-origin",
			Usage:       "Regular expression of origins allowed by CORS with credentials (disabled if empty)",
			Sources:     cli.EnvVars("TESTGENIUS_ALLOWED_ORIGIN"),
			Destination: &allowedOrigin,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubOAuth.Flags(),
			gemini.Flags(),
			session.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("FrontendURL", frontendURL),
				slog.Any("AllowedOrigin", allowedOrigin),
				slog.Any("GitHubOAuth", githubOAuth),
				slog.Any("Gemini", gemini),
				slog.Any("Session", session),
				slog.Any("Firestore", &firestore),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(5 * time.Second)

			oauthClient, err := githubOAuth.New()
			if err != nil {
				return err
			}
			genAI, err := gemini.NewClient(ctx)
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithOAuth(oauthClient),
				infra.WithGenAI(genAI),
			}

			if firestore.Enabled() {
				repo, err := firestore.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithSessionRepository(repo))
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, slice.Flatten(
				gemini.UseCaseOptions(),
				session.UseCaseOptions(),
			)...)

			serverOptions := []server.Option{
				server.WithFrontendURL(frontendURL),
				server.WithSessionStore(session.NewStore(ctx)),
				server.WithSecureCookie(session.SecureCookie()),
			}
			if allowedOrigin != "" {
				re, err := regexp.Compile(allowedOrigin)
				if err != nil {
					return goerr.Wrap(err, "invalid allowed origin pattern", goerr.V("pattern", allowedOrigin))
				}
				serverOptions = append(serverOptions, server.WithAllowedOrigin(re))
			}
			s := server.New(uc, serverOptions...)

			sweepCtx, stopSweep := context.WithCancel(ctx)
			defer stopSweep()
			go sweepSessions(sweepCtx, uc, session.SweepInterval())

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// Code generation may wait for rate-limit backoff.
				WriteTimeout: 120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

// sweepSessions removes expired sessions every interval until ctx is done.
func sweepSessions(ctx context.Context, uc interfaces.UseCase, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := uc.SweepSessions(ctx)
			if err != nil {
				errutil.HandleError(ctx, "failed to sweep expired sessions", err)
				continue
			}
			if n > 0 {
				logging.From(ctx).Info("expired sessions removed", slog.Int("count", n))
			}
		}
	}
}
