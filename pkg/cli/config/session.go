package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/usecase"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Session struct {
	secret        types.SessionSecret `masq:"secret"`
	secureCookie  bool
	ttl           time.Duration
	sweepInterval time.Duration
}

func (x *Session) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "Key to sign the session cookie. A random key is used if empty",
			Category:    "Session",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("TESTGENIUS_SESSION_SECRET"),
		},
		&cli.BoolFlag{
			Name:        "session-secure-cookie",
			Usage:       "Send the session cookie only over HTTPS",
			Category:    "Session",
			Destination: &x.secureCookie,
			Sources:     cli.EnvVars("TESTGENIUS_SESSION_SECURE_COOKIE"),
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Lifetime of a login session",
			Category:    "Session",
			Destination: &x.ttl,
			Sources:     cli.EnvVars("TESTGENIUS_SESSION_TTL"),
			Value:       model.DefaultSessionTTL,
		},
		&cli.DurationFlag{
			Name:        "session-sweep-interval",
			Usage:       "Interval to remove expired sessions. 0 disables the sweep",
			Category:    "Session",
			Destination: &x.sweepInterval,
			Sources:     cli.EnvVars("TESTGENIUS_SESSION_SWEEP_INTERVAL"),
			Value:       10 * time.Minute,
		},
	}
}

// NewStore returns the signed cookie store. Without a secret, cookies are
// signed with a per-process key and do not survive a restart.
func (x *Session) NewStore(ctx context.Context) sessions.Store {
	key := []byte(x.secret)
	if len(key) == 0 {
		logging.From(ctx).Warn("session secret is not configured, using a random key")
		key = []byte(uuid.NewString() + uuid.NewString())
	}
	return sessions.NewCookieStore(key)
}

func (x *Session) SecureCookie() bool {
	return x.secureCookie
}

func (x *Session) SweepInterval() time.Duration {
	return x.sweepInterval
}

func (x *Session) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithSessionTTL(x.ttl),
	}
}

func (x Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Secret.len", len(x.secret)),
		slog.Bool("SecureCookie", x.secureCookie),
		slog.Duration("TTL", x.ttl),
		slog.Duration("SweepInterval", x.sweepInterval),
	)
}
