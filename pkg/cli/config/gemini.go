package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/gemini"
	"github.com/testgenius/testgenius/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Gemini struct {
	apiKey      types.GeminiAPIKey `masq:"secret"`
	model       string
	baseDelay   time.Duration
	maxAttempts int64
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Category:    "Gemini",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("TESTGENIUS_GEMINI_API_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model name",
			Category:    "Gemini",
			Destination: &x.model,
			Sources:     cli.EnvVars("TESTGENIUS_GEMINI_MODEL"),
			Value:       types.DefaultGeminiModel.String(),
		},
		&cli.DurationFlag{
			Name:        "gemini-retry-delay",
			Usage:       "First backoff delay after a rate-limited request, doubled on every retry",
			Category:    "Gemini",
			Destination: &x.baseDelay,
			Sources:     cli.EnvVars("TESTGENIUS_GEMINI_RETRY_DELAY"),
			Value:       time.Second,
		},
		&cli.Int64Flag{
			Name:        "gemini-max-attempts",
			Usage:       "Attempts per request while the service reports a rate limit",
			Category:    "Gemini",
			Destination: &x.maxAttempts,
			Sources:     cli.EnvVars("TESTGENIUS_GEMINI_MAX_ATTEMPTS"),
			Value:       5,
		},
	}
}

func (x *Gemini) NewClient(ctx context.Context) (*gemini.Client, error) {
	return gemini.New(ctx, x.apiKey, gemini.WithModel(types.GeminiModel(x.model)))
}

// UseCaseOptions returns the retry settings for generation calls.
func (x *Gemini) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithRetryBaseDelay(x.baseDelay),
		usecase.WithMaxAttempts(int(x.maxAttempts)),
	}
}

func (x Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.String("Model", x.model),
		slog.Duration("RetryDelay", x.baseDelay),
		slog.Int64("MaxAttempts", x.maxAttempts),
	)
}
