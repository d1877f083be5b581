package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"google.golang.org/genai"
)

type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
}

var defaultRetryPolicy = retryPolicy{
	maxAttempts: 5,
	baseDelay:   1000 * time.Millisecond,
}

// delay returns the wait after the failed attempt (0-based).
func (p retryPolicy) delay(attempt int) time.Duration {
	return p.baseDelay * time.Duration(1<<attempt)
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}

// firstText returns the text of the first part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return "", false
	}
	return c.Content.Parts[0].Text, true
}

// generate sends one request and retries only when the service reports a rate
// limit. Every other failure is returned immediately.
func (x *UseCase) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	client := x.clients.GenAI()
	if client == nil {
		return "", goerr.Wrap(types.ErrUpstream, "generation service is not configured")
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	for attempt := 0; attempt < x.retry.maxAttempts; attempt++ {
		resp, err := client.GenerateContent(ctx, contents, config)
		if err == nil {
			text, ok := firstText(resp)
			if !ok {
				return "", goerr.Wrap(types.ErrMalformedResponse, "no content in generation response")
			}
			return text, nil
		}

		if !isRateLimited(err) {
			return "", goerr.Wrap(types.ErrUpstream, "generation request failed",
				goerr.V("error", err.Error()),
				goerr.V("attempt", attempt+1),
			)
		}

		if attempt == x.retry.maxAttempts-1 {
			break
		}

		delay := x.retry.delay(attempt)
		logging.From(ctx).Warn("Rate limited by generation service, retrying",
			slog.Duration("delay", delay),
			slog.Int("attempt", attempt+1),
			slog.Int("maxAttempts", x.retry.maxAttempts),
		)
		if err := x.sleep(ctx, delay); err != nil {
			return "", goerr.Wrap(err, "interrupted while waiting to retry generation")
		}
	}

	return "", goerr.Wrap(types.ErrRateLimitExhausted, "generation service kept rate limiting",
		goerr.V("attempts", x.retry.maxAttempts),
	)
}
