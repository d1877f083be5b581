package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/mock"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra"
	"github.com/testgenius/testgenius/pkg/usecase"
	"google.golang.org/genai"
)

func TestRetryDelay(t *testing.T) {
	base := 1000 * time.Millisecond
	gt.Equal(t, usecase.RetryDelayForTest(base, 0), 1000*time.Millisecond)
	gt.Equal(t, usecase.RetryDelayForTest(base, 1), 2000*time.Millisecond)
	gt.Equal(t, usecase.RetryDelayForTest(base, 4), 16000*time.Millisecond)
}

func TestGenerateRetry(t *testing.T) {
	t.Run("succeeds after two rate limited attempts", func(t *testing.T) {
		calls := 0
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls++
				if calls <= 2 {
					return nil, rateLimitError()
				}
				return textResponse("ok"), nil
			},
		}
		sleeper := &sleepRecorder{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)), usecase.WithSleep(sleeper.Sleep))

		text, err := uc.GenerateForTest(context.Background(), "prompt")
		gt.NoError(t, err)
		gt.Equal(t, text, "ok")
		gt.Equal(t, calls, 3)
		gt.Equal(t, len(sleeper.delays), 2)
		gt.Equal(t, sleeper.delays[0], 1000*time.Millisecond)
		gt.Equal(t, sleeper.delays[1], 2000*time.Millisecond)
		gt.True(t, sleeper.Total() >= 3000*time.Millisecond)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls++
				return nil, rateLimitError()
			},
		}
		sleeper := &sleepRecorder{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)), usecase.WithSleep(sleeper.Sleep))

		_, err := uc.GenerateForTest(context.Background(), "prompt")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRateLimitExhausted))
		gt.Equal(t, types.Kind(err), types.KindRateLimitExhausted)
		gt.Equal(t, calls, 5)
		gt.Equal(t, len(sleeper.delays), 4)
	})

	t.Run("max attempts is configurable", func(t *testing.T) {
		calls := 0
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls++
				return nil, &genai.APIError{Code: 429}
			},
		}
		sleeper := &sleepRecorder{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)),
			usecase.WithSleep(sleeper.Sleep),
			usecase.WithMaxAttempts(2),
			usecase.WithRetryBaseDelay(10*time.Millisecond),
		)

		_, err := uc.GenerateForTest(context.Background(), "prompt")
		gt.True(t, errors.Is(err, types.ErrRateLimitExhausted))
		gt.Equal(t, calls, 2)
		gt.Equal(t, len(sleeper.delays), 1)
		gt.Equal(t, sleeper.delays[0], 10*time.Millisecond)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls++
				return nil, genai.APIError{Code: 500, Message: "backend error"}
			},
		}
		sleeper := &sleepRecorder{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)), usecase.WithSleep(sleeper.Sleep))

		_, err := uc.GenerateForTest(context.Background(), "prompt")
		gt.True(t, errors.Is(err, types.ErrUpstream))
		gt.Equal(t, calls, 1)
		gt.Equal(t, len(sleeper.delays), 0)
	})

	t.Run("response without text is malformed", func(t *testing.T) {
		calls := 0
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls++
				return &genai.GenerateContentResponse{}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		_, err := uc.GenerateForTest(context.Background(), "prompt")
		gt.True(t, errors.Is(err, types.ErrMalformedResponse))
		gt.Equal(t, calls, 1)
	})

	t.Run("cancelled context stops the backoff", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, rateLimitError()
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := uc.GenerateForTest(ctx, "prompt")
		gt.True(t, errors.Is(err, context.Canceled))
		gt.Equal(t, len(genAI.GenerateContentCalls()), 1)
	})

	t.Run("not configured", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.GenerateForTest(context.Background(), "prompt")
		gt.True(t, errors.Is(err, types.ErrUpstream))
	})
}
