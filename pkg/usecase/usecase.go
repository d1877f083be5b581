package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/infra"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type UseCase struct {
	clients *infra.Clients

	retry      retryPolicy
	sleep      SleepFunc
	sessionTTL time.Duration
	fetchLimit int

	workflows   map[string]*model.Workflow
	workflowsMu sync.Mutex

	branchMu   sync.Mutex
	lastBranch int64

	auditMu sync.Mutex
}

type Option func(*UseCase)

// WithRetryBaseDelay sets the first backoff delay after a rate-limited generation call.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(x *UseCase) {
		x.retry.baseDelay = d
	}
}

// WithMaxAttempts sets how many times a rate-limited generation call is attempted.
func WithMaxAttempts(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.retry.maxAttempts = n
		}
	}
}

func WithSleep(fn SleepFunc) Option {
	return func(x *UseCase) {
		x.sleep = fn
	}
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		if ttl > 0 {
			x.sessionTTL = ttl
		}
	}
}

// WithFetchConcurrency bounds concurrent file content downloads.
func WithFetchConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.fetchLimit = n
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		retry:      defaultRetryPolicy,
		sleep:      sleepContext,
		sessionTTL: model.DefaultSessionTTL,
		fetchLimit: 8,
		workflows:  make(map[string]*model.Workflow),
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
