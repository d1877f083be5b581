package usecase

import (
	"context"
	"time"
)

// Export unexported functions for testing
var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	BuildSummariesPromptForTest        = buildSummariesPrompt
	BuildCodePromptForTest             = buildCodePrompt
)

func RetryDelayForTest(base time.Duration, attempt int) time.Duration {
	return retryPolicy{baseDelay: base}.delay(attempt)
}

func (x *UseCase) GenerateForTest(ctx context.Context, prompt string) (string, error) {
	return x.generate(ctx, prompt, nil)
}
