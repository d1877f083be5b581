package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"google.golang.org/genai"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}

func rateLimitError() error {
	return genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}
}

// sleepRecorder records requested backoff delays without waiting.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (x *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.delays = append(x.delays, d)
	return ctx.Err()
}

func (x *sleepRecorder) Total() time.Duration {
	x.mu.Lock()
	defer x.mu.Unlock()
	var total time.Duration
	for _, d := range x.delays {
		total += d
	}
	return total
}

func aliceIdentity() model.Identity {
	return model.Identity{
		Profile: model.PublicProfile{ID: 1, Login: "alice", Name: "Alice"},
		Token:   types.GitHubAccessToken("gho_alice"),
	}
}

func aliceSession() *model.Session {
	return model.NewSession(aliceIdentity(), time.Now(), time.Hour)
}
