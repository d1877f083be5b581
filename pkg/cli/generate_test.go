package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/cli"
	"github.com/testgenius/testgenius/pkg/domain/mock"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(p, []byte(content), 0600))
	return p
}

func newGenerateMock() *mock.UseCaseMock {
	return &mock.UseCaseMock{
		GenerateSummariesFunc: func(ctx context.Context, identity *model.Identity, files model.FileSelection) ([]*model.TestSummary, error) {
			return []*model.TestSummary{
				{Summary: "adds numbers", Framework: "Jest", Scenarios: []string{"1+2=3"}},
				{Summary: "rejects strings", Framework: "Jest"},
			}, nil
		},
		GenerateCodeFunc: func(ctx context.Context, identity *model.Identity, input model.GenerateCodeInput) (*model.GeneratedCode, error) {
			return &model.GeneratedCode{
				Code:     "test('" + input.Summary.Summary + "', () => {});",
				LangHint: model.LangHint(input.FrameworkName()),
				Summary:  input.Summary,
			}, nil
		},
	}
}

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("summaries then code", func(t *testing.T) {
		src := writeSource(t, "a.js", "export const add = (a, b) => a + b;")
		uc := newGenerateMock()
		var out bytes.Buffer

		gt.NoError(t, cli.RunGenerateForTest(ctx, uc, &mock.GitHubMock{}, cli.GenerateOptionsForTest{
			Files:        []string{src},
			SummaryIndex: 1,
		}, &out))

		gt.Equal(t, len(uc.GenerateSummariesCalls()), 1)
		files := uc.GenerateSummariesCalls()[0].Files
		gt.Equal(t, len(files), 1)
		gt.V(t, files[0].Name).Equal("a.js")
		gt.V(t, files[0].Content).Equal("export const add = (a, b) => a + b;")
		gt.True(t, uc.GenerateSummariesCalls()[0].Identity == nil)

		gt.Equal(t, len(uc.GenerateCodeCalls()), 1)
		input := uc.GenerateCodeCalls()[0].Input
		gt.V(t, input.Summary.Summary).Equal("rejects strings")
		gt.S(t, input.OriginalContent).Contains("--- File: a.js")
		gt.V(t, out.String()).Equal("test('rejects strings', () => {});\n")
		gt.Equal(t, len(uc.CreatePullRequestCalls()), 0)
	})

	t.Run("framework override is passed through", func(t *testing.T) {
		src := writeSource(t, "a.py", "def add(a, b): return a + b")
		uc := newGenerateMock()

		gt.NoError(t, cli.RunGenerateForTest(ctx, uc, &mock.GitHubMock{}, cli.GenerateOptionsForTest{
			Files:     []string{src},
			Framework: "pytest",
		}, &bytes.Buffer{}))
		gt.V(t, uc.GenerateCodeCalls()[0].Input.Framework).Equal("pytest")
	})

	t.Run("summary index out of range", func(t *testing.T) {
		src := writeSource(t, "a.js", "x")
		uc := newGenerateMock()

		err := cli.RunGenerateForTest(ctx, uc, &mock.GitHubMock{}, cli.GenerateOptionsForTest{
			Files:        []string{src},
			SummaryIndex: 2,
		}, &bytes.Buffer{})
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.Equal(t, len(uc.GenerateCodeCalls()), 0)
	})

	t.Run("no scenario identified", func(t *testing.T) {
		src := writeSource(t, "a.js", "x")
		uc := newGenerateMock()
		uc.GenerateSummariesFunc = func(ctx context.Context, identity *model.Identity, files model.FileSelection) ([]*model.TestSummary, error) {
			return []*model.TestSummary{}, nil
		}

		gt.Error(t, cli.RunGenerateForTest(ctx, uc, &mock.GitHubMock{}, cli.GenerateOptionsForTest{
			Files: []string{src},
		}, &bytes.Buffer{}))
		gt.Equal(t, len(uc.GenerateCodeCalls()), 0)
	})

	t.Run("missing source file", func(t *testing.T) {
		uc := newGenerateMock()
		err := cli.RunGenerateForTest(ctx, uc, &mock.GitHubMock{}, cli.GenerateOptionsForTest{
			Files: []string{filepath.Join(t.TempDir(), "missing.js")},
		}, &bytes.Buffer{})
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.Equal(t, len(uc.GenerateSummariesCalls()), 0)
	})

	t.Run("pull request with token", func(t *testing.T) {
		src := writeSource(t, "a.js", "x")
		uc := newGenerateMock()
		uc.CreatePullRequestFunc = func(ctx context.Context, identity model.Identity, input model.PullRequestInput) (*model.PullRequestResult, error) {
			return &model.PullRequestResult{URL: "https://github.com/alice/demo/pull/7", Number: 7}, nil
		}
		github := &mock.GitHubMock{
			GetAuthenticatedUserFunc: func(ctx context.Context, token types.GitHubAccessToken) (*model.PublicProfile, error) {
				gt.V(t, token).Equal(types.GitHubAccessToken("ghp_token"))
				return &model.PublicProfile{ID: 1, Login: "alice"}, nil
			},
		}

		gt.NoError(t, cli.RunGenerateForTest(ctx, uc, github, cli.GenerateOptionsForTest{
			Files:       []string{src},
			CreatePR:    true,
			GitHubToken: "ghp_token",
			Owner:       "alice",
			Repo:        "demo",
		}, &bytes.Buffer{}))

		gt.Equal(t, len(uc.CreatePullRequestCalls()), 1)
		call := uc.CreatePullRequestCalls()[0]
		gt.V(t, call.Identity.Profile.Login).Equal("alice")
		gt.V(t, call.Input.Owner).Equal("alice")
		gt.V(t, call.Input.Repo).Equal("demo")
		gt.V(t, call.Input.FileName).Equal("a.test.js")
		gt.V(t, call.Input.FileContents).Equal("test('adds numbers', () => {});")

		// generation is attributed to the token owner
		gt.V(t, uc.GenerateSummariesCalls()[0].Identity.Profile.Login).Equal("alice")
		gt.V(t, uc.GenerateCodeCalls()[0].Identity.Profile.Login).Equal("alice")
	})

	t.Run("pull request requires token", func(t *testing.T) {
		src := writeSource(t, "a.js", "x")
		uc := newGenerateMock()

		err := cli.RunGenerateForTest(ctx, uc, &mock.GitHubMock{}, cli.GenerateOptionsForTest{
			Files:    []string{src},
			CreatePR: true,
			Owner:    "alice",
			Repo:     "demo",
		}, &bytes.Buffer{})
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.Equal(t, len(uc.GenerateSummariesCalls()), 0)
	})
}

func TestSweepSessions(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		cli.SweepSessionsForTest(context.Background(), uc, 0)
		gt.Equal(t, len(uc.SweepSessionsCalls()), 0)
	})

	t.Run("runs until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var count atomic.Int32
		uc := &mock.UseCaseMock{
			SweepSessionsFunc: func(ctx context.Context) (int, error) {
				if count.Add(1) == 2 {
					cancel()
					return 0, errors.New("store is down")
				}
				return 1, nil
			},
		}

		done := make(chan struct{})
		go func() {
			cli.SweepSessionsForTest(ctx, uc, time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("sweeper did not stop")
		}
		gt.True(t, count.Load() >= 2)
	})
}
