package cli

import (
	"context"
	"io"
	"time"

	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

type GenerateOptionsForTest struct {
	Files        []string
	Framework    string
	SummaryIndex int64
	CreatePR     bool
	GitHubToken  types.GitHubAccessToken
	Owner        string
	Repo         string
	PRTitle      string
	PRBody       string
}

func RunGenerateForTest(ctx context.Context, uc interfaces.UseCase, github interfaces.GitHub, opts GenerateOptionsForTest, out io.Writer) error {
	return runGenerate(ctx, uc, github, generateOptions{
		files:        opts.Files,
		framework:    opts.Framework,
		summaryIndex: opts.SummaryIndex,
		createPR:     opts.CreatePR,
		githubToken:  opts.GitHubToken,
		owner:        opts.Owner,
		repo:         opts.Repo,
		prTitle:      opts.PRTitle,
		prBody:       opts.PRBody,
	}, out)
}

func SweepSessionsForTest(ctx context.Context, uc interfaces.UseCase, interval time.Duration) {
	sweepSessions(ctx, uc, interval)
}
