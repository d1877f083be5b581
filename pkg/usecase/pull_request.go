package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

// nextBranchToken returns a millisecond timestamp that is strictly greater than any
// token handed out before, so two requests in the same millisecond get distinct
// branches.
func (x *UseCase) nextBranchToken(ctx context.Context) int64 {
	x.branchMu.Lock()
	defer x.branchMu.Unlock()

	token := logging.CtxTime(ctx).UnixMilli()
	if token <= x.lastBranch {
		token = x.lastBranch + 1
	}
	x.lastBranch = token
	return token
}

// CreatePullRequest commits one generated test file to a new branch forked from the
// default branch and opens a pull request for it. The steps run in order and the
// first failure aborts the rest. Nothing created before the failure is removed.
func (x *UseCase) CreatePullRequest(ctx context.Context, identity model.Identity, input model.PullRequestInput) (*model.PullRequestResult, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if input.Title == "" {
		input.Title = model.DefaultPullRequestTitle(input.FileName)
	}
	if input.Body == "" {
		input.Body = model.DefaultPullRequestBody
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	token := identity.Token
	branch := model.PullRequestBranch(x.nextBranchToken(ctx))

	fail := func(step string, err error, branchCreated bool) error {
		msg := "Failed to create pull request"
		if branchCreated {
			msg = "Failed to create pull request; branch " + string(branch) + " may remain on the repository"
		}
		return goerr.Wrap(types.ErrPullRequest, msg,
			goerr.V("step", step),
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", branch),
			goerr.V("error", err.Error()),
		)
	}

	repo, err := gh.GetRepository(ctx, token, input.Owner, input.Repo)
	if err != nil {
		return nil, fail("get_repository", err, false)
	}
	base := types.BranchName(repo.DefaultBranch)
	if base == "" {
		return nil, fail("get_repository", goerr.New("repository has no default branch"), false)
	}

	sha, err := gh.GetBranchHead(ctx, token, input.Owner, input.Repo, base)
	if err != nil {
		return nil, fail("get_branch_head", err, false)
	}

	if err := gh.CreateBranch(ctx, token, input.Owner, input.Repo, branch, sha); err != nil {
		return nil, fail("create_branch", err, false)
	}

	if err := gh.CreateOrUpdateFile(ctx, token, &interfaces.CreateOrUpdateFileInput{
		Owner:   input.Owner,
		Repo:    input.Repo,
		Path:    input.FilePath(),
		Branch:  branch,
		Message: input.CommitMessage(),
		Content: []byte(input.FileContents),
	}); err != nil {
		return nil, fail("commit_file", err, true)
	}

	pr, err := gh.CreatePullRequest(ctx, token, &interfaces.CreatePullRequestInput{
		Owner: input.Owner,
		Repo:  input.Repo,
		Title: input.Title,
		Body:  input.Body,
		Head:  branch,
		Base:  base,
	})
	if err != nil {
		return nil, fail("open_pull_request", err, true)
	}
	if pr.Branch == "" {
		pr.Branch = branch
	}

	logging.From(ctx).Info("Pull request created",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.String("url", pr.URL),
		slog.Any("branch", branch),
	)
	x.recordGeneration(ctx, pullRequestRecord(ctx, &identity, &input, pr))
	return pr, nil
}
