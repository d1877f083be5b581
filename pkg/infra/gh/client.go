package gh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// Client calls the GitHub REST API with the access token of the signed-in user.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client to a GitHub Enterprise or test server.
func WithBaseURL(base string) Option {
	return func(x *Client) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			logging.Default().Warn("ignore invalid GitHub base URL", slog.String("url", base), slog.Any("error", err))
			return
		}
		x.baseURL = u
	}
}

// WithHTTPClient sets the base HTTP client the token transport wraps.
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(options ...Option) *Client {
	client := &Client{}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) buildGithubClient(ctx context.Context, token types.GitHubAccessToken) *github.Client {
	if x.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	client := github.NewClient(oauth2.NewClient(ctx, ts))
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func isNotFound(err error) bool {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode == http.StatusNotFound
	}
	return false
}

func (x *Client) GetAuthenticatedUser(ctx context.Context, token types.GitHubAccessToken) (*model.PublicProfile, error) {
	client := x.buildGithubClient(ctx, token)

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstream, "failed to get authenticated user", goerr.V("error", err.Error()))
	}

	return &model.PublicProfile{
		ID:         user.GetID(),
		Login:      user.GetLogin(),
		Name:       user.GetName(),
		AvatarURL:  user.GetAvatarURL(),
		ProfileURL: user.GetHTMLURL(),
	}, nil
}

func toRepositoryRef(repo *github.Repository) *model.RepositoryRef {
	return &model.RepositoryRef{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Stars:         repo.GetStargazersCount(),
		Language:      repo.GetLanguage(),
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
		HTMLURL:       repo.GetHTMLURL(),
	}
}

// ListRepositories fetches a single page of repositories the user can access.
func (x *Client) ListRepositories(ctx context.Context, token types.GitHubAccessToken, perPage int) ([]*model.RepositoryRef, error) {
	client := x.buildGithubClient(ctx, token)

	opts := &github.RepositoryListOptions{
		Type:        "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	repos, _, err := client.Repositories.List(ctx, "", opts)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstream, "failed to list repositories", goerr.V("error", err.Error()))
	}

	refs := make([]*model.RepositoryRef, 0, len(repos))
	for _, repo := range repos {
		refs = append(refs, toRepositoryRef(repo))
	}

	logging.From(ctx).Debug("Listed repositories", slog.Int("count", len(refs)))
	return refs, nil
}

func toFileRef(c *github.RepositoryContent) *model.FileRef {
	return &model.FileRef{
		Name: c.GetName(),
		Path: c.GetPath(),
		Type: c.GetType(),
		Size: c.GetSize(),
	}
}

func (x *Client) GetContents(ctx context.Context, token types.GitHubAccessToken, owner, repo, path string) ([]*model.FileRef, error) {
	client := x.buildGithubClient(ctx, token)

	file, dir, _, err := client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstream, "failed to get contents",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	if file != nil {
		return []*model.FileRef{toFileRef(file)}, nil
	}

	refs := make([]*model.FileRef, 0, len(dir))
	for _, c := range dir {
		refs = append(refs, toFileRef(c))
	}
	return refs, nil
}

func (x *Client) GetFileContent(ctx context.Context, token types.GitHubAccessToken, owner, repo, path string) (string, error) {
	client := x.buildGithubClient(ctx, token)

	file, _, _, err := client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return "", goerr.Wrap(types.ErrUpstream, "failed to get file content",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}
	if file == nil {
		return "", goerr.Wrap(types.ErrUpstream, "path is not a file", goerr.V("path", path))
	}

	content, err := file.GetContent()
	if err != nil {
		return "", goerr.Wrap(types.ErrUpstream, "failed to decode file content",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}
	return content, nil
}

func (x *Client) GetRepository(ctx context.Context, token types.GitHubAccessToken, owner, repo string) (*model.RepositoryRef, error) {
	client := x.buildGithubClient(ctx, token)

	r, _, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", repo))
	}
	return toRepositoryRef(r), nil
}

func (x *Client) GetBranchHead(ctx context.Context, token types.GitHubAccessToken, owner, repo string, branch types.BranchName) (types.CommitSHA, error) {
	client := x.buildGithubClient(ctx, token)

	ref, _, err := client.Git.GetRef(ctx, owner, repo, "heads/"+branch.String())
	if err != nil {
		return "", goerr.Wrap(err, "failed to get branch ref", goerr.V("branch", branch))
	}
	return types.CommitSHA(ref.GetObject().GetSHA()), nil
}

func (x *Client) CreateBranch(ctx context.Context, token types.GitHubAccessToken, owner, repo string, branch types.BranchName, sha types.CommitSHA) error {
	client := x.buildGithubClient(ctx, token)

	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + branch.String()),
		Object: &github.GitObject{SHA: github.String(sha.String())},
	}
	if _, _, err := client.Git.CreateRef(ctx, owner, repo, ref); err != nil {
		return goerr.Wrap(err, "failed to create branch", goerr.V("branch", branch), goerr.V("sha", sha))
	}
	return nil
}

// CreateOrUpdateFile commits content to path on the branch. An existing file is
// updated with its current blob SHA.
func (x *Client) CreateOrUpdateFile(ctx context.Context, token types.GitHubAccessToken, input *interfaces.CreateOrUpdateFileInput) error {
	client := x.buildGithubClient(ctx, token)

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
		Branch:  github.String(input.Branch.String()),
	}

	existing, _, _, err := client.Repositories.GetContents(ctx, input.Owner, input.Repo, input.Path,
		&github.RepositoryContentGetOptions{Ref: input.Branch.String()})
	switch {
	case err == nil && existing != nil:
		opts.SHA = github.String(existing.GetSHA())
		if _, _, err := client.Repositories.UpdateFile(ctx, input.Owner, input.Repo, input.Path, opts); err != nil {
			return goerr.Wrap(err, "failed to update file", goerr.V("path", input.Path))
		}
	case err == nil || isNotFound(err):
		if _, _, err := client.Repositories.CreateFile(ctx, input.Owner, input.Repo, input.Path, opts); err != nil {
			return goerr.Wrap(err, "failed to create file", goerr.V("path", input.Path))
		}
	default:
		return goerr.Wrap(err, "failed to look up file", goerr.V("path", input.Path))
	}

	return nil
}

func (x *Client) CreatePullRequest(ctx context.Context, token types.GitHubAccessToken, input *interfaces.CreatePullRequestInput) (*model.PullRequestResult, error) {
	client := x.buildGithubClient(ctx, token)

	pr, _, err := client.PullRequests.Create(ctx, input.Owner, input.Repo, &github.NewPullRequest{
		Title: github.String(input.Title),
		Body:  github.String(input.Body),
		Head:  github.String(input.Head.String()),
		Base:  github.String(input.Base.String()),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pull request", goerr.V("head", input.Head), goerr.V("base", input.Base))
	}

	logging.From(ctx).Info("Created pull request",
		slog.String("url", pr.GetHTMLURL()),
		slog.Int("number", pr.GetNumber()),
	)

	return &model.PullRequestResult{
		URL:    pr.GetHTMLURL(),
		Number: pr.GetNumber(),
		Branch: input.Head,
	}, nil
}
