package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub GenAI OAuth

import (
	"context"

	"cloud.google.com/go/bigquery"
	"google.golang.org/genai"

	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub calls the REST API on behalf of the user who owns token.
type GitHub interface {
	GetAuthenticatedUser(ctx context.Context, token types.GitHubAccessToken) (*model.PublicProfile, error)
	ListRepositories(ctx context.Context, token types.GitHubAccessToken, perPage int) ([]*model.RepositoryRef, error)
	// GetContents returns the directory entries at path. A path to a single file is
	// returned as a one-element list.
	GetContents(ctx context.Context, token types.GitHubAccessToken, owner, repo, path string) ([]*model.FileRef, error)
	GetFileContent(ctx context.Context, token types.GitHubAccessToken, owner, repo, path string) (string, error)

	GetRepository(ctx context.Context, token types.GitHubAccessToken, owner, repo string) (*model.RepositoryRef, error)
	GetBranchHead(ctx context.Context, token types.GitHubAccessToken, owner, repo string, branch types.BranchName) (types.CommitSHA, error)
	CreateBranch(ctx context.Context, token types.GitHubAccessToken, owner, repo string, branch types.BranchName, sha types.CommitSHA) error
	CreateOrUpdateFile(ctx context.Context, token types.GitHubAccessToken, input *CreateOrUpdateFileInput) error
	CreatePullRequest(ctx context.Context, token types.GitHubAccessToken, input *CreatePullRequestInput) (*model.PullRequestResult, error)
}

type CreateOrUpdateFileInput struct {
	Owner   string
	Repo    string
	Path    string
	Branch  types.BranchName
	Message string
	Content []byte
}

type CreatePullRequestInput struct {
	Owner string
	Repo  string
	Title string
	Body  string
	Head  types.BranchName
	Base  types.BranchName
}

type GenAI interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type OAuth interface {
	AuthCodeURL(state types.OAuthState) string
	Exchange(ctx context.Context, code string) (types.GitHubAccessToken, error)
}
