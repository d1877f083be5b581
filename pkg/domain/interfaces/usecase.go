package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

type UseCase interface {
	LoginURL(state types.OAuthState) (string, error)
	CompleteLogin(ctx context.Context, code string) (*model.Session, error)
	Authenticate(ctx context.Context, id types.SessionID) (*model.Session, error)
	Logout(ctx context.Context, id types.SessionID) error

	ListRepositories(ctx context.Context, identity model.Identity) ([]*model.RepositoryRef, error)
	ListFiles(ctx context.Context, identity model.Identity, input model.ListFilesInput) ([]*model.FileRef, error)
	GenerateSummaries(ctx context.Context, identity *model.Identity, files model.FileSelection) ([]*model.TestSummary, error)
	GenerateCode(ctx context.Context, identity *model.Identity, input model.GenerateCodeInput) (*model.GeneratedCode, error)
	CreatePullRequest(ctx context.Context, identity model.Identity, input model.PullRequestInput) (*model.PullRequestResult, error)

	WorkflowView(ctx context.Context, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error)
	WorkflowListRepositories(ctx context.Context, session *model.Session) (*model.WorkflowView, error)
	WorkflowSelectRepository(ctx context.Context, session *model.Session, owner, name string) (*model.WorkflowView, error)
	WorkflowListFiles(ctx context.Context, session *model.Session, path string) (*model.WorkflowView, error)
	WorkflowConfirmFiles(ctx context.Context, session *model.Session, paths []string) (*model.WorkflowView, model.BackgroundRun, error)
	WorkflowRetrySummaries(ctx context.Context, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error)
	WorkflowGenerateCode(ctx context.Context, session *model.Session, index int) (*model.WorkflowView, error)
	WorkflowCreatePullRequest(ctx context.Context, session *model.Session, title, body string) (*model.WorkflowView, error)
	WorkflowBack(ctx context.Context, session *model.Session) (*model.WorkflowView, error)
	WorkflowStartOver(ctx context.Context, session *model.Session) (*model.WorkflowView, error)
	WorkflowDismissError(ctx context.Context, session *model.Session) (*model.WorkflowView, error)

	SweepSessions(ctx context.Context) (int, error)
}
