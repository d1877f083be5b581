package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

func (x *UseCase) lookupWorkflow(id types.SessionID) *model.Workflow {
	x.workflowsMu.Lock()
	defer x.workflowsMu.Unlock()
	return x.workflows[string(id)]
}

func (x *UseCase) dropWorkflow(id types.SessionID) {
	x.workflowsMu.Lock()
	defer x.workflowsMu.Unlock()
	delete(x.workflows, string(id))
}

// workflow returns the workflow of session, starting a new one right after login
// when the session has none yet.
func (x *UseCase) workflow(session *model.Session) (*model.Workflow, error) {
	if session == nil {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "no session")
	}

	x.workflowsMu.Lock()
	defer x.workflowsMu.Unlock()

	if wf, ok := x.workflows[string(session.ID)]; ok {
		return wf, nil
	}

	wf := model.NewWorkflow()
	if err := wf.Login(session.Identity); err != nil {
		return nil, err
	}
	x.workflows[string(session.ID)] = wf
	return wf, nil
}

// WorkflowView returns the current state of the session workflow. When summary
// review was entered and no summaries exist yet, generation is reserved and
// returned as a BackgroundRun.
func (x *UseCase) WorkflowView(ctx context.Context, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, nil, err
	}

	run, err := x.prepareSummaries(ctx, wf, false)
	if err != nil {
		return nil, nil, err
	}
	return wf.View(), run, nil
}

func (x *UseCase) WorkflowListRepositories(ctx context.Context, session *model.Session) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}

	ticket, input, err := wf.Begin(model.CallListRepositories)
	if err != nil {
		return nil, err
	}

	repos, err := x.ListRepositories(ctx, input.Identity)
	wf.CompleteRepositories(ticket, repos, err)
	if err != nil {
		return nil, err
	}
	return wf.View(), nil
}

func (x *UseCase) WorkflowSelectRepository(ctx context.Context, session *model.Session, owner, name string) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}
	if err := wf.SelectRepository(owner, name); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Repository chosen", slog.String("owner", owner), slog.String("name", name))
	return wf.View(), nil
}

// WorkflowListFiles loads one directory level of the chosen repository. Files whose
// content could not be fetched are left out of the listing.
func (x *UseCase) WorkflowListFiles(ctx context.Context, session *model.Session, path string) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}

	ticket, input, err := wf.Begin(model.CallListFiles)
	if err != nil {
		return nil, err
	}

	files, err := x.ListFiles(ctx, input.Identity, model.ListFilesInput{
		Owner: input.Repository.Owner,
		Repo:  input.Repository.Name,
		Path:  path,
	})
	wf.CompleteFiles(ticket, files, err)
	if err != nil {
		return nil, err
	}
	return wf.View(), nil
}

// WorkflowConfirmFiles fixes the file selection and reserves summary generation for
// it.
func (x *UseCase) WorkflowConfirmFiles(ctx context.Context, session *model.Session, paths []string) (*model.WorkflowView, model.BackgroundRun, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, nil, err
	}
	if err := wf.ConfirmFiles(paths); err != nil {
		return nil, nil, err
	}

	run, err := x.prepareSummaries(ctx, wf, false)
	if err != nil {
		return nil, nil, err
	}
	return wf.View(), run, nil
}

// WorkflowRetrySummaries generates summaries again for the current selection.
func (x *UseCase) WorkflowRetrySummaries(ctx context.Context, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, nil, err
	}

	run, err := x.prepareSummaries(ctx, wf, true)
	if err != nil {
		return nil, nil, err
	}
	return wf.View(), run, nil
}

func (x *UseCase) prepareSummaries(ctx context.Context, wf *model.Workflow, retry bool) (model.BackgroundRun, error) {
	if !retry && !wf.NeedsSummaries() {
		return nil, nil
	}

	ticket, input, err := wf.Begin(model.CallSummaries)
	if err != nil {
		if !retry && errors.Is(err, types.ErrStageBusy) {
			// Generation started by another request.
			return nil, nil
		}
		return nil, err
	}

	logging.From(ctx).Info("Summary generation reserved", slog.Any("files", input.Files.Paths()))

	return func(ctx context.Context) {
		summaries, err := x.generateSummaries(ctx, input.Files)
		if !wf.CompleteSummaries(ticket, summaries, err) {
			if err != nil {
				logging.From(ctx).Warn("Summary generation failed", slog.Any("error", err))
			} else {
				logging.From(ctx).Info("Discarded stale summaries", slog.Int("count", len(summaries)))
			}
			return
		}
		x.recordGeneration(ctx, summariesRecord(ctx, &input.Identity, input.Repository, input.Files, summaries))
	}, nil
}

// WorkflowGenerateCode picks the summary at index and generates test code for the
// whole selection. The workflow moves to code review on success.
func (x *UseCase) WorkflowGenerateCode(ctx context.Context, session *model.Session, index int) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}
	if err := wf.SelectSummary(index); err != nil {
		return nil, err
	}

	ticket, input, err := wf.Begin(model.CallCode)
	if err != nil {
		return nil, err
	}

	code, err := x.generateCode(ctx, model.GenerateCodeInput{
		OriginalContent: input.Files.CombinedContent(),
		Summary:         input.Summary,
		Framework:       input.Summary.Framework,
	})
	if code != nil {
		code.Files = input.Files.Paths()
	}
	if !wf.CompleteCode(ticket, code, err) {
		if err != nil {
			return nil, err
		}
		return wf.View(), nil
	}

	x.recordGeneration(ctx, codeRecord(ctx, &input.Identity, input.Repository, code))
	return wf.View(), nil
}

// WorkflowCreatePullRequest opens a pull request with the generated code. Empty
// title and body fall back to defaults derived from the first selected file.
func (x *UseCase) WorkflowCreatePullRequest(ctx context.Context, session *model.Session, title, body string) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}

	ticket, input, err := wf.Begin(model.CallPullRequest)
	if err != nil {
		return nil, err
	}

	firstName := ""
	if len(input.Files) > 0 {
		firstName = input.Files[0].Name
	}
	if title == "" {
		title = model.DefaultPullRequestTitle(firstName)
	}
	if body == "" {
		body = model.DefaultPullRequestBody
	}

	var owner, repo string
	if input.Repository != nil {
		owner, repo = input.Repository.Owner, input.Repository.Name
	}

	pr, err := x.CreatePullRequest(ctx, input.Identity, model.PullRequestInput{
		Owner:        owner,
		Repo:         repo,
		FileName:     model.TestFileName(firstName),
		FileContents: input.Code.Code,
		Title:        title,
		Body:         body,
	})
	wf.CompletePullRequest(ticket, pr, err)
	if err != nil {
		return nil, err
	}
	return wf.View(), nil
}

// WorkflowBack steps back one stage. Stepping back from repository selection ends
// the session.
func (x *UseCase) WorkflowBack(ctx context.Context, session *model.Session) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}

	stage, err := wf.Back()
	if err != nil {
		return nil, err
	}
	if stage == model.StageLoggedOut {
		if err := x.Logout(ctx, session.ID); err != nil {
			return nil, err
		}
	}
	return wf.View(), nil
}

// WorkflowStartOver destroys every collected entity and the session.
func (x *UseCase) WorkflowStartOver(ctx context.Context, session *model.Session) (*model.WorkflowView, error) {
	if session == nil {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "no session")
	}
	view := model.NewWorkflow().View()
	if err := x.Logout(ctx, session.ID); err != nil {
		return nil, err
	}
	return view, nil
}

func (x *UseCase) WorkflowDismissError(ctx context.Context, session *model.Session) (*model.WorkflowView, error) {
	wf, err := x.workflow(session)
	if err != nil {
		return nil, err
	}
	wf.DismissError()
	return wf.View(), nil
}
