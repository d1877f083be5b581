package model

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

type Stage string

const (
	StageLoggedOut     Stage = "logged_out"
	StageRepoSelection Stage = "repo_selection"
	StageFileSelection Stage = "file_selection"
	StageSummaryReview Stage = "summary_review"
	StageCodeReview    Stage = "code_review"
)

// validTransitions lists every stage change the workflow accepts. Start Over is
// allowed from any post-login stage and is listed explicitly.
var validTransitions = map[Stage][]Stage{
	StageLoggedOut:     {StageRepoSelection},
	StageRepoSelection: {StageFileSelection, StageLoggedOut},
	StageFileSelection: {StageSummaryReview, StageRepoSelection, StageLoggedOut},
	StageSummaryReview: {StageCodeReview, StageFileSelection, StageLoggedOut},
	StageCodeReview:    {StageSummaryReview, StageLoggedOut},
}

type CallKind string

const (
	CallListRepositories CallKind = "list_repositories"
	CallListFiles        CallKind = "list_files"
	CallSummaries        CallKind = "summaries"
	CallCode             CallKind = "code"
	CallPullRequest      CallKind = "pull_request"
)

var callStage = map[CallKind]Stage{
	CallListRepositories: StageRepoSelection,
	CallListFiles:        StageFileSelection,
	CallSummaries:        StageSummaryReview,
	CallCode:             StageSummaryReview,
	CallPullRequest:      StageCodeReview,
}

// Ticket identifies one outbound call. Its result is applied only when the workflow
// is still in the epoch the call was started in.
type Ticket struct {
	Kind  CallKind
	Epoch uint64
}

// CallInput is a copy of the workflow data a call needs, taken under the lock.
type CallInput struct {
	Identity   Identity
	Repository *RepositoryRef
	Files      FileSelection
	Summary    *TestSummary
	Code       *GeneratedCode
}

// BackgroundRun is work that must outlive the request that started it. The caller
// runs it with a detached context.
type BackgroundRun func(ctx context.Context)

type Transition struct {
	From    Stage     `json:"from"`
	To      Stage     `json:"to"`
	Trigger string    `json:"trigger"`
	At      time.Time `json:"at"`
}

type WorkflowError struct {
	Kind    types.ErrorKind `json:"kind"`
	Message string          `json:"message"`
}

type Workflow struct {
	mu sync.Mutex

	stage   Stage
	epoch   uint64
	pending *Ticket

	identity     *Identity
	repositories []*RepositoryRef
	repository   *RepositoryRef
	files        []*FileRef
	selection    FileSelection

	summaries       []*TestSummary
	summariesLoaded bool
	summaryIndex    int
	code            *GeneratedCode
	pullRequest     *PullRequestResult

	lastErr *WorkflowError
	history []Transition
	now     func() time.Time
}

func NewWorkflow() *Workflow {
	return &Workflow{
		stage:        StageLoggedOut,
		summaryIndex: -1,
		now:          time.Now,
	}
}

func (x *Workflow) Stage() Stage {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.stage
}

func (x *Workflow) History() []Transition {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]Transition(nil), x.history...)
}

// transition must be called with the lock held.
func (x *Workflow) transition(to Stage, trigger string) error {
	allowed := false
	for _, s := range validTransitions[x.stage] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return goerr.Wrap(types.ErrInvalidTransition, "transition is not allowed",
			goerr.V("from", x.stage),
			goerr.V("to", to),
			goerr.V("trigger", trigger),
		)
	}

	x.history = append(x.history, Transition{From: x.stage, To: to, Trigger: trigger, At: x.now()})
	x.stage = to
	x.epoch++
	x.pending = nil
	x.lastErr = nil
	return nil
}

func (x *Workflow) clearFromRepository() {
	x.repository = nil
	x.files = nil
	x.clearFromFiles()
}

func (x *Workflow) clearFromFiles() {
	x.selection = nil
	x.clearFromSummaries()
}

func (x *Workflow) clearFromSummaries() {
	x.summaries = nil
	x.summariesLoaded = false
	x.summaryIndex = -1
	x.clearFromCode()
}

func (x *Workflow) clearFromCode() {
	x.code = nil
	x.pullRequest = nil
}

func (x *Workflow) Login(identity Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if err := x.transition(StageRepoSelection, "login"); err != nil {
		return err
	}
	x.identity = &identity
	return nil
}

// SelectRepository picks a repository from the last listing.
func (x *Workflow) SelectRepository(owner, name string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.stage != StageRepoSelection {
		return goerr.Wrap(types.ErrInvalidTransition, "repository can be chosen only in repository selection", goerr.V("stage", x.stage))
	}

	var found *RepositoryRef
	for _, r := range x.repositories {
		if r.Owner == owner && r.Name == name {
			found = r
			break
		}
	}
	if found == nil {
		return goerr.Wrap(types.ErrValidation, "repository is not in the listing",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	if err := x.transition(StageFileSelection, "repository_chosen"); err != nil {
		return err
	}
	x.clearFromRepository()
	x.repository = found
	return nil
}

// ConfirmFiles builds the selection from paths in the current file listing. The
// order of paths is kept and duplicates are dropped.
func (x *Workflow) ConfirmFiles(paths []string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.stage != StageFileSelection {
		return goerr.Wrap(types.ErrInvalidTransition, "files can be confirmed only in file selection", goerr.V("stage", x.stage))
	}

	byPath := make(map[string]*FileRef, len(x.files))
	for _, f := range x.files {
		byPath[f.Path] = f
	}

	var selection FileSelection
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		f, ok := byPath[p]
		if !ok {
			return goerr.Wrap(types.ErrValidation, "file is not in the listing", goerr.V("path", p))
		}
		selection = append(selection, f)
	}
	if err := selection.Validate(); err != nil {
		return err
	}

	if err := x.transition(StageSummaryReview, "files_confirmed"); err != nil {
		return err
	}
	x.clearFromFiles()
	x.selection = selection
	return nil
}

// NeedsSummaries reports whether entering summary review should start generation.
// It is false once a result or an error arrived for the current selection, so
// re-entering the stage does not issue the call again.
func (x *Workflow) NeedsSummaries() bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	return x.stage == StageSummaryReview &&
		len(x.selection) > 0 &&
		!x.summariesLoaded &&
		x.pending == nil &&
		x.lastErr == nil
}

// SelectSummary marks the summary the next code generation uses.
func (x *Workflow) SelectSummary(index int) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.stage != StageSummaryReview {
		return goerr.Wrap(types.ErrInvalidTransition, "summary can be chosen only in summary review", goerr.V("stage", x.stage))
	}
	if index < 0 || index >= len(x.summaries) {
		return goerr.Wrap(types.ErrValidation, "summary index is out of range",
			goerr.V("index", index),
			goerr.V("count", len(x.summaries)),
		)
	}
	x.summaryIndex = index
	return nil
}

// Begin reserves the single in-flight slot for a call of kind and returns the data
// the call needs.
func (x *Workflow) Begin(kind CallKind) (*Ticket, *CallInput, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.pending != nil {
		return nil, nil, goerr.Wrap(types.ErrStageBusy, "call is already in flight",
			goerr.V("pending", x.pending.Kind),
			goerr.V("requested", kind),
		)
	}

	stage, ok := callStage[kind]
	if !ok || stage != x.stage {
		return nil, nil, goerr.Wrap(types.ErrInvalidTransition, "call is not allowed in the current stage",
			goerr.V("kind", kind),
			goerr.V("stage", x.stage),
		)
	}
	if x.identity == nil {
		return nil, nil, goerr.Wrap(types.ErrUnauthenticated, "workflow has no identity")
	}

	input := &CallInput{
		Identity:   *x.identity,
		Repository: x.repository,
		Files:      append(FileSelection(nil), x.selection...),
	}

	switch kind {
	case CallListFiles:
		if x.repository == nil {
			return nil, nil, goerr.Wrap(types.ErrValidation, "repository is not chosen")
		}
	case CallSummaries:
		if err := x.selection.Validate(); err != nil {
			return nil, nil, err
		}
	case CallCode:
		if x.summaryIndex < 0 || x.summaryIndex >= len(x.summaries) {
			return nil, nil, goerr.Wrap(types.ErrValidation, "summary is not chosen")
		}
		input.Summary = x.summaries[x.summaryIndex]
	case CallPullRequest:
		if x.code == nil {
			return nil, nil, goerr.Wrap(types.ErrValidation, "no generated code")
		}
		input.Summary = x.code.Summary
		input.Code = x.code
	}

	ticket := &Ticket{Kind: kind, Epoch: x.epoch}
	x.pending = ticket
	x.lastErr = nil
	return ticket, input, nil
}

// finish releases the slot held by t and tells whether its result is still current.
// err is recorded for the user when the result is current. Must hold the lock.
func (x *Workflow) finish(t *Ticket, err error) bool {
	if x.pending == t {
		x.pending = nil
	}
	if t == nil || t.Epoch != x.epoch {
		return false
	}
	if err != nil {
		x.lastErr = &WorkflowError{Kind: types.Kind(err), Message: err.Error()}
	}
	return true
}

func (x *Workflow) CompleteRepositories(t *Ticket, repos []*RepositoryRef, err error) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.finish(t, err) || err != nil {
		return false
	}
	x.repositories = repos
	return true
}

// CompleteFiles stores the listing without entries whose content failed to load.
func (x *Workflow) CompleteFiles(t *Ticket, files []*FileRef, err error) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.finish(t, err) || err != nil {
		return false
	}
	x.files = UsableFiles(files)
	return true
}

func (x *Workflow) CompleteSummaries(t *Ticket, summaries []*TestSummary, err error) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.finish(t, err) {
		return false
	}
	if err != nil {
		// An error ends the automatic attempt for this selection. A retry is user initiated.
		return false
	}
	x.summaries = summaries
	x.summariesLoaded = true
	x.summaryIndex = -1
	x.clearFromCode()
	return true
}

// CompleteCode stores the generated code and moves to code review.
func (x *Workflow) CompleteCode(t *Ticket, code *GeneratedCode, err error) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.finish(t, err) || err != nil {
		return false
	}
	if trErr := x.transition(StageCodeReview, "code_generated"); trErr != nil {
		x.lastErr = &WorkflowError{Kind: types.Kind(trErr), Message: trErr.Error()}
		return false
	}
	x.code = code
	x.pullRequest = nil
	return true
}

func (x *Workflow) CompletePullRequest(t *Ticket, pr *PullRequestResult, err error) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.finish(t, err) || err != nil {
		return false
	}
	x.pullRequest = pr
	return true
}

// Back drops the newest layer of data and returns the stage it moved to. Leaving
// repository selection logs the user out.
func (x *Workflow) Back() (Stage, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	switch x.stage {
	case StageLoggedOut:
		return x.stage, nil

	case StageRepoSelection:
		if err := x.transition(StageLoggedOut, "back"); err != nil {
			return x.stage, err
		}
		x.reset()

	case StageFileSelection:
		if err := x.transition(StageRepoSelection, "back"); err != nil {
			return x.stage, err
		}
		x.clearFromRepository()

	case StageSummaryReview:
		if err := x.transition(StageFileSelection, "back"); err != nil {
			return x.stage, err
		}
		x.clearFromSummaries()

	case StageCodeReview:
		if err := x.transition(StageSummaryReview, "back"); err != nil {
			return x.stage, err
		}
		x.clearFromCode()
	}

	return x.stage, nil
}

// StartOver destroys the identity and every collected entity.
func (x *Workflow) StartOver() {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.stage != StageLoggedOut {
		_ = x.transition(StageLoggedOut, "start_over")
	}
	x.reset()
}

func (x *Workflow) reset() {
	x.identity = nil
	x.repositories = nil
	x.pending = nil
	x.lastErr = nil
	x.clearFromRepository()
}

func (x *Workflow) DismissError() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.lastErr = nil
}

type WorkflowView struct {
	Stage           Stage              `json:"stage"`
	User            *PublicProfile     `json:"user,omitempty"`
	Repositories    []*RepositoryRef   `json:"repositories,omitempty"`
	Truncated       bool               `json:"truncated"`
	Repository      *RepositoryRef     `json:"repository,omitempty"`
	Files           []*FileRef         `json:"files,omitempty"`
	SelectedFiles   []*FileRef         `json:"selectedFiles,omitempty"`
	Summaries       []*TestSummary     `json:"summaries,omitempty"`
	SelectedSummary int                `json:"selectedSummary"`
	Code            *GeneratedCode     `json:"code,omitempty"`
	PullRequest     *PullRequestResult `json:"pullRequest,omitempty"`
	Busy            CallKind           `json:"busy,omitempty"`
	Generating      bool               `json:"generating"`
	Error           *WorkflowError     `json:"error,omitempty"`
}

func (x *Workflow) View() *WorkflowView {
	x.mu.Lock()
	defer x.mu.Unlock()

	v := &WorkflowView{
		Stage:           x.stage,
		Repositories:    x.repositories,
		Truncated:       RepositoriesTruncated(x.repositories),
		Repository:      x.repository,
		Files:           x.files,
		SelectedFiles:   x.selection,
		Summaries:       x.summaries,
		SelectedSummary: x.summaryIndex,
		Code:            x.code,
		PullRequest:     x.pullRequest,
		Error:           x.lastErr,
	}
	if x.identity != nil {
		profile := x.identity.Profile
		v.User = &profile
	}
	if x.pending != nil {
		v.Busy = x.pending.Kind
		v.Generating = x.pending.Kind == CallSummaries || x.pending.Kind == CallCode
	}
	return v
}
