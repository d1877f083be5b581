package server_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/model"
)

func TestWorkflowAPI(t *testing.T) {
	ts := newTestServer(t)
	c := ts.login(t)

	w := c.do(http.MethodGet, "/api/workflow", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
	view := decode[model.WorkflowView](t, w)
	gt.V(t, view.Stage).Equal(model.StageRepoSelection)
	gt.V(t, view.User.Login).Equal("alice")

	w = c.do(http.MethodGet, "/api/workflow/repos", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, len(decode[model.WorkflowView](t, w).Repositories)).Equal(1)

	w = c.do(http.MethodPost, "/api/workflow/repo", map[string]string{"owner": "alice", "name": "demo"})
	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, decode[model.WorkflowView](t, w).Stage).Equal(model.StageFileSelection)

	w = c.do(http.MethodGet, "/api/workflow/files", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
	view = decode[model.WorkflowView](t, w)
	gt.V(t, len(view.Files)).Equal(1)
	gt.V(t, view.Files[0].Path).Equal("sum.js")

	w = c.do(http.MethodPost, "/api/workflow/files", map[string][]string{"paths": {"sum.js"}})
	gt.V(t, w.Code).Equal(http.StatusAccepted)
	view = decode[model.WorkflowView](t, w)
	gt.V(t, view.Stage).Equal(model.StageSummaryReview)
	gt.True(t, view.Generating)

	// Summaries are generated in the background.
	deadline := time.Now().Add(5 * time.Second)
	for {
		w = c.do(http.MethodGet, "/api/workflow", nil)
		view = decode[model.WorkflowView](t, w)
		if len(view.Summaries) > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, len(view.Summaries)).Equal(1)
	gt.V(t, len(ts.genAI.GenerateContentCalls())).Equal(1)

	w = c.do(http.MethodPost, "/api/workflow/code", map[string]int{"index": 0})
	gt.V(t, w.Code).Equal(http.StatusOK)
	view = decode[model.WorkflowView](t, w)
	gt.V(t, view.Stage).Equal(model.StageCodeReview)
	gt.V(t, view.Code.LangHint).Equal("javascript")

	w = c.do(http.MethodPost, "/api/workflow/pr", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
	view = decode[model.WorkflowView](t, w)
	gt.V(t, view.PullRequest.URL).Equal("https://github.com/alice/demo/pull/3")
	gt.V(t, ts.gh.CreateOrUpdateFileCalls()[0].Input.Path).Equal("generated_tests/sum.test.js")

	w = c.do(http.MethodPost, "/api/workflow/back", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
	view = decode[model.WorkflowView](t, w)
	gt.V(t, view.Stage).Equal(model.StageSummaryReview)
	gt.True(t, view.Code == nil)
	gt.V(t, len(view.Summaries)).Equal(1)

	w = c.do(http.MethodPost, "/api/workflow/start-over", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, decode[model.WorkflowView](t, w).Stage).Equal(model.StageLoggedOut)

	w = c.do(http.MethodGet, "/api/workflow", nil)
	gt.V(t, w.Code).Equal(http.StatusUnauthorized)
}

func TestWorkflowAPIRejectsMisuse(t *testing.T) {
	ts := newTestServer(t)
	c := ts.login(t)

	w := c.do(http.MethodPost, "/api/workflow/code", map[string]int{"index": 0})
	gt.V(t, w.Code).Equal(http.StatusConflict)
	gt.V(t, decode[map[string]string](t, w)["kind"]).Equal("InvalidTransition")

	w = c.do(http.MethodPost, "/api/workflow/repo", map[string]string{"owner": "alice", "name": "unknown"})
	gt.V(t, w.Code).Equal(http.StatusBadRequest)

	w = c.do(http.MethodDelete, "/api/workflow/error", nil)
	gt.V(t, w.Code).Equal(http.StatusOK)
}
