package server

import (
	"net/http"

	"github.com/testgenius/testgenius/pkg/domain/model"
)

// respondView writes view and starts run in the background. The status is 202
// when generation was started by this request.
func respondView(w http.ResponseWriter, r *http.Request, view *model.WorkflowView, run model.BackgroundRun) {
	if run == nil {
		writeJSON(w, http.StatusOK, view)
		return
	}

	runBackground(r.Context(), run)
	writeJSON(w, http.StatusAccepted, view)
}

type workflowFunc func(r *http.Request, session *model.Session) (*model.WorkflowView, error)

type workflowRunFunc func(r *http.Request, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error)

func (x *handler) withWorkflow(fn workflowFunc) http.HandlerFunc {
	return x.withWorkflowRun(func(r *http.Request, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error) {
		view, err := fn(r, session)
		return view, nil, err
	})
}

func (x *handler) withWorkflowRun(fn workflowRunFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := requireSession(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		view, run, err := fn(r, session)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondView(w, r, view, run)
	}
}

func (x *handler) workflowView(w http.ResponseWriter, r *http.Request) {
	x.withWorkflowRun(func(r *http.Request, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error) {
		return x.uc.WorkflowView(r.Context(), session)
	})(w, r)
}

func (x *handler) workflowListRepositories(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		return x.uc.WorkflowListRepositories(r.Context(), session)
	})(w, r)
}

type selectRepositoryRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (x *handler) workflowSelectRepository(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		var req selectRepositoryRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return x.uc.WorkflowSelectRepository(r.Context(), session, req.Owner, req.Name)
	})(w, r)
}

func (x *handler) workflowListFiles(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		return x.uc.WorkflowListFiles(r.Context(), session, r.URL.Query().Get("path"))
	})(w, r)
}

type confirmFilesRequest struct {
	Paths []string `json:"paths"`
}

func (x *handler) workflowConfirmFiles(w http.ResponseWriter, r *http.Request) {
	x.withWorkflowRun(func(r *http.Request, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error) {
		var req confirmFilesRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, nil, err
		}
		return x.uc.WorkflowConfirmFiles(r.Context(), session, req.Paths)
	})(w, r)
}

func (x *handler) workflowRetrySummaries(w http.ResponseWriter, r *http.Request) {
	x.withWorkflowRun(func(r *http.Request, session *model.Session) (*model.WorkflowView, model.BackgroundRun, error) {
		return x.uc.WorkflowRetrySummaries(r.Context(), session)
	})(w, r)
}

type generateCodeRequest struct {
	Index int `json:"index"`
}

func (x *handler) workflowGenerateCode(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		var req generateCodeRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return x.uc.WorkflowGenerateCode(r.Context(), session, req.Index)
	})(w, r)
}

type workflowPullRequestRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (x *handler) workflowCreatePullRequest(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		var req workflowPullRequestRequest
		if r.ContentLength != 0 {
			if err := decodeBody(r, &req); err != nil {
				return nil, err
			}
		}
		return x.uc.WorkflowCreatePullRequest(r.Context(), session, req.Title, req.Body)
	})(w, r)
}

func (x *handler) workflowBack(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		view, err := x.uc.WorkflowBack(r.Context(), session)
		if err == nil && view.Stage == model.StageLoggedOut {
			x.dropCookie(w, r)
		}
		return view, err
	})(w, r)
}

func (x *handler) workflowStartOver(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		view, err := x.uc.WorkflowStartOver(r.Context(), session)
		if err == nil {
			x.dropCookie(w, r)
		}
		return view, err
	})(w, r)
}

func (x *handler) workflowDismissError(w http.ResponseWriter, r *http.Request) {
	x.withWorkflow(func(r *http.Request, session *model.Session) (*model.WorkflowView, error) {
		return x.uc.WorkflowDismissError(r.Context(), session)
	})(w, r)
}
