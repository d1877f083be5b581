package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidation, "invalid request body", goerr.V("error", err.Error()))
	}
	return nil
}

const headerTruncated = "X-Repositories-Truncated"

func (x *handler) getRepos(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	repos, err := x.uc.ListRepositories(r.Context(), session.Identity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if repos == nil {
		repos = []*model.RepositoryRef{}
	}

	w.Header().Set(headerTruncated, strconv.FormatBool(model.RepositoriesTruncated(repos)))
	writeJSON(w, http.StatusOK, repos)
}

func (x *handler) getFiles(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	files, err := x.uc.ListFiles(r.Context(), session.Identity, model.ListFilesInput{
		Owner: q.Get("owner"),
		Repo:  q.Get("repo"),
		Path:  q.Get("path"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if files == nil {
		files = []*model.FileRef{}
	}

	writeJSON(w, http.StatusOK, files)
}

type summariesRequest struct {
	SelectedFiles model.FileSelection `json:"selectedFiles"`
}

func (x *handler) generateSummaries(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req summariesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	summaries, err := x.uc.GenerateSummaries(r.Context(), &session.Identity, req.SelectedFiles)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (x *handler) generateCode(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.GenerateCodeInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	code, err := x.uc.GenerateCode(r.Context(), &session.Identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, code)
}

type pullRequestResponse struct {
	URL     string `json:"prUrl"`
	Message string `json:"message"`
}

func (x *handler) createPullRequest(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.PullRequestInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	pr, err := x.uc.CreatePullRequest(r.Context(), session.Identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &pullRequestResponse{
		URL:     pr.URL,
		Message: "Pull Request created successfully!",
	})
}
