package gh_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/gh"
	"github.com/testgenius/testgenius/pkg/utils/testutil"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*gh.Client, *[]recorded) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []recorded
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer gho_test")

		rec := recorded{method: r.Method, path: r.URL.Path}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			gt.NoError(t, json.Unmarshal(raw, &rec.body))
		}
		mu.Lock()
		calls = append(calls, rec)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return gh.New(gh.WithBaseURL(srv.URL)), &calls
}

func writeJSON(t *testing.T, w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	gt.NoError(t, json.NewEncoder(w).Encode(v))
}

const token = types.GitHubAccessToken("gho_test")

func TestGetAuthenticatedUser(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/user")
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":         42,
			"login":      "alice",
			"name":       "Alice",
			"avatar_url": "https://avatars.example/alice",
			"html_url":   "https://github.com/alice",
		})
	})

	profile, err := client.GetAuthenticatedUser(context.Background(), token)
	gt.NoError(t, err)
	gt.V(t, profile.ID).Equal(int64(42))
	gt.V(t, profile.Login).Equal("alice")
	gt.V(t, profile.ProfileURL).Equal("https://github.com/alice")
}

func TestListRepositories(t *testing.T) {
	t.Run("single page with type=all", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user/repos")
			gt.V(t, r.URL.Query().Get("type")).Equal("all")
			gt.V(t, r.URL.Query().Get("per_page")).Equal("100")
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{
					"name":              "demo",
					"full_name":         "alice/demo",
					"owner":             map[string]any{"login": "alice"},
					"stargazers_count":  3,
					"language":          "JavaScript",
					"default_branch":    "main",
					"private":           true,
					"description":       "demo repo",
				},
			})
		})

		repos, err := client.ListRepositories(context.Background(), token, 100)
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].Owner).Equal("alice")
		gt.V(t, repos[0].Stars).Equal(3)
		gt.V(t, repos[0].DefaultBranch).Equal("main")
		gt.True(t, repos[0].Private)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, map[string]any{"message": "boom"})
		})

		_, err := client.ListRepositories(context.Background(), token, 100)
		gt.Error(t, err)
		gt.V(t, types.Kind(err)).Equal(types.KindUpstream)
	})
}

func TestGetContents(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/alice/demo/contents/src")
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{"type": "file", "name": "a.js", "path": "src/a.js", "size": 10},
				{"type": "dir", "name": "lib", "path": "src/lib", "size": 0},
			})
		})

		files, err := client.GetContents(context.Background(), token, "alice", "demo", "src")
		gt.NoError(t, err)
		gt.V(t, len(files)).Equal(2)
		gt.V(t, files[0].Path).Equal("src/a.js")
		gt.V(t, files[1].Type).Equal("dir")
	})

	t.Run("single file becomes one element list", func(t *testing.T) {
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"type": "file", "name": "a.js", "path": "src/a.js", "size": 10,
				"encoding": "base64", "content": base64.StdEncoding.EncodeToString([]byte("const a = 1")),
			})
		})

		files, err := client.GetContents(context.Background(), token, "alice", "demo", "src/a.js")
		gt.NoError(t, err)
		gt.V(t, len(files)).Equal(1)
		gt.V(t, files[0].Name).Equal("a.js")
	})
}

func TestGetFileContent(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"type": "file", "name": "a.js", "path": "src/a.js",
			"encoding": "base64", "content": base64.StdEncoding.EncodeToString([]byte("const a = 1")),
		})
	})

	content, err := client.GetFileContent(context.Background(), token, "alice", "demo", "src/a.js")
	gt.NoError(t, err)
	gt.V(t, content).Equal("const a = 1")
}

func TestPullRequestSteps(t *testing.T) {
	client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/repos/alice/demo":
			writeJSON(t, w, http.StatusOK, map[string]any{"name": "demo", "owner": map[string]any{"login": "alice"}, "default_branch": "main"})
		case r.Method == http.MethodGet && r.URL.Path == "/repos/alice/demo/git/ref/heads/main":
			writeJSON(t, w, http.StatusOK, map[string]any{"ref": "refs/heads/main", "object": map[string]any{"sha": "abc123"}})
		case r.Method == http.MethodPost && r.URL.Path == "/repos/alice/demo/git/refs":
			writeJSON(t, w, http.StatusCreated, map[string]any{"ref": "refs/heads/ai-generated-tests/1"})
		case r.Method == http.MethodGet && r.URL.Path == "/repos/alice/demo/contents/generated_tests/a.test.js":
			writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
		case r.Method == http.MethodPut && r.URL.Path == "/repos/alice/demo/contents/generated_tests/a.test.js":
			writeJSON(t, w, http.StatusCreated, map[string]any{"content": map[string]any{"path": "generated_tests/a.test.js"}})
		case r.Method == http.MethodPost && r.URL.Path == "/repos/alice/demo/pulls":
			writeJSON(t, w, http.StatusCreated, map[string]any{"number": 7, "html_url": "https://github.com/alice/demo/pull/7"})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	repo, err := client.GetRepository(ctx, token, "alice", "demo")
	gt.NoError(t, err)
	gt.V(t, repo.DefaultBranch).Equal("main")

	sha, err := client.GetBranchHead(ctx, token, "alice", "demo", "main")
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("abc123"))

	branch := types.BranchName("ai-generated-tests/1")
	gt.NoError(t, client.CreateBranch(ctx, token, "alice", "demo", branch, sha))

	gt.NoError(t, client.CreateOrUpdateFile(ctx, token, &interfaces.CreateOrUpdateFileInput{
		Owner:   "alice",
		Repo:    "demo",
		Path:    "generated_tests/a.test.js",
		Branch:  branch,
		Message: "feat: Add AI-generated tests for a.test.js",
		Content: []byte("test('a')"),
	}))

	pr, err := client.CreatePullRequest(ctx, token, &interfaces.CreatePullRequestInput{
		Owner: "alice",
		Repo:  "demo",
		Title: "feat: Add AI-generated tests for a.js",
		Body:  "body",
		Head:  branch,
		Base:  "main",
	})
	gt.NoError(t, err)
	gt.V(t, pr.Number).Equal(7)
	gt.V(t, pr.URL).Equal("https://github.com/alice/demo/pull/7")

	var createRef, putFile, createPR map[string]any
	for _, c := range *calls {
		switch {
		case c.method == http.MethodPost && c.path == "/repos/alice/demo/git/refs":
			createRef = c.body
		case c.method == http.MethodPut:
			putFile = c.body
		case c.method == http.MethodPost && c.path == "/repos/alice/demo/pulls":
			createPR = c.body
		}
	}
	gt.V(t, createRef["ref"]).Equal("refs/heads/ai-generated-tests/1")
	gt.V(t, createRef["sha"]).Equal("abc123")
	gt.V(t, putFile["content"]).Equal(base64.StdEncoding.EncodeToString([]byte("test('a')")))
	gt.V(t, putFile["branch"]).Equal("ai-generated-tests/1")
	gt.V(t, createPR["head"]).Equal("ai-generated-tests/1")
	gt.V(t, createPR["base"]).Equal("main")
}

func TestClientIntegration(t *testing.T) {
	accessToken := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")

	client := gh.New()
	profile, err := client.GetAuthenticatedUser(context.Background(), types.GitHubAccessToken(accessToken))
	gt.NoError(t, err)
	gt.V(t, profile.Login).NotEqual("")
}
